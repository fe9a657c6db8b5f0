package store

import (
	"math"
	"sort"
	"time"

	"github.com/epistat/covid-dashboard-api/schema"
	"github.com/epistat/covid-dashboard-api/stats"
)

// snapshotAt groups the records of a single date by country and keeps the
// maximum cumulative count per country, guarding against duplicate rows for
// the same country and date. NaN counts are skipped.
func snapshotAt(records []schema.CaseRecord, date time.Time) []schema.CountrySnapshot {
	byCountry := map[string]*schema.CountrySnapshot{}
	var order []string

	for _, rec := range records {
		if !rec.Date.Equal(date) || math.IsNaN(rec.CumulativeCases) {
			continue
		}
		snap, ok := byCountry[rec.Country]
		if !ok {
			byCountry[rec.Country] = &schema.CountrySnapshot{
				Country:         rec.Country,
				Latitude:        rec.Latitude,
				Longitude:       rec.Longitude,
				CumulativeCases: rec.CumulativeCases,
			}
			order = append(order, rec.Country)
			continue
		}
		if rec.CumulativeCases > snap.CumulativeCases {
			snap.CumulativeCases = rec.CumulativeCases
		}
	}

	sort.Strings(order)
	out := make([]schema.CountrySnapshot, 0, len(order))
	for _, c := range order {
		out = append(out, *byCountry[c])
	}
	return out
}

// Summary computes the KPI row over the filtered subset. ok is false when
// the filter selects no records at all.
func (s *CovidStore) Summary(filter schema.Filter) (schema.Summary, bool) {
	records := s.filterRecords(filter)
	if len(records) == 0 {
		return schema.Summary{}, false
	}

	var totalCases float64
	daily := make([]float64, 0, len(records))
	countries := map[string]struct{}{}
	for _, rec := range records {
		if !math.IsNaN(rec.CumulativeCases) && rec.CumulativeCases > totalCases {
			totalCases = rec.CumulativeCases
		}
		daily = append(daily, rec.DailyCases)
		countries[rec.Country] = struct{}{}
	}

	return schema.Summary{
		LatestDate:   latestDate(records),
		TotalCases:   int64(totalCases),
		AverageDaily: int64(stats.Mean(daily)),
		CountryCount: len(countries),
	}, true
}

// MapSnapshot returns each selected country's position and cumulative count
// at the most recent date inside the filter window.
func (s *CovidStore) MapSnapshot(filter schema.Filter) ([]schema.CountrySnapshot, time.Time, bool) {
	records := s.filterRecords(filter)
	if len(records) == 0 {
		return nil, time.Time{}, false
	}

	date := latestDate(records)
	return snapshotAt(records, date), date, true
}

// FilteredBreakdown computes each selected country's share of the filtered
// total at the latest filtered date. The caller must check Total for zero
// before deriving ratios. ok is false when the filter selects no records.
func (s *CovidStore) FilteredBreakdown(filter schema.Filter) (schema.Breakdown, bool) {
	records := s.filterRecords(filter)
	if len(records) == 0 {
		return schema.Breakdown{}, false
	}

	date := latestDate(records)
	snaps := snapshotAt(records, date)

	var total float64
	for _, snap := range snaps {
		total += snap.CumulativeCases
	}

	entries := make([]schema.ShareEntry, 0, len(snaps))
	for _, snap := range snaps {
		entry := schema.ShareEntry{
			Country:         snap.Country,
			CumulativeCases: snap.CumulativeCases,
		}
		if total > 0 {
			entry.Percentage = snap.CumulativeCases / total * 100
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CumulativeCases > entries[j].CumulativeCases
	})

	return schema.Breakdown{
		Date:    date,
		Total:   total,
		Entries: entries,
	}, true
}
