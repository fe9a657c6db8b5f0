package store

import (
	"math"
	"sort"

	"github.com/epistat/covid-dashboard-api/schema"
)

// GlobalBreakdown ranks every country's cumulative count at the latest date
// of the full, unfiltered table and keeps the top N individually. The
// Others remainder is derived by subtraction from the global total so the
// percentages sum to exactly 100.
func (s *CovidStore) GlobalBreakdown(topN int) schema.Breakdown {
	date := s.dataset.maxDate
	snaps := snapshotAt(s.dataset.Records, date)

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

	if topN > len(entries) {
		topN = len(entries)
	}
	top := entries[:topN]

	var topCases, topPct float64
	for _, entry := range top {
		topCases += entry.CumulativeCases
		topPct += entry.Percentage
	}

	return schema.Breakdown{
		Date:    date,
		Total:   total,
		Entries: top,
		Others: schema.ShareEntry{
			Country:         "Others",
			CumulativeCases: total - topCases,
			Percentage:      100 - topPct,
		},
	}
}

// TopCumulative ranks countries by their all-time maximum cumulative count
// over the full table, ties kept in stable country order.
func (s *CovidStore) TopCumulative(topN int) []schema.RankEntry {
	maxByCountry := map[string]float64{}
	var order []string

	for _, rec := range s.dataset.Records {
		if math.IsNaN(rec.CumulativeCases) {
			continue
		}
		if _, ok := maxByCountry[rec.Country]; !ok {
			order = append(order, rec.Country)
		}
		if rec.CumulativeCases > maxByCountry[rec.Country] {
			maxByCountry[rec.Country] = rec.CumulativeCases
		}
	}

	sort.Strings(order)
	entries := make([]schema.RankEntry, 0, len(order))
	for _, c := range order {
		entries = append(entries, schema.RankEntry{
			Country:         c,
			CumulativeCases: maxByCountry[c],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CumulativeCases > entries[j].CumulativeCases
	})

	if topN < len(entries) {
		entries = entries[:topN]
	}
	return entries
}

// DailyPeaks finds each selected country's single worst day inside the
// filter window, sorted by peak size. The first entry doubles as the global
// headline record.
func (s *CovidStore) DailyPeaks(filter schema.Filter) []schema.PeakRecord {
	records := s.filterRecords(filter)

	peakByCountry := map[string]schema.PeakRecord{}
	var order []string

	for _, rec := range records {
		if math.IsNaN(rec.DailyCases) {
			continue
		}
		peak, ok := peakByCountry[rec.Country]
		if !ok {
			order = append(order, rec.Country)
		}
		if !ok || rec.DailyCases > peak.DailyCases {
			peakByCountry[rec.Country] = schema.PeakRecord{
				Country:    rec.Country,
				Date:       rec.Date,
				DailyCases: rec.DailyCases,
			}
		}
	}

	sort.Strings(order)
	peaks := make([]schema.PeakRecord, 0, len(order))
	for _, c := range order {
		peaks = append(peaks, peakByCountry[c])
	}
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].DailyCases > peaks[j].DailyCases
	})
	return peaks
}
