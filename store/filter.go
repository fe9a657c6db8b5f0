package store

import (
	"time"

	"github.com/epistat/covid-dashboard-api/schema"
)

// Clamp bounds the filter interval to the dataset's own date range. Zero
// times select the full range; a reversed interval is swapped rather than
// rejected.
func (s *CovidStore) Clamp(filter schema.Filter) schema.Filter {
	if filter.Start.IsZero() || filter.Start.Before(s.dataset.minDate) {
		filter.Start = s.dataset.minDate
	}
	if filter.End.IsZero() || filter.End.After(s.dataset.maxDate) {
		filter.End = s.dataset.maxDate
	}
	if filter.Start.After(filter.End) {
		filter.Start, filter.End = filter.End, filter.Start
	}
	return filter
}

// filterRecords returns the subset of records matching the country set and
// the inclusive date interval. An empty result is a valid state the panel
// handlers substitute placeholders for.
func (s *CovidStore) filterRecords(filter schema.Filter) []schema.CaseRecord {
	filter = s.Clamp(filter)

	selected := make(map[string]struct{}, len(filter.Countries))
	for _, c := range filter.Countries {
		selected[c] = struct{}{}
	}

	var out []schema.CaseRecord
	for _, rec := range s.dataset.Records {
		if _, ok := selected[rec.Country]; !ok {
			continue
		}
		if rec.Date.Before(filter.Start) || rec.Date.After(filter.End) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func latestDate(records []schema.CaseRecord) time.Time {
	var latest time.Time
	for _, rec := range records {
		if rec.Date.After(latest) {
			latest = rec.Date
		}
	}
	return latest
}
