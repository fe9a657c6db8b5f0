package store

import (
	"time"

	"github.com/epistat/covid-dashboard-api/schema"
)

// CovidCore is the query surface the dashboard handlers are written
// against. Every method derives its answer from the immutable in-memory
// dataset; filtered methods apply the selection after clamping it to the
// dataset's date range.
type CovidCore interface {
	Ping() error

	// Dataset
	Info() schema.DatasetInfo
	Countries() []string

	// Filtered scope
	Summary(filter schema.Filter) (schema.Summary, bool)
	MapSnapshot(filter schema.Filter) ([]schema.CountrySnapshot, time.Time, bool)
	Series(filter schema.Filter) []schema.CountrySeries
	Trends(filter schema.Filter) []schema.TrendEntry
	DailyPeaks(filter schema.Filter) []schema.PeakRecord
	FilteredBreakdown(filter schema.Filter) (schema.Breakdown, bool)
	RecentDailyMeans(filter schema.Filter, days int) []schema.CountryMean
	Volatility(filter schema.Filter) []schema.VolatilityRow

	// Global scope, deliberately ignoring the sidebar filter
	GlobalBreakdown(topN int) schema.Breakdown
	TopCumulative(topN int) []schema.RankEntry
}

// CovidStore is the CovidCore implementation over a loaded Dataset.
type CovidStore struct {
	dataset *Dataset
}

func NewCovidStore(dataset *Dataset) *CovidStore {
	return &CovidStore{
		dataset: dataset,
	}
}

// Ping reports whether the dataset behind the store is usable.
func (s *CovidStore) Ping() error {
	if s.dataset == nil {
		return ErrDatasetNotLoaded
	}
	if len(s.dataset.Records) == 0 {
		return ErrDatasetEmpty
	}
	return nil
}

// Info describes the loaded dataset.
func (s *CovidStore) Info() schema.DatasetInfo {
	return schema.DatasetInfo{
		Records:      len(s.dataset.Records),
		CountryCount: len(s.dataset.countries),
		FirstDate:    s.dataset.minDate,
		LastDate:     s.dataset.maxDate,
	}
}

// Countries returns the sorted list of countries present in the dataset.
func (s *CovidStore) Countries() []string {
	out := make([]string, len(s.dataset.countries))
	copy(out, s.dataset.countries)
	return out
}
