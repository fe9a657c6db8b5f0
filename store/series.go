package store

import (
	"sort"

	"github.com/epistat/covid-dashboard-api/schema"
	"github.com/epistat/covid-dashboard-api/stats"
)

// Series returns the daily-case series of every selected country inside the
// filter window, in selection order, each sorted by ascending date.
// Countries without rows in the window are omitted.
func (s *CovidStore) Series(filter schema.Filter) []schema.CountrySeries {
	records := s.filterRecords(filter)

	byCountry := map[string][]schema.SeriesPoint{}
	for _, rec := range records {
		byCountry[rec.Country] = append(byCountry[rec.Country], schema.SeriesPoint{
			Date:       rec.Date,
			DailyCases: rec.DailyCases,
		})
	}

	var out []schema.CountrySeries
	for _, country := range filter.Countries {
		points, ok := byCountry[country]
		if !ok {
			continue
		}
		sort.SliceStable(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
		out = append(out, schema.CountrySeries{
			Country: country,
			Points:  points,
		})
	}
	return out
}

// Trends classifies the week-over-week direction of each selected country.
// Countries with fewer than 7 days of history in the window are excluded
// rather than defaulted to stable.
func (s *CovidStore) Trends(filter schema.Filter) []schema.TrendEntry {
	var out []schema.TrendEntry
	for _, series := range s.Series(filter) {
		daily := make([]float64, len(series.Points))
		for i, p := range series.Points {
			daily[i] = p.DailyCases
		}

		class, change, ok := stats.ClassifyTrend(daily)
		if !ok {
			continue
		}
		out = append(out, schema.TrendEntry{
			Country:       series.Country,
			ChangePercent: change,
			Class:         class,
		})
	}
	return out
}

// RecentDailyMeans computes each selected country's mean daily cases over
// its most recent days rows inside the window, sorted highest first.
func (s *CovidStore) RecentDailyMeans(filter schema.Filter, days int) []schema.CountryMean {
	var out []schema.CountryMean
	for _, series := range s.Series(filter) {
		points := series.Points
		if len(points) > days {
			points = points[len(points)-days:]
		}
		daily := make([]float64, len(points))
		for i, p := range points {
			daily[i] = p.DailyCases
		}
		out = append(out, schema.CountryMean{
			Country:   series.Country,
			MeanDaily: stats.Mean(daily),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeanDaily > out[j].MeanDaily
	})
	return out
}

// Volatility computes the dispersion profile of each selected country with
// at least two rows in the window.
func (s *CovidStore) Volatility(filter schema.Filter) []schema.VolatilityRow {
	var out []schema.VolatilityRow
	for _, series := range s.Series(filter) {
		if len(series.Points) < 2 {
			continue
		}
		daily := make([]float64, len(series.Points))
		for i, p := range series.Points {
			daily[i] = p.DailyCases
		}

		mean := stats.Mean(daily)
		std := stats.StdDev(daily)
		min, max, ok := stats.Range(daily)
		if !ok {
			continue
		}

		out = append(out, schema.VolatilityRow{
			Country:                series.Country,
			Mean:                   mean,
			StdDev:                 std,
			CoefficientOfVariation: stats.CoefficientOfVariation(std, mean),
			Min:                    min,
			Max:                    max,
		})
	}
	return out
}
