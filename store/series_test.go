package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epistat/covid-dashboard-api/schema"
)

func TestSeriesSortedAndInSelectionOrder(t *testing.T) {
	s := threeCountryStore()

	series := s.Series(schema.Filter{Countries: []string{"Gamma", "Alpha"}})
	assert.Len(t, series, 2)
	assert.Equal(t, "Gamma", series[0].Country)
	assert.Equal(t, "Alpha", series[1].Country)

	for _, cs := range series {
		for i := 1; i < len(cs.Points); i++ {
			assert.True(t, cs.Points[i-1].Date.Before(cs.Points[i].Date))
		}
	}
}

func TestTrendsExcludesShortHistory(t *testing.T) {
	var records []schema.CaseRecord
	// Shorty has 6 days of data, Exact has exactly 7.
	for offset := 0; offset < 6; offset++ {
		records = append(records, testRecord("Shorty", offset, 10, float64(10*(offset+1))))
	}
	for offset := 0; offset < 7; offset++ {
		records = append(records, testRecord("Exact", offset, 10, float64(10*(offset+1))))
	}
	s := NewCovidStore(NewDataset(records))

	trends := s.Trends(schema.Filter{Countries: []string{"Shorty", "Exact"}})
	assert.Len(t, trends, 1)
	assert.Equal(t, "Exact", trends[0].Country)
	assert.Equal(t, schema.TrendStable, trends[0].Class)
}

func TestTrendsClassifiesDoubling(t *testing.T) {
	var records []schema.CaseRecord
	for offset := 0; offset < 14; offset++ {
		daily := 10.0
		if offset >= 7 {
			daily = 20
		}
		records = append(records, testRecord("Alpha", offset, daily, 0))
	}
	s := NewCovidStore(NewDataset(records))

	trends := s.Trends(schema.Filter{Countries: []string{"Alpha"}})
	assert.Len(t, trends, 1)
	assert.Equal(t, schema.TrendIncreasing, trends[0].Class)
	assert.InDelta(t, 100.0, trends[0].ChangePercent, 1e-9)
}

func TestRecentDailyMeansUsesTrailingWindow(t *testing.T) {
	var records []schema.CaseRecord
	// 10 days at 100 followed by 30 days at 10.
	for offset := 0; offset < 40; offset++ {
		daily := 10.0
		if offset < 10 {
			daily = 100
		}
		records = append(records, testRecord("Alpha", offset, daily, 0))
	}
	s := NewCovidStore(NewDataset(records))

	means := s.RecentDailyMeans(schema.Filter{Countries: []string{"Alpha"}}, 30)
	assert.Len(t, means, 1)
	assert.InDelta(t, 10.0, means[0].MeanDaily, 1e-9)
}

func TestVolatility(t *testing.T) {
	s := threeCountryStore()

	rows := s.Volatility(schema.Filter{Countries: []string{"Alpha"}})
	assert.Len(t, rows, 1)
	assert.InDelta(t, 10.0, rows[0].Mean, 1e-9)
	// A constant series has zero dispersion.
	assert.InDelta(t, 0.0, rows[0].StdDev, 1e-9)
	assert.InDelta(t, 0.0, rows[0].CoefficientOfVariation, 1e-9)
	assert.Equal(t, 10.0, rows[0].Min)
	assert.Equal(t, 10.0, rows[0].Max)
}

func TestVolatilitySkipsSingleRowCountries(t *testing.T) {
	records := []schema.CaseRecord{
		testRecord("Lonely", 0, 5, 5),
		testRecord("Alpha", 0, 5, 5),
		testRecord("Alpha", 1, 15, 20),
	}
	s := NewCovidStore(NewDataset(records))

	rows := s.Volatility(schema.Filter{Countries: []string{"Lonely", "Alpha"}})
	assert.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].Country)
}

func TestVolatilityZeroMeanSeries(t *testing.T) {
	records := []schema.CaseRecord{
		testRecord("Alpha", 0, 0, 0),
		testRecord("Alpha", 1, 0, 0),
		testRecord("Alpha", 2, 0, 0),
	}
	s := NewCovidStore(NewDataset(records))

	rows := s.Volatility(schema.Filter{Countries: []string{"Alpha"}})
	assert.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].CoefficientOfVariation)
	assert.False(t, math.IsNaN(rows[0].CoefficientOfVariation))
}
