package stats

import (
	"github.com/epistat/covid-dashboard-api/schema"
)

const (
	trendWindow = 7

	// A week-over-week change beyond ±20% counts as a real move.
	trendThreshold = 20.0
)

// ClassifyTrend compares the mean of the most recent 7 days against the mean
// of the 7 days preceding them. With fewer than 14 days of history the two
// windows overlap; with fewer than 7 the series is not classifiable and ok
// is false.
func ClassifyTrend(daily []float64) (class schema.TrendClass, changePercent float64, ok bool) {
	if len(daily) < trendWindow {
		return "", 0, false
	}

	latest := Mean(daily[len(daily)-trendWindow:])

	prevWindow := daily
	if len(prevWindow) > 2*trendWindow {
		prevWindow = prevWindow[len(prevWindow)-2*trendWindow:]
	}
	previous := Mean(prevWindow[:trendWindow])

	changePercent = ChangeRate(latest, previous)
	switch {
	case changePercent > trendThreshold:
		class = schema.TrendIncreasing
	case changePercent < -trendThreshold:
		class = schema.TrendDecreasing
	default:
		class = schema.TrendStable
	}
	return class, changePercent, true
}
