package schema

import "time"

// Summary is the KPI row: headline figures for the filtered subset.
type Summary struct {
	LatestDate   time.Time `json:"latest_date"`
	TotalCases   int64     `json:"total_cases"`
	AverageDaily int64     `json:"average_daily"`
	CountryCount int       `json:"country_count"`
}

// CountrySnapshot is one country's standing at a snapshot date, used for the
// map and distribution panels.
type CountrySnapshot struct {
	Country         string  `json:"country"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	CumulativeCases float64 `json:"cumulative_cases"`
}

// ShareEntry is one slice of a contribution breakdown.
type ShareEntry struct {
	Country         string  `json:"country"`
	CumulativeCases float64 `json:"cumulative_cases"`
	Percentage      float64 `json:"percentage"`
}

// Breakdown is a top-N contribution table. Others holds the remainder of the
// total after the named entries; it is derived by subtraction so the
// percentages always add up to exactly 100.
type Breakdown struct {
	Date    time.Time    `json:"date"`
	Total   float64      `json:"total"`
	Entries []ShareEntry `json:"entries"`
	Others  ShareEntry   `json:"others"`
}

// RankEntry is one row of the all-time top-N ranking.
type RankEntry struct {
	Country         string  `json:"country"`
	CumulativeCases float64 `json:"cumulative_cases"`
}

// CountryMean is a country's trailing mean of daily cases.
type CountryMean struct {
	Country   string  `json:"country"`
	MeanDaily float64 `json:"mean_daily"`
}

// PeakRecord is a country's worst single day within the active window.
type PeakRecord struct {
	Country    string    `json:"country"`
	Date       time.Time `json:"date"`
	DailyCases float64   `json:"daily_cases"`
}

// SeriesPoint is one day of a country's daily-case series.
type SeriesPoint struct {
	Date       time.Time `json:"date"`
	DailyCases float64   `json:"daily_cases"`
}

// CountrySeries is a country's daily-case series in ascending date order.
type CountrySeries struct {
	Country string        `json:"country"`
	Points  []SeriesPoint `json:"points"`
}

// TrendClass labels the direction of a country's recent case trend.
type TrendClass string

const (
	TrendIncreasing TrendClass = "increasing"
	TrendDecreasing TrendClass = "decreasing"
	TrendStable     TrendClass = "stable"
)

// TrendEntry is the week-over-week classification of one country.
type TrendEntry struct {
	Country       string     `json:"country"`
	ChangePercent float64    `json:"change_percent"`
	Class         TrendClass `json:"class"`
}

// VolatilityRow is the dispersion profile of one country's daily cases.
type VolatilityRow struct {
	Country                string  `json:"country"`
	Mean                   float64 `json:"mean"`
	StdDev                 float64 `json:"std_dev"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	Min                    float64 `json:"min"`
	Max                    float64 `json:"max"`
}

// DatasetInfo describes the loaded dataset for the footer caption and the
// metrics endpoint.
type DatasetInfo struct {
	Records      int       `json:"records"`
	CountryCount int       `json:"country_count"`
	FirstDate    time.Time `json:"first_date"`
	LastDate     time.Time `json:"last_date"`
}
