package schema

import "time"

// Source column names. They are a load-time contract: a dataset file
// missing any of them cannot be served.
const (
	ColumnCountry    = "negara"
	ColumnDate       = "tanggal"
	ColumnLatitude   = "latitude"
	ColumnLongitude  = "longitude"
	ColumnDaily      = "kasus_harian"
	ColumnCumulative = "kasus_kumulatif"
)

// CaseRecord is one row of the case dataset: the reported numbers of a
// single country on a single date. DailyCases and CumulativeCases are NaN
// when the source cell was blank or not numeric.
type CaseRecord struct {
	Country         string    `json:"country"`
	Date            time.Time `json:"date"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	DailyCases      float64   `json:"daily_cases"`
	CumulativeCases float64   `json:"cumulative_cases"`
}
