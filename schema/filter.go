package schema

import "time"

// Filter is the user-controlled selection every dashboard panel is computed
// over: a country set and an inclusive date interval. The store clamps the
// interval to the dataset's own date range before it is applied.
type Filter struct {
	Countries []string  `json:"countries"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// HasCountry reports whether c is part of the selection.
func (f Filter) HasCountry(c string) bool {
	for _, sel := range f.Countries {
		if sel == c {
			return true
		}
	}
	return false
}
