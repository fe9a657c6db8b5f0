package store

import (
	"time"

	"github.com/epistat/covid-dashboard-api/schema"
)

var testBaseDate = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testBaseDate.AddDate(0, 0, offset)
}

func testRecord(country string, offset int, daily, cumulative float64) schema.CaseRecord {
	return schema.CaseRecord{
		Country:         country,
		Date:            day(offset),
		Latitude:        1.5,
		Longitude:       103.8,
		DailyCases:      daily,
		CumulativeCases: cumulative,
	}
}

// threeCountryStore builds the scenario dataset used across tests:
// 3 countries with 30 days of history each.
func threeCountryStore() *CovidStore {
	var records []schema.CaseRecord
	for _, country := range []string{"Alpha", "Beta", "Gamma"} {
		cumulative := 0.0
		for offset := 0; offset < 30; offset++ {
			daily := 10.0
			if country == "Beta" {
				daily = 20
			}
			if country == "Gamma" {
				daily = 5
			}
			cumulative += daily
			records = append(records, testRecord(country, offset, daily, cumulative))
		}
	}
	return NewCovidStore(NewDataset(records))
}
