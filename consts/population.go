package consts

// PopulationEstimates holds rough population figures for the countries that
// usually occupy the top of the cumulative ranking. Used for the
// cases-per-1000 comparison; countries absent from the table are skipped.
var PopulationEstimates = map[string]int64{
	"US":      331000000,
	"India":   1380000000,
	"Brazil":  213000000,
	"Russia":  146000000,
	"UK":      67000000,
	"France":  65000000,
	"Turkey":  84000000,
	"Italy":   60000000,
	"Spain":   47000000,
	"Germany": 83000000,
}

// DefaultCountries is the sidebar's pre-selected subset. Entries not present
// in the loaded dataset are dropped at request time.
var DefaultCountries = []string{"Indonesia", "US", "India"}

// CasesPer1000 returns cases per 1000 inhabitants for a country, or false
// when no population estimate exists.
func CasesPer1000(country string, cases float64) (float64, bool) {
	pop, ok := PopulationEstimates[country]
	if !ok || pop <= 0 {
		return 0, false
	}
	return cases / float64(pop) * 1000, true
}
