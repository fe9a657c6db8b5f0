package utils

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printers = map[string]*message.Printer{
	"en": message.NewPrinter(language.English),
	"id": message.NewPrinter(language.Indonesian),
}

func printerFor(lang string) *message.Printer {
	if p, ok := printers[lang]; ok {
		return p
	}
	return printers["en"]
}

// FormatCount renders an integer figure with the locale's digit grouping.
func FormatCount(lang string, value int64) string {
	return printerFor(lang).Sprintf("%d", value)
}

// FormatFloat renders a float figure with the locale's decimal mark and
// digit grouping, using the given number of decimals.
func FormatFloat(lang string, value float64, decimals int) string {
	verb := fmt.Sprintf("%%.%df", decimals)
	return printerFor(lang).Sprintf(verb, value)
}

// FormatDate renders a calendar date for narrative text.
func FormatDate(lang string, date time.Time) string {
	if lang == "id" {
		return date.Format("02-01-2006")
	}
	return date.Format("02 January 2006")
}

// FormatQuarter renders a date's calendar quarter, e.g. "Q3 2021". The year
// deliberately bypasses locale digit grouping.
func FormatQuarter(lang string, date time.Time) string {
	quarter := (int(date.Month())-1)/3 + 1
	return fmt.Sprintf("Q%d %d", quarter, date.Year())
}
