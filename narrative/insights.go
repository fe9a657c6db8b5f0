package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/epistat/covid-dashboard-api/consts"
	"github.com/epistat/covid-dashboard-api/schema"
	"github.com/epistat/covid-dashboard-api/utils"
)

// MapInsight describes the geographic distribution panel.
func (g *Generator) MapInsight() string {
	return g.localize("narrative.map.insight", nil)
}

// TrendInsight names the headline single-day record and lists each
// classified country's direction.
func (g *Generator) TrendInsight(peak schema.PeakRecord, trends []schema.TrendEntry) string {
	parts := make([]string, 0, len(trends))
	for _, trend := range trends {
		var word string
		switch trend.Class {
		case schema.TrendIncreasing:
			word = g.localize("narrative.trend.increasing", map[string]interface{}{
				"Change": utils.FormatFloat(g.lang, trend.ChangePercent, 0),
			})
		case schema.TrendDecreasing:
			word = g.localize("narrative.trend.decreasing", map[string]interface{}{
				"Change": utils.FormatFloat(g.lang, -trend.ChangePercent, 0),
			})
		default:
			word = g.localize("narrative.trend.stable", nil)
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", trend.Country, word))
	}

	trendText := g.localize("narrative.trend.none", nil)
	if len(parts) > 0 {
		trendText = strings.Join(parts, ", ")
	}

	return g.localize("narrative.trend.insight", map[string]interface{}{
		"PeakCountry": peak.Country,
		"PeakDate":    utils.FormatDate(g.lang, peak.Date),
		"PeakValue":   utils.FormatCount(g.lang, int64(peak.DailyCases)),
		"TrendText":   trendText,
	})
}

func (g *Generator) TrendEmpty() string {
	return g.localize("narrative.trend.empty", nil)
}

// PeaksInsight summarizes when countries hit their daily records: the span
// between the earliest and latest record and the modal calendar quarter.
// It needs at least two countries to say anything.
func (g *Generator) PeaksInsight(peaks []schema.PeakRecord) string {
	if len(peaks) < 2 {
		return ""
	}

	first, last := peaks[0].Date, peaks[0].Date
	counts := map[string]int{}
	display := map[string]string{}
	var quarters []string
	for _, peak := range peaks {
		if peak.Date.Before(first) {
			first = peak.Date
		}
		if peak.Date.After(last) {
			last = peak.Date
		}
		// Sortable key, so ties resolve to the earliest quarter.
		key := fmt.Sprintf("%d-Q%d", peak.Date.Year(), (int(peak.Date.Month())-1)/3+1)
		if counts[key] == 0 {
			quarters = append(quarters, key)
			display[key] = utils.FormatQuarter(g.lang, peak.Date)
		}
		counts[key]++
	}

	sort.Strings(quarters)
	peakQuarter := quarters[0]
	for _, q := range quarters {
		if counts[q] > counts[peakQuarter] {
			peakQuarter = q
		}
	}

	spanDays := int(last.Sub(first).Hours() / 24)
	return g.localize("narrative.peaks.insight", map[string]interface{}{
		"SpanDays":     utils.FormatCount(g.lang, int64(spanDays)),
		"PeakQuarter":  display[peakQuarter],
		"QuarterCount": counts[peakQuarter],
	})
}

func (g *Generator) PeaksEmpty() string {
	return g.localize("narrative.peaks.empty", nil)
}

// ContributionInsight summarizes the global top-N breakdown together with
// its concentration index.
func (g *Generator) ContributionInsight(breakdown schema.Breakdown, concentration float64) string {
	var top5, topAll float64
	for i, entry := range breakdown.Entries {
		if i < 5 {
			top5 += entry.Percentage
		}
		topAll += entry.Percentage
	}

	return g.localize("narrative.contribution.insight", map[string]interface{}{
		"Top10Percent":  utils.FormatFloat(g.lang, topAll, 1),
		"Top5Percent":   utils.FormatFloat(g.lang, top5, 1),
		"Concentration": utils.FormatFloat(g.lang, concentration, 3),
		"OthersPercent": utils.FormatFloat(g.lang, breakdown.Others.Percentage, 1),
	})
}

// TopInsight compares the top-ranked country against the last ranked one
// and names the highest per-capita burden among the ranked countries.
func (g *Generator) TopInsight(entries []schema.RankEntry) string {
	if len(entries) < 2 {
		return ""
	}

	leader := entries[0]
	tail := entries[len(entries)-1]
	var ratio float64
	if tail.CumulativeCases > 0 {
		ratio = leader.CumulativeCases / tail.CumulativeCases
	}

	perCapitaLeader := "N/A"
	var perCapitaValue float64
	for _, entry := range entries {
		if per1000, ok := consts.CasesPer1000(entry.Country, entry.CumulativeCases); ok && per1000 > perCapitaValue {
			perCapitaLeader = entry.Country
			perCapitaValue = per1000
		}
	}

	return g.localize("narrative.top.insight", map[string]interface{}{
		"Leader":          leader.Country,
		"Ratio":           utils.FormatFloat(g.lang, ratio, 1),
		"PerCapitaLeader": perCapitaLeader,
		"PerCapitaValue":  utils.FormatFloat(g.lang, perCapitaValue, 1),
	})
}

// DistributionInsight compares the largest and smallest selected countries
// and names the highest trailing daily average. It needs at least two
// countries to make a comparison.
func (g *Generator) DistributionInsight(entries []schema.ShareEntry, recent []schema.CountryMean) string {
	if len(entries) < 2 {
		return ""
	}

	max := entries[0]
	min := entries[len(entries)-1]
	var ratio float64
	if min.CumulativeCases > 0 {
		ratio = max.CumulativeCases / min.CumulativeCases
	}

	highestCountry := "N/A"
	var highestValue float64
	if len(recent) > 0 {
		highestCountry = recent[0].Country
		highestValue = recent[0].MeanDaily
	}

	return g.localize("narrative.distribution.insight", map[string]interface{}{
		"MaxCountry":          max.Country,
		"MaxPercent":          utils.FormatFloat(g.lang, max.Percentage, 1),
		"Ratio":               utils.FormatFloat(g.lang, ratio, 1),
		"MinCountry":          min.Country,
		"MinPercent":          utils.FormatFloat(g.lang, min.Percentage, 1),
		"HighestDailyCountry": highestCountry,
		"HighestDailyValue":   utils.FormatFloat(g.lang, highestValue, 0),
	})
}

func (g *Generator) DistributionZero() string {
	return g.localize("narrative.distribution.zero", nil)
}

func (g *Generator) DistributionEmpty() string {
	return g.localize("narrative.distribution.empty", nil)
}

// VolatilityInsight names the country with the highest coefficient of
// variation.
func (g *Generator) VolatilityInsight(rows []schema.VolatilityRow) string {
	if len(rows) == 0 {
		return ""
	}

	highest := rows[0]
	for _, row := range rows[1:] {
		if row.CoefficientOfVariation > highest.CoefficientOfVariation {
			highest = row
		}
	}

	return g.localize("narrative.volatility.insight", map[string]interface{}{
		"Country": highest.Country,
		"CV":      utils.FormatFloat(g.lang, highest.CoefficientOfVariation, 1),
	})
}

func (g *Generator) VolatilityInsufficient() string {
	return g.localize("narrative.volatility.insufficient", nil)
}

func (g *Generator) VolatilityEmpty() string {
	return g.localize("narrative.volatility.empty", nil)
}
