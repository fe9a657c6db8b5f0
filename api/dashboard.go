package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epistat/covid-dashboard-api/consts"
	"github.com/epistat/covid-dashboard-api/narrative"
	"github.com/epistat/covid-dashboard-api/schema"
	"github.com/epistat/covid-dashboard-api/stats"
)

const (
	topNCountries    = 10
	recentWindowDays = 30

	dateLayout = "2006-01-02"
)

type dashboardQueryParams struct {
	Countries string `form:"countries"`
	Start     string `form:"start"`
	End       string `form:"end"`
	Lang      string `form:"lang"`
}

// bindFilter parses the shared panel query parameters. When the countries
// parameter is absent entirely the default sidebar selection applies; an
// explicitly empty value means an empty selection.
func (s *Server) bindFilter(c *gin.Context) (schema.Filter, *narrative.Generator, bool) {
	var params dashboardQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return schema.Filter{}, nil, false
	}

	gen := narrative.NewGenerator(requestLang(c, params.Lang))

	var filter schema.Filter
	if _, present := c.GetQuery("countries"); !present {
		filter.Countries = s.defaultCountries()
	} else {
		for _, country := range strings.Split(params.Countries, ",") {
			if country = strings.TrimSpace(country); country != "" {
				filter.Countries = append(filter.Countries, country)
			}
		}
	}

	if params.Start != "" {
		start, err := time.ParseInLocation(dateLayout, params.Start, time.UTC)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return schema.Filter{}, nil, false
		}
		filter.Start = start
	}
	if params.End != "" {
		end, err := time.ParseInLocation(dateLayout, params.End, time.UTC)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return schema.Filter{}, nil, false
		}
		filter.End = end
	}

	return filter, gen, true
}

func requestLang(c *gin.Context, lang string) string {
	if lang != "" {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	if len(accept) >= 2 {
		return accept[:2]
	}
	return narrative.LangEnglish
}

// defaultCountries is the sidebar's pre-selected subset, restricted to
// countries actually present in the dataset.
func (s *Server) defaultCountries() []string {
	present := map[string]struct{}{}
	for _, country := range s.store.Countries() {
		present[country] = struct{}{}
	}

	var out []string
	for _, country := range consts.DefaultCountries {
		if _, ok := present[country]; ok {
			out = append(out, country)
		}
	}
	return out
}

func emptyPanel(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"empty":   true,
		"message": message,
	})
}

func (s *Server) countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries": s.store.Countries(),
		"default":   s.defaultCountries(),
	})
}

func (s *Server) dashboardSummary(c *gin.Context) {
	filter, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	summary, ok := s.store.Summary(filter)
	if !ok {
		emptyPanel(c, gen.Empty())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":     summary,
		"description": gen.HeaderDescription(),
	})
}

func (s *Server) dashboardMap(c *gin.Context) {
	filter, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	points, date, ok := s.store.MapSnapshot(filter)
	if !ok {
		emptyPanel(c, gen.Empty())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      date.Format(dateLayout),
		"points":    points,
		"narrative": gen.MapInsight(),
	})
}

func (s *Server) dashboardTrend(c *gin.Context) {
	filter, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	series := s.store.Series(filter)
	peaks := s.store.DailyPeaks(filter)
	if len(series) == 0 || len(peaks) == 0 {
		emptyPanel(c, gen.TrendEmpty())
		return
	}

	trends := s.store.Trends(filter)

	c.JSON(http.StatusOK, gin.H{
		"series":    series,
		"peak":      peaks[0],
		"trends":    trends,
		"narrative": gen.TrendInsight(peaks[0], trends),
	})
}

func (s *Server) dashboardPeaks(c *gin.Context) {
	filter, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	peaks := s.store.DailyPeaks(filter)
	if len(peaks) == 0 {
		emptyPanel(c, gen.PeaksEmpty())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"peaks":     peaks,
		"narrative": gen.PeaksInsight(peaks),
	})
}

func (s *Server) dashboardContribution(c *gin.Context) {
	_, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	// Global scope on purpose: the contribution panel ignores the sidebar
	// filter so its total stays the worldwide one.
	breakdown := s.store.GlobalBreakdown(topNCountries)

	shares := make([]float64, len(breakdown.Entries))
	for i, entry := range breakdown.Entries {
		shares[i] = entry.Percentage
	}
	concentration := stats.ConcentrationIndex(shares)

	c.JSON(http.StatusOK, gin.H{
		"breakdown":     breakdown,
		"concentration": concentration,
		"narrative":     gen.ContributionInsight(breakdown, concentration),
	})
}

func (s *Server) dashboardTop(c *gin.Context) {
	_, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	entries := s.store.TopCumulative(topNCountries)

	c.JSON(http.StatusOK, gin.H{
		"entries":   entries,
		"narrative": gen.TopInsight(entries),
	})
}

func (s *Server) dashboardDistribution(c *gin.Context) {
	filter, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	breakdown, ok := s.store.FilteredBreakdown(filter)
	if !ok {
		emptyPanel(c, gen.DistributionEmpty())
		return
	}
	if breakdown.Total == 0 {
		emptyPanel(c, gen.DistributionZero())
		return
	}

	recent := s.store.RecentDailyMeans(filter, recentWindowDays)

	c.JSON(http.StatusOK, gin.H{
		"date":      breakdown.Date.Format(dateLayout),
		"entries":   breakdown.Entries,
		"total":     breakdown.Total,
		"narrative": gen.DistributionInsight(breakdown.Entries, recent),
	})
}

func (s *Server) dashboardVolatility(c *gin.Context) {
	filter, gen, ok := s.bindFilter(c)
	if !ok {
		return
	}

	if len(filter.Countries) == 0 {
		emptyPanel(c, gen.VolatilityEmpty())
		return
	}

	rows := s.store.Volatility(filter)
	if len(rows) == 0 {
		emptyPanel(c, gen.VolatilityInsufficient())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":      rows,
		"narrative": gen.VolatilityInsight(rows),
	})
}
