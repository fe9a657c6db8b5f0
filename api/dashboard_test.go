package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/epistat/covid-dashboard-api/api/mocks"
	"github.com/epistat/covid-dashboard-api/schema"
	"github.com/epistat/covid-dashboard-api/utils"
)

func TestMain(m *testing.M) {
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestDashboardSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	c.EXPECT().Countries().Return([]string{"India", "Indonesia", "US", "Vietnam"}).Times(1)
	c.EXPECT().Summary(schema.Filter{Countries: []string{"Indonesia", "US", "India"}}).Return(schema.Summary{
		LatestDate:   time.Date(2022, time.May, 14, 0, 0, 0, 0, time.UTC),
		TotalCases:   123456,
		AverageDaily: 789,
		CountryCount: 3,
	}, true).Times(1)

	router := gin.New()
	router.GET("/", s.dashboardSummary)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Summary     schema.Summary `json:"summary"`
		Description string         `json:"description"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(123456), jResp.Summary.TotalCases)
	assert.Equal(t, int64(789), jResp.Summary.AverageDaily)
	assert.Contains(t, jResp.Description, "COVID-19")
}

func TestDashboardSummaryEmptyWindow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	// One country selected with zero rows in the window renders the
	// placeholder rather than failing.
	c.EXPECT().Summary(schema.Filter{
		Countries: []string{"Indonesia"},
		Start:     time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2030, time.February, 1, 0, 0, 0, 0, time.UTC),
	}).Return(schema.Summary{}, false).Times(1)

	router := gin.New()
	router.GET("/", s.dashboardSummary)

	req := httptest.NewRequest("GET", "/?countries=Indonesia&start=2030-01-01&end=2030-02-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, true, jResp["empty"])
	assert.Equal(t, "No data for the selected filter.", jResp["message"])
}

func TestDashboardSummaryBadDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	router := gin.New()
	router.GET("/", s.dashboardSummary)

	req := httptest.NewRequest("GET", "/?countries=Indonesia&start=14-05-2022", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1011), jResp.Code)
}

func TestCountries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	c.EXPECT().Countries().Return([]string{"India", "Indonesia", "US", "Vietnam"}).Times(2)

	router := gin.New()
	router.GET("/", s.countries)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]string
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, []string{"India", "Indonesia", "US", "Vietnam"}, jResp["countries"])
	assert.Equal(t, []string{"Indonesia", "US", "India"}, jResp["default"])
}

func TestDashboardTrendEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	c.EXPECT().Series(gomock.Any()).Return(nil).Times(1)
	c.EXPECT().DailyPeaks(gomock.Any()).Return(nil).Times(1)

	router := gin.New()
	router.GET("/", s.dashboardTrend)

	req := httptest.NewRequest("GET", "/?countries=Indonesia&lang=id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, true, jResp["empty"])
	assert.Equal(t, "Tidak ada data yang tersedia untuk analisis tren.", jResp["message"])
}

func TestDashboardTrend(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	peak := schema.PeakRecord{
		Country:    "India",
		Date:       time.Date(2021, time.May, 6, 0, 0, 0, 0, time.UTC),
		DailyCases: 414188,
	}
	c.EXPECT().Series(gomock.Any()).Return([]schema.CountrySeries{
		{Country: "India", Points: []schema.SeriesPoint{{Date: peak.Date, DailyCases: peak.DailyCases}}},
	}).Times(1)
	c.EXPECT().DailyPeaks(gomock.Any()).Return([]schema.PeakRecord{peak}).Times(1)
	c.EXPECT().Trends(gomock.Any()).Return([]schema.TrendEntry{
		{Country: "India", ChangePercent: -35.2, Class: schema.TrendDecreasing},
	}).Times(1)

	router := gin.New()
	router.GET("/", s.dashboardTrend)

	req := httptest.NewRequest("GET", "/?countries=India", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Peak      schema.PeakRecord `json:"peak"`
		Narrative string            `json:"narrative"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, peak.Country, jResp.Peak.Country)
	assert.True(t, peak.Date.Equal(jResp.Peak.Date))
	assert.Equal(t, peak.DailyCases, jResp.Peak.DailyCases)
	assert.Contains(t, jResp.Narrative, "India (decreasing 35%)")
}

func TestDashboardVolatilityEmptySelection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	router := gin.New()
	router.GET("/", s.dashboardVolatility)

	// An explicitly empty selection never reaches the store.
	req := httptest.NewRequest("GET", "/?countries=", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, true, jResp["empty"])
	assert.Equal(t, "Select at least one country for the volatility analysis.", jResp["message"])
}

func TestDashboardDistributionZeroTotal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	c.EXPECT().FilteredBreakdown(gomock.Any()).Return(schema.Breakdown{
		Entries: []schema.ShareEntry{{Country: "Indonesia"}},
	}, true).Times(1)

	router := gin.New()
	router.GET("/", s.dashboardDistribution)

	req := httptest.NewRequest("GET", "/?countries=Indonesia", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, true, jResp["empty"])
	assert.Equal(t, "Total cases in the selected countries are zero.", jResp["message"])
}

func TestDashboardContribution(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	c.EXPECT().GlobalBreakdown(topNCountries).Return(schema.Breakdown{
		Total: 1000,
		Entries: []schema.ShareEntry{
			{Country: "US", CumulativeCases: 600, Percentage: 60},
			{Country: "India", CumulativeCases: 300, Percentage: 30},
		},
		Others: schema.ShareEntry{Country: "Others", CumulativeCases: 100, Percentage: 10},
	}).Times(1)

	router := gin.New()
	router.GET("/", s.dashboardContribution)

	req := httptest.NewRequest("GET", "/?countries=Indonesia", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Concentration float64 `json:"concentration"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)

	assert.Nil(t, err, "wrong json unmarshal")
	// Shares 60/30 give (2*(1*30+2*60))/(2*90) - 3/2.
	assert.InDelta(t, 1.0/6.0, jResp.Concentration, 1e-9)
}

func TestRequestLangPrefersQueryOverHeader(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockCovidCore(ctl)
	s := Server{store: c}

	c.EXPECT().Summary(gomock.Any()).Return(schema.Summary{}, false).Times(2)

	router := gin.New()
	router.GET("/", s.dashboardSummary)

	req := httptest.NewRequest("GET", "/?countries=Indonesia&lang=id", nil)
	req.Header.Set("Accept-Language", "en-US")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var jResp map[string]interface{}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, "Tidak ada data untuk filter yang dipilih.", jResp["message"])

	req = httptest.NewRequest("GET", "/?countries=Indonesia", nil)
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp))
	assert.Equal(t, "Tidak ada data untuk filter yang dipilih.", jResp["message"])
}
