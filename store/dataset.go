package store

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epistat/covid-dashboard-api/schema"
)

const datasetLogPrefix = "dataset"

var (
	ErrDatasetNotLoaded = fmt.Errorf("dataset not loaded")
	ErrDatasetEmpty     = fmt.Errorf("dataset has no records")
	ErrMissingColumn    = fmt.Errorf("dataset missing required column")
)

// Dataset is the immutable case table shared by every request. It is never
// mutated after load, so concurrent reads need no locking.
type Dataset struct {
	Records []schema.CaseRecord

	countries []string
	minDate   time.Time
	maxDate   time.Time
}

var (
	loadOnce  sync.Once
	loadedSet *Dataset
	loadErr   error
)

// LoadDataset reads the gzip-compressed case CSV at path. The result is
// memoized for the process lifetime; repeated calls return the same table
// without touching the file again.
func LoadDataset(path string) (*Dataset, error) {
	loadOnce.Do(func() {
		loadedSet, loadErr = readDataset(path)
	})
	return loadedSet, loadErr
}

func readDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream of %s: %w", path, err)
	}
	defer zr.Close()

	return decodeDataset(zr)
}

func decodeDataset(source io.Reader) (*Dataset, error) {
	r := csv.NewReader(source)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	required := []string{
		schema.ColumnCountry,
		schema.ColumnDate,
		schema.ColumnLatitude,
		schema.ColumnLongitude,
		schema.ColumnDaily,
		schema.ColumnCumulative,
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	records := make([]schema.CaseRecord, 0, 4096)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		date, err := time.ParseInLocation("2006-01-02", row[idx[schema.ColumnDate]], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", row[idx[schema.ColumnDate]], err)
		}

		records = append(records, schema.CaseRecord{
			Country:         row[idx[schema.ColumnCountry]],
			Date:            date,
			Latitude:        coerceNumeric(row[idx[schema.ColumnLatitude]]),
			Longitude:       coerceNumeric(row[idx[schema.ColumnLongitude]]),
			DailyCases:      coerceNumeric(row[idx[schema.ColumnDaily]]),
			CumulativeCases: coerceNumeric(row[idx[schema.ColumnCumulative]]),
		})
	}

	if len(records) == 0 {
		return nil, ErrDatasetEmpty
	}

	ds := NewDataset(records)
	log.WithFields(log.Fields{
		"prefix":    datasetLogPrefix,
		"records":   len(ds.Records),
		"countries": len(ds.countries),
		"from":      ds.minDate.Format("2006-01-02"),
		"to":        ds.maxDate.Format("2006-01-02"),
	}).Info("dataset loaded")

	return ds, nil
}

// NewDataset indexes a record slice into a servable dataset.
func NewDataset(records []schema.CaseRecord) *Dataset {
	ds := &Dataset{Records: records}

	seen := map[string]struct{}{}
	for i, rec := range records {
		if _, ok := seen[rec.Country]; !ok {
			seen[rec.Country] = struct{}{}
			ds.countries = append(ds.countries, rec.Country)
		}
		if i == 0 || rec.Date.Before(ds.minDate) {
			ds.minDate = rec.Date
		}
		if i == 0 || rec.Date.After(ds.maxDate) {
			ds.maxDate = rec.Date
		}
	}
	sort.Strings(ds.countries)

	return ds
}

// coerceNumeric parses a cell to float64. Blank or malformed cells become
// NaN instead of an error; NaN cells are skipped by downstream aggregates.
func coerceNumeric(cell string) float64 {
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
