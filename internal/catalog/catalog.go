// ABOUTME: Catalog ingestion from the nine-column CSV into immutable records
// ABOUTME: Malformed rows are skipped and counted, never fatal
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
)

// columnCount is the required number of fields per catalog row:
// title, kind, year, genres, rating, director, cast, platform, overview.
const columnCount = 9

// Catalog owns the ordered media records for the lifetime of the process.
// Records are read-only after load.
type Catalog struct {
	records []models.MediaRecord
	skipped int
}

// New builds a catalog directly from records, preserving their order.
func New(records []models.MediaRecord) *Catalog {
	return &Catalog{records: records}
}

// Load reads the catalog CSV at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	logging.Info().
		Str("path", path).
		Int("records", c.Len()).
		Int("skipped", c.Skipped()).
		Msg("catalog loaded")
	return c, nil
}

// Read parses catalog rows from r. A header row is detected and dropped; rows
// with fewer than nine fields or unparseable quoting are skipped and counted.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	c := &Catalog{}
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				c.skipped++
				logging.Warn().Err(err).Msg("skipping malformed catalog row")
				continue
			}
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}
		if first {
			first = false
			if isHeader(row) {
				continue
			}
		}
		if len(row) < columnCount {
			c.skipped++
			logging.Warn().Int("fields", len(row)).Msg("skipping short catalog row")
			continue
		}
		c.records = append(c.records, parseRecord(row))
	}
	return c, nil
}

// Records returns the catalog's records in load order. Callers must not
// modify the returned slice.
func (c *Catalog) Records() []models.MediaRecord {
	return c.records
}

// Len returns the number of loaded records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Skipped returns how many rows the loader rejected.
func (c *Catalog) Skipped() int {
	return c.skipped
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "title")
}

func parseRecord(row []string) models.MediaRecord {
	rating, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		rating = 0.0
	}

	platform := strings.TrimSpace(row[7])
	if platform == "" {
		platform = models.UnknownPlatform
	}

	return models.MediaRecord{
		Title:    strings.TrimSpace(row[0]),
		Kind:     models.ParseKind(row[1]),
		Year:     strings.TrimSpace(row[2]),
		Genres:   splitGenres(row[3]),
		Rating:   rating,
		Director: strings.TrimSpace(row[5]),
		Cast:     splitList(row[6]),
		Platform: platform,
		Overview: strings.TrimSpace(row[8]),
	}
}

// splitGenres splits a comma-joined genre field, lowercasing and deduplicating.
func splitGenres(field string) []string {
	seen := make(map[string]struct{})
	var genres []string
	for _, part := range strings.Split(field, ",") {
		g := strings.ToLower(strings.TrimSpace(part))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	return genres
}

// splitList splits a comma-joined field, preserving case and order.
func splitList(field string) []string {
	var items []string
	for _, part := range strings.Split(field, ",") {
		if s := strings.TrimSpace(part); s != "" {
			items = append(items, s)
		}
	}
	return items
}
