// ABOUTME: Orchestrates the catalog crawl: fetch chart, follow detail pages, write CSV
// ABOUTME: Applies a politeness delay, bounded retries with backoff, and the page cache
package crawl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
	"github.com/moviemate/moviemate/internal/util"
)

// DefaultChartURL is the chart scraped when no override is given.
const DefaultChartURL = "https://www.imdb.com/chart/top/"

const (
	maxFetchRetries = 3
	baseRetryDelay  = 500 * time.Millisecond
	userAgent       = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// Options configure a crawl run.
type Options struct {
	ChartURL string        // chart page to scrape; DefaultChartURL when empty
	Delay    time.Duration // politeness pause after each live fetch
	Limit    int           // cap on catalog entries; 0 means all
	CacheDir string        // page cache location; empty disables caching
	Client   *http.Client  // defaults to a client with a 30s timeout
}

// Crawler scrapes the chart and its detail pages into the catalog CSV.
type Crawler struct {
	opts   Options
	cache  Cache
	client *http.Client
}

// New returns a crawler for the given options.
func New(opts Options) *Crawler {
	if opts.ChartURL == "" {
		opts.ChartURL = DefaultChartURL
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Crawler{
		opts:   opts,
		cache:  NewCache(opts.CacheDir),
		client: client,
	}
}

// Run scrapes the chart, follows each entry's detail page, and writes the
// nine-column catalog CSV to outPath. Entries whose detail page cannot be
// fetched or parsed are skipped with a warning. Returns the number of rows
// written.
func (c *Crawler) Run(ctx context.Context, outPath string) (int, error) {
	chartHTML, err := c.fetch(ctx, c.opts.ChartURL)
	if err != nil {
		return 0, fmt.Errorf("fetching chart: %w", err)
	}
	entries, err := ParseChart(chartHTML, c.opts.ChartURL)
	if err != nil {
		return 0, err
	}
	if c.opts.Limit > 0 && len(entries) > c.opts.Limit {
		entries = entries[:c.opts.Limit]
	}
	logging.Info().Int("entries", len(entries)).Str("chart", c.opts.ChartURL).Msg("Chart parsed")

	records := make([]models.MediaRecord, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		detailHTML, err := c.fetch(ctx, entry.DetailURL)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			logging.Warn().Err(err).Str("title", entry.Title).Msg("Skipping entry, detail fetch failed")
			continue
		}
		detail, err := ParseDetail(detailHTML)
		if err != nil {
			logging.Warn().Err(err).Str("title", entry.Title).Msg("Skipping entry, detail parse failed")
			continue
		}
		records = append(records, assemble(entry, detail))
	}

	if err := WriteCatalog(outPath, records); err != nil {
		return 0, err
	}
	logging.Info().Int("records", len(records)).Str("path", outPath).Msg("Catalog written")
	return len(records), nil
}

// fetch returns the page body, consulting the disk cache first. Live fetches
// retry with jittered backoff and are followed by the politeness delay.
func (c *Crawler) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	if body, ok, err := c.cache.Read(pageURL); err != nil {
		return nil, err
	} else if ok {
		logging.Debug().Str("url", pageURL).Msg("Page cache hit")
		return body, nil
	}

	var lastErr error
	for attempt := 0; attempt <= maxFetchRetries; attempt++ {
		if attempt > 0 {
			backoff := util.CalculateBackoff(baseRetryDelay, attempt)
			logging.Debug().Str("url", pageURL).Int("attempt", attempt).Dur("backoff", backoff).Msg("Retrying fetch")
			if err := sleep(ctx, backoff); err != nil {
				return nil, err
			}
		}
		body, err := c.fetchOnce(ctx, pageURL)
		if err == nil {
			if err := c.cache.Write(pageURL, body); err != nil {
				logging.Warn().Err(err).Str("url", pageURL).Msg("Failed to cache page")
			}
			if err := sleep(ctx, c.opts.Delay); err != nil {
				return nil, err
			}
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("fetching %s after %d attempts: %w", pageURL, maxFetchRetries+1, lastErr)
}

func (c *Crawler) fetchOnce(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	return body, nil
}

// assemble merges a chart row and its detail page into a catalog record.
// The chart carries no streaming platform, so that column is left for the
// loader to default.
func assemble(entry ChartEntry, detail Detail) models.MediaRecord {
	return models.MediaRecord{
		Title:    entry.Title,
		Kind:     models.Movie,
		Year:     entry.Year,
		Genres:   detail.Genres,
		Rating:   entry.Rating,
		Director: detail.Director,
		Cast:     detail.Cast,
		Overview: detail.Overview,
	}
}

// WriteCatalog writes records as the nine-column catalog CSV, header included.
func WriteCatalog(path string, records []models.MediaRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"title", "kind", "year", "genres", "rating", "director", "cast", "platform", "overview"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing catalog header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Title,
			r.Kind.String(),
			r.Year,
			strings.Join(r.Genres, ", "),
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			r.Director,
			strings.Join(r.Cast, ", "),
			r.Platform,
			r.Overview,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing catalog row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing catalog: %w", err)
	}
	return nil
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
