// ABOUTME: Disk cache for fetched pages keyed by URL hash
// ABOUTME: Lets interrupted or repeated crawls skip pages already downloaded
package crawl

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Cache stores raw page bodies under a single directory, one file per URL.
type Cache struct {
	dir string
}

// NewCache returns a cache rooted at dir. An empty dir disables caching.
func NewCache(dir string) Cache {
	return Cache{dir: dir}
}

// Read returns the cached body for pageURL. The second return reports
// whether the page was present; a missing entry is not an error.
func (c Cache) Read(pageURL string) ([]byte, bool, error) {
	if c.dir == "" {
		return nil, false, nil
	}
	body, err := os.ReadFile(filepath.Join(c.dir, cacheKey(pageURL)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading page cache: %w", err)
	}
	return body, true, nil
}

// Write stores the body for pageURL, creating the cache directory on demand.
func (c Cache) Write(pageURL string, body []byte) error {
	if c.dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.dir, cacheKey(pageURL)), body, 0o644); err != nil {
		return fmt.Errorf("writing page cache: %w", err)
	}
	return nil
}

// cacheKey derives a stable file name from a URL.
func cacheKey(pageURL string) string {
	sum := sha256.Sum256([]byte(pageURL))
	return hex.EncodeToString(sum[:8]) + ".html"
}
