// ABOUTME: Pure HTML parsers for the IMDb Top 250 chart and title detail pages
// ABOUTME: No fetching, caching, or rate limiting here; callers supply the bytes
package crawl

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ChartEntry is one ranked row of the chart page.
type ChartEntry struct {
	Title     string
	DetailURL string
	Year      string
	Rating    float64
}

// Detail holds the fields scraped from a title's detail page.
type Detail struct {
	Genres   []string
	Director string
	Cast     []string
	Overview string
}

// ParseChart extracts ranked entries from the chart page HTML. Rows without
// a title link are skipped; an entirely empty chart is an error since it
// usually means a block page or a markup change.
func ParseChart(html []byte, baseURL string) ([]ChartEntry, error) {
	if len(html) == 0 {
		return nil, errors.New("empty chart page")
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing chart page: %w", err)
	}

	var entries []ChartEntry
	doc.Find("tbody.lister-list tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("td.titleColumn a").First()
		title := normSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return
		}
		year := strings.Trim(normSpace(row.Find("td.titleColumn span.secondaryInfo").First().Text()), "()")
		rating, _ := strconv.ParseFloat(normSpace(row.Find("td.ratingColumn.imdbRating strong").First().Text()), 64)
		entries = append(entries, ChartEntry{
			Title:     title,
			DetailURL: resolveURL(baseURL, href),
			Year:      year,
			Rating:    rating,
		})
	})
	if len(entries) == 0 {
		return nil, errors.New("no chart entries found")
	}
	return entries, nil
}

// ParseDetail extracts genres, director, cast, and the overview from a title
// detail page. A page with none of these fields is an error.
func ParseDetail(html []byte) (Detail, error) {
	if len(html) == 0 {
		return Detail{}, errors.New("empty detail page")
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Detail{}, fmt.Errorf("parsing detail page: %w", err)
	}

	var d Detail
	doc.Find("div.subtext a").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && strings.Contains(href, "genres") {
			if g := strings.ToLower(normSpace(s.Text())); g != "" {
				d.Genres = append(d.Genres, g)
			}
		}
	})

	doc.Find("div.credit_summary_item").Each(func(_ int, item *goquery.Selection) {
		heading := normSpace(item.Find("h4").First().Text())
		switch {
		case strings.HasPrefix(heading, "Director"):
			if d.Director == "" {
				d.Director = normSpace(item.Find("a").First().Text())
			}
		case strings.HasPrefix(heading, "Star"):
			item.Find("a").Each(func(_ int, a *goquery.Selection) {
				// The trailing "See full cast & crew" link is not a name.
				if href, _ := a.Attr("href"); strings.Contains(href, "fullcredits") {
					return
				}
				if name := normSpace(a.Text()); name != "" {
					d.Cast = append(d.Cast, name)
				}
			})
		}
	})

	d.Overview = normSpace(doc.Find("div.summary_text").First().Text())

	if d.Director == "" && len(d.Genres) == 0 && d.Overview == "" {
		return Detail{}, errors.New("no recognizable detail fields")
	}
	return d, nil
}

// resolveURL joins a possibly relative href against the page it came from.
func resolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	ru, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(ru).String()
}

func normSpace(s string) string { return strings.Join(strings.Fields(s), " ") }
