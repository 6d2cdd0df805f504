// ABOUTME: Natural-language rendering of recommendation lists
// ABOUTME: Fixed phrasings keyed on list length
package catalog

import (
	"fmt"
	"strings"

	"github.com/moviemate/moviemate/internal/models"
)

// NoMatchMessage is the apology used when a query finds nothing.
const NoMatchMessage = "I'm sorry, I couldn't find anything matching that. Maybe try a different genre, year, or title?"

// FormatList renders a recommendation list as one sentence.
func FormatList(recs []models.MediaRecord) string {
	switch len(recs) {
	case 0:
		return NoMatchMessage
	case 1:
		return fmt.Sprintf("I recommend you watch: %s.", titleYear(recs[0]))
	case 2:
		return fmt.Sprintf("I recommend you watch: %s and %s.", titleYear(recs[0]), titleYear(recs[1]))
	}

	parts := make([]string, len(recs))
	for i, r := range recs {
		parts[i] = titleYear(r)
	}
	last := parts[len(parts)-1]
	return fmt.Sprintf("I recommend you watch: %s and %s.", strings.Join(parts[:len(parts)-1], ", "), last)
}

func titleYear(rec models.MediaRecord) string {
	return fmt.Sprintf("%s (%s)", rec.Title, rec.Year)
}
