// ABOUTME: Stats command summarizing quiz journal performance
// ABOUTME: Renders overall, per-category, per-language, and time-of-day tables
package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/journal"
	"github.com/moviemate/moviemate/internal/logging"
	"github.com/moviemate/moviemate/internal/models"
)

// NewStatsCmd creates the quiz statistics command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quiz performance statistics",
		Long: `Summarize the quiz journal: overall accuracy plus breakdowns by
category, language, hour of day, and day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			jrnl := journal.New(cfg.Quiz.JournalPath)
			entries, skipped, err := jrnl.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to read quiz journal: %w", err)
			}
			if skipped > 0 {
				logging.Warn().Int("rows", skipped).Msg("skipped malformed journal rows")
			}

			summary := journal.Summarize(entries)

			if outputFormat == "json" {
				return printJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			if summary.Overall.Total == 0 {
				fmt.Fprintln(out, "No quiz answers recorded yet. Play a round with 'moviemate quiz'!")
				return nil
			}

			fmt.Fprintf(out, "Answered %d questions, %d correct (%.0f%%)\n\n",
				summary.Overall.Total, summary.Overall.Correct, summary.Overall.Accuracy()*100)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "CATEGORY\tANSWERED\tCORRECT\tACCURACY")
			for _, cat := range models.Categories() {
				t := summary.ByCategory[cat]
				if t.Total == 0 {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", cat, t.Total, t.Correct, t.Accuracy()*100)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "LANGUAGE\tANSWERED\tCORRECT\tACCURACY")
			for _, lang := range []string{"English", "Arabic"} {
				t := summary.ByLanguage[lang]
				if t.Total == 0 {
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", lang, t.Total, t.Correct, t.Accuracy()*100)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "HOUR\tANSWERED\tCORRECT\tACCURACY")
			hours := make([]int, 0, len(summary.ByHour))
			for h := range summary.ByHour {
				hours = append(hours, h)
			}
			sort.Ints(hours)
			for _, h := range hours {
				t := summary.ByHour[h]
				fmt.Fprintf(w, "%02d:00\t%d\t%d\t%.0f%%\n", h, t.Total, t.Correct, t.Accuracy()*100)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "DAY\tANSWERED\tCORRECT\tACCURACY")
			days := make([]string, 0, len(summary.ByDay))
			for d := range summary.ByDay {
				days = append(days, d)
			}
			sort.Strings(days)
			for _, d := range days {
				t := summary.ByDay[d]
				fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\n", d, t.Total, t.Correct, t.Accuracy()*100)
			}

			return w.Flush()
		},
	}
}
