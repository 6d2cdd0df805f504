// ABOUTME: Fetch command that crawls a public IMDb chart into the catalog CSV
// ABOUTME: Honors a politeness delay and caches fetched pages on disk
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moviemate/moviemate/internal/crawl"
)

// NewFetchCmd creates the catalog fetch command
func NewFetchCmd() *cobra.Command {
	var (
		chartURL string
		limit    int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Crawl the IMDb Top 250 into a catalog CSV",
		Long: `Fetch the chart page, follow each entry to its detail page, and write
the assembled records as a catalog CSV. Pages are cached on disk, and
fetches are spaced out by the configured delay.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if output == "" {
				output = cfg.Catalog.Path
			}
			if limit < 0 {
				limit = cfg.Crawl.Limit
			}

			crawler := crawl.New(crawl.Options{
				ChartURL: chartURL,
				Delay:    cfg.Crawl.Delay,
				Limit:    limit,
				CacheDir: cfg.Crawl.CacheDir,
			})

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			n, err := crawler.Run(ctx, output)
			if err != nil {
				return fmt.Errorf("crawl failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", n, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&chartURL, "chart", "", "Chart URL to crawl (default: IMDb Top 250)")
	cmd.Flags().IntVar(&limit, "limit", -1, "Maximum entries to fetch, 0 for no limit (default: config value)")
	cmd.Flags().StringVar(&output, "output", "", "Output CSV path (default: configured catalog path)")

	return cmd
}
