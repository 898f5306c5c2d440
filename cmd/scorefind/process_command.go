package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"scorefind/internal/imslp"
	"scorefind/internal/pipeline"
	"scorefind/internal/report"
	"scorefind/internal/scorecache"
	"scorefind/internal/worklist"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		limit      int
		workers    int
		download   bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "process <worklist.csv>",
		Short: "Process a CSV worklist into an HTML report",
		Long: strings.TrimSpace(`
Process reads a two-column (composer, title) CSV, matches every row against
the work catalog, verifies the matched IMSLP pages, scrapes their score
links, and writes an HTML report. With --download the PDFs are fetched too.
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			entries, err := worklist.Read(args[0])
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			if len(entries) == 0 {
				return fmt.Errorf("worklist %s has no usable rows", args[0])
			}

			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			client, err := imslp.New(cfg.IMSLP.BaseURL, cfg.IMSLP.UserAgent,
				imslp.WithTimeout(time.Duration(cfg.IMSLP.TimeoutSeconds)*time.Second),
				imslp.WithRateLimit(cfg.IMSLP.RequestsPerMinute),
				imslp.WithMaxScores(cfg.IMSLP.MaxScoresPerWork),
			)
			if err != nil {
				return err
			}

			p := &pipeline.Pipeline{
				Catalog: cat,
				Fetcher: client,
				Logger:  logger,
				Workers: workers,
			}

			if cfg.Cache.Enabled && !noCache {
				store, err := scorecache.Open(cfg.CachePath(),
					time.Duration(cfg.Cache.TTLHours)*time.Hour)
				if err != nil {
					return err
				}
				defer store.Close()
				p.Cache = store
			}

			if download || cfg.Downloads.Enabled {
				dl, err := imslp.NewDownloader(client, cfg.Paths.DownloadDir,
					cfg.Downloads.MaxRetries, logger)
				if err != nil {
					return err
				}
				p.Downloader = dl
			}

			results := p.Run(cmd.Context(), entries)
			rep := report.New(pipeline.Rows(results))

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = cfg.Paths.ReportFile
			}
			if err := rep.WriteFile(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Works", "Matched", "Verified", "Scores"},
				[][]string{{
					fmt.Sprintf("%d", rep.Summary.Total),
					fmt.Sprintf("%d", rep.Summary.Matched),
					fmt.Sprintf("%d", rep.Summary.Verified),
					fmt.Sprintf("%d", rep.Summary.ScoresFound),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "Report written to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Process at most N worklist rows (0 = all)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent page fetches (0 = default)")
	cmd.Flags().BoolVar(&download, "download", false, "Also download the score PDFs")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the fetch-result cache for this run")

	return cmd
}
