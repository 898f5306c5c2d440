package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scorefind/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample configuration written to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetPath, "path", "", "Where to write the sample configuration")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")

	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Setting", "Value"},
				[][]string{
					{"paths.data_dir", cfg.Paths.DataDir},
					{"paths.report_file", cfg.Paths.ReportFile},
					{"paths.download_dir", cfg.Paths.DownloadDir},
					{"catalog.path", orDefault(cfg.Catalog.Path, "(built-in)")},
					{"imslp.base_url", cfg.IMSLP.BaseURL},
					{"imslp.user_agent", cfg.IMSLP.UserAgent},
					{"imslp.timeout_seconds", fmt.Sprintf("%d", cfg.IMSLP.TimeoutSeconds)},
					{"imslp.requests_per_minute", fmt.Sprintf("%d", cfg.IMSLP.RequestsPerMinute)},
					{"imslp.max_scores_per_work", fmt.Sprintf("%d", cfg.IMSLP.MaxScoresPerWork)},
					{"cache.enabled", yesNo(cfg.Cache.Enabled)},
					{"cache.ttl_hours", fmt.Sprintf("%d", cfg.Cache.TTLHours)},
					{"downloads.enabled", yesNo(cfg.Downloads.Enabled)},
					{"downloads.max_retries", fmt.Sprintf("%d", cfg.Downloads.MaxRetries)},
					{"logging.format", cfg.Logging.Format},
					{"logging.level", cfg.Logging.Level},
				},
				nil,
			))
			return nil
		},
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
