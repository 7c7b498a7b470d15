// Package cli provides the drivetables command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivetables/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "drivetables",
	Short: "Merge tables from Google Drive PDFs into one spreadsheet",
	Long: `drivetables lists the PDF files in a Google Drive folder, downloads them,
detects the tables in each one and merges every data row into a single
Excel workbook. Each row is tagged with the file it came from.

Run without a subcommand to process the configured folder.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runPipeline,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./drivetables.toml when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress details")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	ts, err := newCredentials(cfg, cmd.ErrOrStderr()).Obtain(ctx)
	if err != nil {
		return fmt.Errorf("authorise: %w", err)
	}

	reporter := newConsoleReporter(cmd.OutOrStdout())
	pipeline, err := newPipeline(ctx, cfg, ts, reporter)
	if err != nil {
		return err
	}

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}
	reporter.Summary(summary)
	return nil
}
