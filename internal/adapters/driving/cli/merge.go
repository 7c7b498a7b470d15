package cli

import (
	"github.com/spf13/cobra"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <pdf>...",
	Short: "Merge tables from local PDF files",
	Long: `Extracts the tables from the given local PDF files and merges them into
the output workbook, without contacting Google Drive. Files are processed
in the order given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output workbook (overrides output.file)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if mergeOutput != "" {
		cfg.Output.File = mergeOutput
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	reporter := newConsoleReporter(cmd.OutOrStdout())
	summary, err := newMerger(cfg, reporter).Merge(cmd.Context(), args)
	if err != nil {
		return err
	}
	reporter.Summary(summary)
	return nil
}
