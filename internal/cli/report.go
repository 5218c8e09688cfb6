package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"lexstat/internal/usecase"
)

var (
	reportRun      string
	reportLatest   bool
	reportMetadata string
	reportStdout   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the corpus report",
	Long: `Render the corpus report from the statistics table (or a recorded run)
joined with the optional metadata table, and write it to the report file.

Examples:
  lexstat report                  # From results/statistics.csv
  lexstat report --latest         # From the most recent recorded run
  lexstat report --run <id>       # From a specific run
  lexstat report --stdout         # Print instead of writing the file`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportRun, "run", "", "render from a recorded run id")
	reportCmd.Flags().BoolVar(&reportLatest, "latest", false, "render from the most recent recorded run")
	reportCmd.Flags().StringVar(&reportMetadata, "metadata", "", "metadata table (overrides config)")
	reportCmd.Flags().BoolVar(&reportStdout, "stdout", false, "print the report instead of writing it")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportRun != "" && reportLatest {
		return errors.New("--run and --latest are mutually exclusive")
	}

	metaPath := cfg.MetadataPath(rootDir)
	if reportMetadata != "" {
		metaPath = reportMetadata
	}

	var (
		output *usecase.ReportOutput
		err    error
	)
	if reportRun != "" || reportLatest {
		output, err = reportFromHistory(metaPath)
	} else {
		uc := usecase.NewReportUseCase(nil)
		output, err = uc.FromStatistics(cfg.StatisticsPath(rootDir), metaPath)
	}
	if err != nil {
		return err
	}

	return emitReport(cmd, output)
}

func reportFromHistory(metaPath string) (*usecase.ReportOutput, error) {
	runStore, closeStore, err := openRunStore(cfg, rootDir, false)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	uc := usecase.NewReportUseCase(runStore)

	runID := reportRun
	if reportLatest {
		run, found, err := uc.Latest()
		if err != nil {
			return nil, fmt.Errorf("failed to read history: %w", err)
		}
		if !found {
			return nil, errors.New("no recorded runs, run 'lexstat analyze' first")
		}
		runID = run.ID
	}
	return uc.FromRun(runID, metaPath)
}

// emitReport prints or writes a rendered report. A report without data is
// only printed.
func emitReport(cmd *cobra.Command, output *usecase.ReportOutput) error {
	out := cmd.OutOrStdout()

	if output.Empty() {
		fmt.Fprintln(out, output.Text)
		return nil
	}

	if reportStdout {
		fmt.Fprint(out, output.Text)
		return nil
	}

	reportPath := cfg.ReportPath(rootDir)
	if err := usecase.ExportReport(reportPath, output.Text); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if !output.MetadataLoaded {
		fmt.Fprintln(out, warning("report written without metadata"))
	}
	fmt.Fprintln(out, success("Report saved to %s (%d documents)", reportPath, output.Documents))
	return nil
}
