package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"lexstat/internal/usecase"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze the corpus and render the report",
	Long: `Analyze the corpus, write the statistics table, then re-read it together
with the metadata table and write the report.

Examples:
  lexstat run
  lexstat run -f texts -n 10`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	addAnalyzeFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	if err := runAnalyze(cmd, args); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())

	uc := usecase.NewReportUseCase(nil)
	output, err := uc.FromStatistics(cfg.StatisticsPath(rootDir), cfg.MetadataPath(rootDir))
	if err != nil {
		return err
	}
	return emitReport(cmd, output)
}
