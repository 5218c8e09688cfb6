package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded analysis runs",
	Long: `List recorded analysis runs, newest first. Use a run id with
'lexstat report --run <id>' to render its report.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "maximum number of runs to list (0 for all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	runStore, closeStore, err := openRunStore(cfg, rootDir, false)
	if err != nil {
		return err
	}
	defer closeStore()

	if runStore == nil {
		fmt.Fprintln(out, warning("run history is disabled (cache.enabled: false)"))
		return nil
	}

	runs, err := runStore.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, muted("no recorded runs"))
		return nil
	}

	if historyLimit > 0 && len(runs) > historyLimit {
		runs = runs[:historyLimit]
	}

	for _, run := range runs {
		words := 0
		for _, d := range run.Documents {
			words += d.WordCount
		}
		fmt.Fprintf(out, "%s  %s  %s\n", run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Folder)
		fmt.Fprintf(out, "    %d documents, %d words, top: %s\n", len(run.Documents), words, formatTopWords(run.MostCommon))
		if len(run.Failures) > 0 {
			fmt.Fprintln(out, "    "+warning("%d failures", len(run.Failures)))
		}
	}
	return nil
}
