package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"lexstat/internal/adapter/fs"
	"lexstat/internal/usecase"
)

var fileTop int

var fileCmd = &cobra.Command{
	Use:   "file <path>",
	Short: "Print the statistics of a single document",
	Long: `Print word count, unique words, line count, TTR and the most common words
of one document. Nothing is written to disk.

Examples:
  lexstat file corpus/poem.txt
  lexstat file corpus/poem.txt -n 10`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().IntVarP(&fileTop, "top", "n", 0, "number of most common words")
	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	reader, err := fs.NewReader(cfg.Corpus.Encoding)
	if err != nil {
		return err
	}

	opts := rankOptions(cfg)
	if fileTop > 0 {
		opts.N = fileTop
	}

	result, err := usecase.AnalyzeFile(reader, args[0], opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := result.Stats
	fmt.Fprintln(out, heading("Анализ файла: "+s.Filename))
	fmt.Fprintf(out, "Количество слов: %d\n", s.WordCount)
	fmt.Fprintf(out, "Уникальных слов: %d\n", s.UniqueWordCount)
	fmt.Fprintf(out, "Количество строк: %d\n", s.LineCount)
	if result.TTRDefined {
		fmt.Fprintf(out, "TTR: %.3f\n", s.TTR)
	} else {
		fmt.Fprintln(out, "TTR: "+muted("не определён (нет слов)"))
	}
	fmt.Fprintf(out, "Самые частые слова: %s\n", formatTopWords(result.MostCommon))
	return nil
}
