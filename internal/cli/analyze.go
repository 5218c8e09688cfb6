package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"lexstat/config"
	"lexstat/internal/adapter/fs"
	"lexstat/internal/logger"
	"lexstat/internal/usecase"
)

var (
	analyzeFolder          string
	analyzeExt             string
	analyzeTop             int
	analyzeNoClean         bool
	analyzeKeepStopwords   bool
	analyzeKeepPunctuation bool
	analyzeNoCache         bool
	analyzeQuiet           bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze every document of the corpus folder",
	Long: `Compute word count, unique words, line count and TTR for every document
with the configured extension and write them to the statistics table.

Examples:
  lexstat analyze                      # Analyze ./corpus
  lexstat analyze -f texts --ext .md   # Analyze markdown files in ./texts
  lexstat analyze -n 10 --keep-stopwords`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	addAnalyzeFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&analyzeFolder, "folder", "f", "", "corpus folder (overrides config)")
	cmd.Flags().StringVar(&analyzeExt, "ext", "", "document extension (overrides config)")
	cmd.Flags().IntVarP(&analyzeTop, "top", "n", 0, "number of most common words")
	cmd.Flags().BoolVar(&analyzeNoClean, "no-clean", false, "rank raw whitespace tokens")
	cmd.Flags().BoolVar(&analyzeKeepStopwords, "keep-stopwords", false, "keep stop-words when ranking")
	cmd.Flags().BoolVar(&analyzeKeepPunctuation, "keep-punctuation", false, "keep punctuation when ranking")
	cmd.Flags().BoolVar(&analyzeNoCache, "no-cache", false, "do not use or record run history")
	cmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "suppress progress output")
}

// applyAnalyzeFlags copies command-line overrides onto the loaded config.
func applyAnalyzeFlags(c *config.Config) error {
	if analyzeFolder != "" {
		c.Corpus.Folder = analyzeFolder
	}
	if analyzeExt != "" {
		c.Corpus.Extension = analyzeExt
	}
	if analyzeTop != 0 {
		c.Analysis.TopN = analyzeTop
	}
	if analyzeNoClean {
		c.Analysis.Cleaned = false
	}
	if analyzeKeepStopwords {
		c.Analysis.StripStopwords = false
	}
	if analyzeKeepPunctuation {
		c.Analysis.StripPunctuation = false
	}
	return c.Validate()
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c := *cfg
	if err := applyAnalyzeFlags(&c); err != nil {
		return err
	}

	analysis, err := analyzeCorpus(&c, rootDir, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printCorpusSummary(out, analysis)

	statsPath := c.StatisticsPath(rootDir)
	if err := usecase.ExportStatistics(statsPath, analysis.Documents); err != nil {
		return fmt.Errorf("failed to write statistics: %w", err)
	}
	fmt.Fprintln(out, success("Statistics saved to %s", statsPath))

	if topPath := c.TopWordsPath(rootDir); topPath != "" {
		if err := usecase.ExportTopWords(topPath, analysis.MostCommon); err != nil {
			return fmt.Errorf("failed to write top words: %w", err)
		}
		fmt.Fprintln(out, success("Top words saved to %s", topPath))
	}

	return nil
}

// analyzeCorpus runs the corpus analysis described by c.
func analyzeCorpus(c *config.Config, dir string, progressOut io.Writer) (*usecase.CorpusAnalysis, error) {
	reader, err := fs.NewReader(c.Corpus.Encoding)
	if err != nil {
		return nil, err
	}
	walker := fs.NewWalker(c.Corpus.Includes, c.Corpus.Excludes)

	runStore, closeStore, err := openRunStore(c, dir, analyzeNoCache)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	aggregator := usecase.NewAggregator(rankOptions(c))
	aggregator.SkipEmpty = c.Analysis.EmptyDocuments == config.EmptySkip

	uc := usecase.NewAnalyzeUseCase(walker, reader, runStore, aggregator)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, currentFile string) {
		if analyzeQuiet || total == 0 {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(progressOut),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(progressOut)
				}),
			)
		}
		bar.Set(processed)
	}

	folder := c.CorpusPath(dir)
	analysis, err := uc.Analyze(folder, c.Corpus.Extension, progress)
	if err != nil {
		return nil, err
	}

	if analysis.RunID != "" {
		logger.Debug("recorded run %s (%d cached)", analysis.RunID, analysis.CacheHits)
	}
	return analysis, nil
}

// printCorpusSummary prints per-file rows followed by corpus totals.
func printCorpusSummary(w io.Writer, analysis *usecase.CorpusAnalysis) {
	fmt.Fprintln(w, heading("Анализ корпуса: "+filepath.Base(analysis.Folder)))

	totalWords := 0
	for i, s := range analysis.Documents {
		fmt.Fprintf(w, "%d. %s: слов %d, уникальных %d, строк %d, TTR %.3f\n",
			i+1, s.Filename, s.WordCount, s.UniqueWordCount, s.LineCount, s.TTR)
		totalWords += s.WordCount
	}

	avg := 0
	if n := len(analysis.Documents); n > 0 {
		avg = totalWords / n
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Всего текстов: %d\n", len(analysis.Documents))
	fmt.Fprintf(w, "Всего слов: %d\n", totalWords)
	fmt.Fprintf(w, "Среднее количество слов на текст: %d\n", avg)
	fmt.Fprintf(w, "Самые частые слова: %s\n", formatTopWords(analysis.MostCommon))

	for _, f := range analysis.Failures {
		fmt.Fprintln(w, warning("%s", f.Error()))
	}
	if analysis.CacheHits > 0 {
		fmt.Fprintln(w, muted(fmt.Sprintf("%d of %d documents reused from cache", analysis.CacheHits, analysis.FilesSeen)))
	}
}
