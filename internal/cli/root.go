package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"lexstat/config"
	"lexstat/internal/adapter/analyzer"
	"lexstat/internal/adapter/store"
	"lexstat/internal/logger"
	"lexstat/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lexstat",
	Short: "Lexical statistics for a folder of plain-text documents",
	Long: `lexstat computes word counts, unique words, line counts, type-token ratio
and the most frequent words over a corpus of plain-text documents, stores
per-file results in a CSV table and renders a report joined with optional
title/author/year metadata.

Example usage:
  lexstat analyze                # Analyze ./corpus into results/statistics.csv
  lexstat report                 # Render results/report.txt
  lexstat run                    # Both of the above
  lexstat file corpus/poem.txt   # Statistics of a single file`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := logger.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		if verbose {
			level = logger.LevelDebug
		}
		logger.SetLevel(level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lexstat.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "project directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug messages")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// rankOptions builds frequency ranking options from config.
func rankOptions(c *config.Config) analyzer.RankOptions {
	return analyzer.RankOptions{
		N:       c.Analysis.TopN,
		Cleaned: c.Analysis.Cleaned,
		CleanOptions: analyzer.CleanOptions{
			StripPunctuation: c.Analysis.StripPunctuation,
			StripStopwords:   c.Analysis.StripStopwords,
		},
	}
}

// openRunStore opens the history database, or returns a nil store when the
// cache is disabled. The returned close func is always safe to call.
func openRunStore(c *config.Config, dir string, disabled bool) (port.RunStore, func(), error) {
	if disabled || !c.Cache.Enabled {
		return nil, func() {}, nil
	}

	dbPath := c.HistoryDBPath(dir)
	if err := config.EnsureDirFor(dbPath); err != nil {
		return nil, nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}

	reason, err := st.Prepare(c)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to prepare history: %w", err)
	}
	if reason != "" {
		logger.Debug("history database: %s", reason)
	}

	return st, func() { st.Close() }, nil
}
