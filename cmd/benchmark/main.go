package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lexstat/config"
	"lexstat/internal/adapter/analyzer"
	"lexstat/internal/adapter/fs"
	"lexstat/internal/adapter/memstore"
	"lexstat/internal/port"
	"lexstat/internal/usecase"
)

func main() {
	dir := flag.String("dir", ".", "Project directory with lexstat config")
	folder := flag.String("folder", "", "Corpus folder (overrides config)")
	rounds := flag.Int("rounds", 3, "Number of timed rounds")
	flag.Parse()

	cfg, err := config.LoadFromDir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *folder != "" {
		cfg.Corpus.Folder = *folder
	}
	if *rounds < 1 {
		*rounds = 1
	}

	reader, err := fs.NewReader(cfg.Corpus.Encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	corpus := cfg.CorpusPath(*dir)

	rank := analyzer.RankOptions{
		N:       cfg.Analysis.TopN,
		Cleaned: cfg.Analysis.Cleaned,
		CleanOptions: analyzer.CleanOptions{
			StripPunctuation: cfg.Analysis.StripPunctuation,
			StripStopwords:   cfg.Analysis.StripStopwords,
		},
	}

	fmt.Println("CORPUS ANALYSIS BENCHMARK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Corpus: %s (%s, %s)\n", corpus, cfg.Corpus.Extension, cfg.Corpus.Encoding)
	fmt.Printf("Rounds: %d\n\n", *rounds)

	cold := timeRounds(*rounds, func() (*usecase.CorpusAnalysis, error) {
		uc := usecase.NewAnalyzeUseCase(walker, reader, nil, usecase.NewAggregator(rank))
		return uc.Analyze(corpus, cfg.Corpus.Extension, nil)
	})
	if cold.err != nil {
		fmt.Fprintf(os.Stderr, "Analysis error: %v\n", cold.err)
		os.Exit(1)
	}

	var cached port.RunStore = memstore.NewMemoryStore()
	warm := timeRounds(*rounds, func() (*usecase.CorpusAnalysis, error) {
		uc := usecase.NewAnalyzeUseCase(walker, reader, cached, usecase.NewAggregator(rank))
		return uc.Analyze(corpus, cfg.Corpus.Extension, nil)
	})
	if warm.err != nil {
		fmt.Fprintf(os.Stderr, "Analysis error: %v\n", warm.err)
		os.Exit(1)
	}

	last := cold.last
	words := 0
	for _, d := range last.Documents {
		words += d.WordCount
	}

	fmt.Println("Documents:")
	fmt.Println(strings.Repeat("-", 70))
	for i, d := range last.Documents {
		if i == 10 {
			fmt.Printf("   ... %d more\n", len(last.Documents)-i)
			break
		}
		fmt.Printf("%d. [%s %.3f] %s (%d words)\n", i+1, rating(d.TTR), d.TTR, filepath.Base(d.Filename), d.WordCount)
	}
	fmt.Println()

	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("METRICS:\n")
	fmt.Printf("  Documents:          %d (%d failures)\n", len(last.Documents), len(last.Failures))
	fmt.Printf("  Words:              %d\n", words)
	fmt.Printf("  Cold analysis:      %v per round\n", cold.avg)
	fmt.Printf("  Cached analysis:    %v per round (%d hits in last round)\n", warm.avg, warm.last.CacheHits)
	if cold.avg > 0 {
		fmt.Printf("  Throughput:         %.0f words/s\n", float64(words)/cold.avg.Seconds())
	}
}

type timing struct {
	avg  time.Duration
	last *usecase.CorpusAnalysis
	err  error
}

func timeRounds(rounds int, fn func() (*usecase.CorpusAnalysis, error)) timing {
	var total time.Duration
	var t timing
	for i := 0; i < rounds; i++ {
		start := time.Now()
		t.last, t.err = fn()
		if t.err != nil {
			return t
		}
		total += time.Since(start)
	}
	t.avg = total / time.Duration(rounds)
	return t
}

func rating(ttr float64) string {
	switch {
	case ttr > 0.6:
		return "HIGH"
	case ttr > 0.4:
		return "MID"
	default:
		return "LOW"
	}
}
