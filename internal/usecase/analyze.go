package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"lexstat/internal/adapter/analyzer"
	"lexstat/internal/domain"
	"lexstat/internal/logger"
	"lexstat/internal/port"
)

// ProgressFunc is called after each document is read.
type ProgressFunc func(processed, total int, currentFile string)

// AnalyzeUseCase handles corpus analysis.
type AnalyzeUseCase struct {
	walker     port.FileWalker
	reader     port.DocumentReader
	store      port.RunStore
	aggregator *Aggregator
}

// NewAnalyzeUseCase creates a new analyze use case. store may be nil to
// disable both the statistics cache and run history.
func NewAnalyzeUseCase(
	walker port.FileWalker,
	reader port.DocumentReader,
	store port.RunStore,
	aggregator *Aggregator,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		walker:     walker,
		reader:     reader,
		store:      store,
		aggregator: aggregator,
	}
}

// CorpusAnalysis contains the results of a corpus analysis.
type CorpusAnalysis struct {
	RunID     string
	Folder    string
	FilesSeen int
	CacheHits int
	domain.AnalysisResult
}

// Analyze lists, reads and measures every document of folder with the given
// extension. Unreadable or empty documents are reported in Failures.
func (u *AnalyzeUseCase) Analyze(folder, extension string, progress ProgressFunc) (*CorpusAnalysis, error) {
	startedAt := time.Now()

	files, err := u.walker.List(folder, extension)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus: %w", err)
	}
	logger.Debug("found %d %s files in %s", len(files), extension, folder)

	analysis := &CorpusAnalysis{Folder: folder, FilesSeen: len(files)}

	docs := make([]domain.Document, 0, len(files))
	var readFailures []domain.DocumentError
	for i, file := range files {
		content, err := u.reader.ReadDocument(file.Path)
		if err != nil {
			logger.Warn("skipping %s: %v", file.Name, err)
			readFailures = append(readFailures, domain.DocumentError{Filename: file.Name, Err: err})
		} else {
			docs = append(docs, domain.Document{
				Filename: file.Name,
				Path:     file.Path,
				Content:  content,
				ModTime:  time.Unix(file.ModTime, 0),
			})
		}
		if progress != nil {
			progress(i+1, len(files), file.Name)
		}
	}

	agg := *u.aggregator
	hashes := make(map[string]string, len(docs))
	if u.store != nil {
		agg.Lookup = func(doc domain.Document) (domain.DocumentStatistics, bool) {
			hash := contentHash(doc.Content)
			hashes[doc.Path] = hash
			entry, found, err := u.store.GetCachedStats(doc.Path)
			if err != nil {
				logger.Warn("cache lookup for %s: %v", doc.Filename, err)
				return domain.DocumentStatistics{}, false
			}
			if !found || entry.Hash != hash || entry.Stats.Filename != doc.Filename {
				return domain.DocumentStatistics{}, false
			}
			logger.Debug("cache hit: %s", doc.Filename)
			analysis.CacheHits++
			return entry.Stats, true
		}
	}

	result := agg.Analyze(docs)
	result.Failures = append(readFailures, result.Failures...)
	analysis.AnalysisResult = result

	for _, f := range result.Failures {
		if errors.Is(f.Err, analyzer.ErrNoWords) {
			logger.Warn("%s has no words, TTR undefined", f.Filename)
		}
	}

	if u.store == nil {
		return analysis, nil
	}

	failed := make(map[string]bool, len(result.Failures))
	for _, f := range result.Failures {
		failed[f.Filename] = true
	}
	byName := make(map[string]domain.Document, len(docs))
	for _, doc := range docs {
		byName[doc.Filename] = doc
	}
	var fresh []domain.CachedStats
	for _, stats := range result.Documents {
		doc, ok := byName[stats.Filename]
		if !ok || failed[stats.Filename] {
			continue
		}
		fresh = append(fresh, domain.CachedStats{Path: doc.Path, Hash: hashes[doc.Path], Stats: stats})
	}
	if err := u.store.PutCachedStats(fresh); err != nil {
		return nil, fmt.Errorf("failed to update statistics cache: %w", err)
	}

	run := domain.Run{
		ID:         uuid.NewString(),
		StartedAt:  startedAt,
		Folder:     folder,
		Documents:  result.Documents,
		MostCommon: result.MostCommon,
	}
	for _, f := range result.Failures {
		run.Failures = append(run.Failures, f.Error())
	}
	if err := u.store.PutRun(run); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}
	analysis.RunID = run.ID

	return analysis, nil
}

// contentHash identifies document content for the statistics cache.
func contentHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:16])
}
