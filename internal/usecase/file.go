package usecase

import (
	"errors"
	"fmt"
	"path/filepath"

	"lexstat/internal/adapter/analyzer"
	"lexstat/internal/domain"
	"lexstat/internal/port"
)

// FileAnalysis is the result of analyzing a single document.
type FileAnalysis struct {
	Stats      domain.DocumentStatistics
	MostCommon []domain.WordFrequency
	// TTRDefined is false when the document has no words.
	TTRDefined bool
}

// AnalyzeFile reads one document and computes its statistics and top words.
func AnalyzeFile(reader port.DocumentReader, path string, opts analyzer.RankOptions) (*FileAnalysis, error) {
	content, err := reader.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	stats, err := analyzer.Compute(filepath.Base(path), content)
	if err != nil && !errors.Is(err, analyzer.ErrNoWords) {
		return nil, err
	}

	return &FileAnalysis{
		Stats:      stats,
		MostCommon: analyzer.MostCommon(content, opts),
		TTRDefined: err == nil,
	}, nil
}
