package usecase

import (
	"fmt"

	"lexstat/internal/adapter/fs"
	"lexstat/internal/adapter/tabular"
	"lexstat/internal/domain"
)

// ExportStatistics writes the per-document statistics table.
func ExportStatistics(path string, stats []domain.DocumentStatistics) error {
	return tabular.WriteStatistics(path, stats)
}

// ExportTopWords writes one "word count" line per ranked word.
func ExportTopWords(path string, words []domain.WordFrequency) error {
	lines := make([]string, len(words))
	for i, w := range words {
		lines[i] = fmt.Sprintf("%s %d", w.Word, w.Count)
	}
	return fs.WriteText(path, fs.Lines(lines))
}

// ExportReport writes the rendered report text.
func ExportReport(path, text string) error {
	return fs.WriteText(path, fs.Text(text))
}
