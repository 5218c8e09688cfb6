package usecase

import (
	"errors"
	"strings"

	"lexstat/internal/adapter/analyzer"
	"lexstat/internal/domain"
)

// Aggregator computes per-document statistics and corpus-wide top words.
type Aggregator struct {
	Rank analyzer.RankOptions

	// SkipEmpty drops documents without words from the results. Otherwise
	// they are kept with TTR 0. Either way they are reported as failures.
	SkipEmpty bool

	// Lookup, when set, may return previously computed statistics for a
	// document so they are not recomputed.
	Lookup func(doc domain.Document) (domain.DocumentStatistics, bool)
}

// NewAggregator creates an aggregator ranking with opts.
func NewAggregator(opts analyzer.RankOptions) *Aggregator {
	return &Aggregator{Rank: opts}
}

// Analyze computes statistics on the raw text of every document in order and
// ranks the words of all documents joined by single spaces. A document that
// cannot be measured is recorded in Failures; the scan goes on.
func (a *Aggregator) Analyze(docs []domain.Document) domain.AnalysisResult {
	var result domain.AnalysisResult
	texts := make([]string, 0, len(docs))

	for _, doc := range docs {
		texts = append(texts, doc.Content)

		if a.Lookup != nil {
			if stats, ok := a.Lookup(doc); ok {
				result.Documents = append(result.Documents, stats)
				continue
			}
		}

		stats, err := analyzer.Compute(doc.Filename, doc.Content)
		if err != nil {
			result.Failures = append(result.Failures, domain.DocumentError{Filename: doc.Filename, Err: err})
			if a.SkipEmpty && errors.Is(err, analyzer.ErrNoWords) {
				continue
			}
		}
		result.Documents = append(result.Documents, stats)
	}

	result.MostCommon = analyzer.MostCommon(strings.Join(texts, " "), a.Rank)
	return result
}
