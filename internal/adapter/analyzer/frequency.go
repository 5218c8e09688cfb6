package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"lexstat/internal/domain"
)

// RankOptions controls MostCommon.
type RankOptions struct {
	N       int
	Cleaned bool
	CleanOptions
}

// DefaultRankOptions returns the top five words of cleaned text.
func DefaultRankOptions() RankOptions {
	return RankOptions{N: 5, Cleaned: true, CleanOptions: DefaultCleanOptions()}
}

// MostCommon returns at most opts.N lowercase tokens ordered by descending
// count. Equal counts keep the order in which the token first appeared.
//
// The stop-word filter runs again after cleaning, so Cleaned=false with
// StripStopwords=true still drops stop-words and one-rune tokens.
func MostCommon(text string, opts RankOptions) []domain.WordFrequency {
	if opts.N < 1 {
		return nil
	}
	if opts.Cleaned {
		text = Clean(text, opts.CleanOptions)
	}

	counts := make(map[string]int)
	var order []string
	for _, word := range Tokens(text) {
		lower := strings.ToLower(word)
		if opts.StripStopwords {
			if IsStopword(lower) || utf8.RuneCountInString(word) <= 1 {
				continue
			}
		} else if strings.TrimSpace(word) == "" {
			continue
		}
		if counts[lower] == 0 {
			order = append(order, lower)
		}
		counts[lower]++
	}

	ranked := make([]domain.WordFrequency, len(order))
	for i, w := range order {
		ranked[i] = domain.WordFrequency{Word: w, Count: counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > opts.N {
		ranked = ranked[:opts.N]
	}
	return ranked
}
