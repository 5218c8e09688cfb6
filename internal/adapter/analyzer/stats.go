package analyzer

import (
	"errors"
	"strconv"
	"strings"

	"lexstat/internal/domain"
)

// ErrNoWords is returned by TTR when the text holds no tokens.
var ErrNoWords = errors.New("type-token ratio undefined: text has no words")

// WordCount returns the number of whitespace-delimited tokens.
func WordCount(text string) int {
	return len(Tokens(text))
}

// UniqueWordCount returns the number of distinct tokens, case-sensitive.
func UniqueWordCount(text string) int {
	seen := make(map[string]struct{})
	for _, w := range Tokens(text) {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// LineCount returns the number of newline-separated segments; empty text has one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// TTR returns UniqueWordCount/WordCount rounded to 3 decimal digits.
func TTR(text string) (float64, error) {
	words := WordCount(text)
	if words == 0 {
		return 0, ErrNoWords
	}
	return Round3(float64(UniqueWordCount(text)) / float64(words)), nil
}

// Round3 rounds v to 3 decimal digits using correctly rounded decimal conversion.
func Round3(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	return r
}

// Compute derives the statistics of one raw document. When the document has
// no words the returned statistics carry TTR 0 alongside ErrNoWords.
func Compute(filename, text string) (domain.DocumentStatistics, error) {
	stats := domain.DocumentStatistics{
		Filename:        filename,
		WordCount:       WordCount(text),
		UniqueWordCount: UniqueWordCount(text),
		LineCount:       LineCount(text),
	}
	ttr, err := TTR(text)
	if err != nil {
		return stats, err
	}
	stats.TTR = ttr
	return stats, nil
}
