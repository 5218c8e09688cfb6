package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CleanOptions selects the normalisation steps applied by Clean.
type CleanOptions struct {
	StripPunctuation bool
	StripStopwords   bool
}

// DefaultCleanOptions enables both punctuation and stop-word stripping.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{StripPunctuation: true, StripStopwords: true}
}

// Clean normalises raw text into space-separated analyzable tokens.
//
// With StripPunctuation every rune that is not a letter, number, underscore,
// whitespace or hyphen becomes a space. With StripStopwords tokens that are
// stop-words (case-insensitive), one rune long or made only of digits are dropped.
func Clean(text string, opts CleanOptions) string {
	if opts.StripPunctuation {
		text = strings.Map(punctuationToSpace, text)
	}

	words := strings.Fields(text)

	if opts.StripStopwords {
		filtered := words[:0]
		for _, word := range words {
			if IsStopword(strings.ToLower(word)) {
				continue
			}
			if utf8.RuneCountInString(word) <= 1 || isDigits(word) {
				continue
			}
			filtered = append(filtered, word)
		}
		words = filtered
	}

	return strings.TrimSpace(strings.Join(words, " "))
}

// Tokens splits text on whitespace without any normalisation.
func Tokens(text string) []string {
	return strings.Fields(text)
}

func punctuationToSpace(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' || unicode.IsSpace(r) {
		return r
	}
	return ' '
}

func isDigits(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
