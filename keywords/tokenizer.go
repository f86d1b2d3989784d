// Package keywords implements the keyword extraction and relevance-scoring
// pipeline: tokenization, stop-word filtering, language-aware stemming,
// per-document frequency counting and corpus-level TF-IDF weighting.
package keywords

import (
	"strings"
	"unicode"
)

// DefaultMinTermLength is the minimum token length used when the caller
// passes a non-positive threshold.
const DefaultMinTermLength = 3

// Tokenize splits text into maximal runs of Unicode letters, lowercased.
// Digits and underscores break tokens. Runs shorter than minLen are dropped;
// minLen <= 0 falls back to DefaultMinTermLength. Order of appearance is
// preserved and duplicates are kept.
func Tokenize(text string, minLen int) []string {
	if minLen <= 0 {
		minLen = DefaultMinTermLength
	}

	var tokens []string
	var run []rune
	flush := func() {
		if len(run) >= minLen {
			tokens = append(tokens, string(run))
		}
		run = run[:0]
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			run = append(run, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// FilterStopWords removes terms present in the bilingual stop set,
// preserving order. Terms are expected to be lowercased already; Tokenize
// guarantees that.
func FilterStopWords(terms []string) []string {
	filtered := make([]string, 0, len(terms))
	for _, t := range terms {
		if stopWords[strings.ToLower(t)] {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
