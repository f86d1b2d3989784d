package keywords

import (
	"errors"
	"sort"
)

// DefaultTopTerms bounds a per-document frequency ranking.
const DefaultTopTerms = 20

// ErrNonPositiveLimit signals an invalid ranking size parameter. It is a
// configuration error, distinct from an empty input (which ranks to an
// empty list without error).
var ErrNonPositiveLimit = errors.New("keywords: ranking limit must be positive")

// Keyword is one entry of a frequency ranking: the canonical stem, the
// representative surface form (first spelling encountered for that stem)
// and the occurrence count.
type Keyword struct {
	Stem  string `json:"stem"`
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CountFrequencies stems the filtered terms and ranks stems by occurrence
// count, reporting each as its representative surface form. Ordering is
// strictly non-increasing by count; equal counts keep first-occurrence
// order. The result is truncated to topN distinct stems; fewer are returned
// without padding when the document has fewer. topN <= 0 is a configuration
// error. An empty term sequence ranks to an empty list.
func CountFrequencies(terms []string, lang Language, topN int) ([]Keyword, error) {
	if topN <= 0 {
		return nil, ErrNonPositiveLimit
	}

	counts := make(map[string]int, len(terms))
	var order []string

	// Representative form: the first surface term observed for a stem, in
	// token emission order, not the most frequent spelling.
	representative := make(map[string]string, len(terms))

	for _, term := range terms {
		stem := Stem(lang, term)
		if counts[stem] == 0 {
			order = append(order, stem)
			representative[stem] = term
		}
		counts[stem]++
	}

	ranking := make([]Keyword, 0, len(order))
	for _, stem := range order {
		ranking = append(ranking, Keyword{
			Stem:  stem,
			Word:  representative[stem],
			Count: counts[stem],
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking, nil
}
