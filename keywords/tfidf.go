package keywords

import (
	"math"
	"sort"
)

// DefaultTopWeighted bounds a corpus-weighted ranking.
const DefaultTopWeighted = 12

// WeightedKeyword is one entry of a corpus-level TF-IDF ranking.
type WeightedKeyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// WeightCorpus ranks terms across the whole corpus by tf * idf, where tf is
// the total occurrence count of a term across all documents and
// idf = ln(N / (1 + df)) with df the number of documents containing the
// term. The +1 keeps idf finite; ubiquitous terms score near zero or
// negative, which is intended. docs holds one filtered term sequence per
// document; empty documents still count toward N but contribute nothing.
// Ties keep first-encountered order across the corpus scan. topK <= 0 is a
// configuration error; an empty corpus ranks to an empty list.
func WeightCorpus(docs [][]string, topK int) ([]WeightedKeyword, error) {
	if topK <= 0 {
		return nil, ErrNonPositiveLimit
	}
	if len(docs) == 0 {
		return nil, nil
	}

	tf := make(map[string]int)
	df := make(map[string]int)
	var order []string

	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if tf[term] == 0 {
				order = append(order, term)
			}
			tf[term]++
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	n := float64(len(docs))
	ranking := make([]WeightedKeyword, 0, len(order))
	for _, term := range order {
		idf := math.Log(n / (1 + float64(df[term])))
		ranking = append(ranking, WeightedKeyword{
			Term:  term,
			Score: float64(tf[term]) * idf,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	if len(ranking) > topK {
		ranking = ranking[:topK]
	}
	return ranking, nil
}
