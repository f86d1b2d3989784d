package keywords

import "sort"

// DefaultTopAggregated bounds the corpus-level aggregated ranking.
const DefaultTopAggregated = 40

// Aggregate merges per-document frequency rankings into one corpus-level
// ranking by summing counts. Merging keys on the Stem, so cross-document
// spelling variants of one root collapse into a single entry; the
// representative surface form is the one from the earliest document.
// Ordering is non-increasing by summed count with stable ties by first
// document/position encountered. topM <= 0 is a configuration error.
func Aggregate(rankings [][]Keyword, topM int) ([]Keyword, error) {
	if topM <= 0 {
		return nil, ErrNonPositiveLimit
	}

	totals := make(map[string]int)
	representative := make(map[string]string)
	var order []string

	for _, ranking := range rankings {
		for _, kw := range ranking {
			if totals[kw.Stem] == 0 {
				order = append(order, kw.Stem)
				representative[kw.Stem] = kw.Word
			}
			totals[kw.Stem] += kw.Count
		}
	}

	merged := make([]Keyword, 0, len(order))
	for _, stem := range order {
		merged = append(merged, Keyword{
			Stem:  stem,
			Word:  representative[stem],
			Count: totals[stem],
		})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Count > merged[j].Count
	})

	if len(merged) > topM {
		merged = merged[:topM]
	}
	return merged, nil
}
