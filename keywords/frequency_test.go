package keywords

import (
	"errors"
	"reflect"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	testCases := []struct {
		name     string
		terms    []string
		lang     Language
		topN     int
		expected []Keyword
	}{
		{
			"BasicCzech",
			[]string{"kočka", "pes", "kočka"},
			LanguageCzech, 20,
			[]Keyword{
				{Stem: "kočk", Word: "kočka", Count: 2},
				{Stem: "pes", Word: "pes", Count: 1},
			},
		},
		{
			// "kočka" and "kočky" share a stem; the representative is the
			// first surface form seen, not the most frequent one.
			"RepresentativeIsFirstSurfaceForm",
			[]string{"kočka", "kočky", "kočky"},
			LanguageCzech, 20,
			[]Keyword{{Stem: "kočk", Word: "kočka", Count: 3}},
		},
		{
			"EqualCountsKeepFirstOccurrenceOrder",
			[]string{"pes", "auto", "pes", "auto"},
			LanguageCzech, 20,
			[]Keyword{
				{Stem: "pes", Word: "pes", Count: 2},
				{Stem: "aut", Word: "auto", Count: 2},
			},
		},
		{
			"TruncatesToTopN",
			[]string{"pes", "pes", "auto", "kočka"},
			LanguageCzech, 1,
			[]Keyword{{Stem: "pes", Word: "pes", Count: 2}},
		},
		{
			"NoPaddingBeyondDistinctStems",
			[]string{"pes"},
			LanguageCzech, 10,
			[]Keyword{{Stem: "pes", Word: "pes", Count: 1}},
		},
		{
			"EmptyInput",
			nil,
			LanguageCzech, 20,
			[]Keyword{},
		},
		{
			"EnglishStemming",
			[]string{"running", "runs", "running"},
			LanguageEnglish, 20,
			[]Keyword{{Stem: "run", Word: "running", Count: 3}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountFrequencies(tc.terms, tc.lang, tc.topN)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("CountFrequencies(%v) = %v, want %v", tc.terms, got, tc.expected)
			}
		})
	}
}

func TestCountFrequenciesInvalidLimit(t *testing.T) {
	for _, topN := range []int{0, -1} {
		if _, err := CountFrequencies([]string{"pes"}, LanguageCzech, topN); !errors.Is(err, ErrNonPositiveLimit) {
			t.Errorf("topN=%d: want ErrNonPositiveLimit, got %v", topN, err)
		}
	}
}

func TestCountFrequenciesSortedAndTotalPreserved(t *testing.T) {
	terms := FilterStopWords(Tokenize(
		"Krmivo pro psy: granule, granule a konzervy. Psy krmivo zajímá, granule vedou.", 3))

	ranking, err := CountFrequencies(terms, LanguageCzech, len(terms))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0
	for i, kw := range ranking {
		total += kw.Count
		if i > 0 && ranking[i-1].Count < kw.Count {
			t.Errorf("ranking not non-increasing at %d: %v", i, ranking)
		}
	}
	if total != len(terms) {
		t.Errorf("sum of counts = %d, want %d (number of filtered terms)", total, len(terms))
	}
}
