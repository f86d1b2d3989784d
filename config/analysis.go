package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"outliner/keywords"
)

// Duration parses YAML values like "15s" or "2m" into a time.Duration.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Analysis holds the tunable parameters of one keyword analysis run.
type Analysis struct {
	Language           keywords.Language `yaml:"language"`
	MinTermLength      int               `yaml:"min_term_length"`
	ResultCount        int               `yaml:"result_count"`
	TopTermsPerPage    int               `yaml:"top_terms_per_page"`
	TopWeightedTerms   int               `yaml:"top_weighted_terms"`
	TopAggregatedTerms int               `yaml:"top_aggregated_terms"`
	FetchParallelism   int               `yaml:"fetch_parallelism"`
	FetchTimeout       Duration          `yaml:"fetch_timeout"`
	Extractor          string            `yaml:"extractor"`
	CachePath          string            `yaml:"cache_path"`
	Model              string            `yaml:"model"`
}

// DefaultAnalysis mirrors the defaults of the original pipeline: Czech,
// three competitors, strict 3-rune tokens, top 20/12/40 rankings.
func DefaultAnalysis() Analysis {
	return Analysis{
		Language:           keywords.DefaultLanguage,
		MinTermLength:      keywords.DefaultMinTermLength,
		ResultCount:        3,
		TopTermsPerPage:    keywords.DefaultTopTerms,
		TopWeightedTerms:   keywords.DefaultTopWeighted,
		TopAggregatedTerms: keywords.DefaultTopAggregated,
		FetchParallelism:   3,
		FetchTimeout:       Duration(15 * time.Second),
		Extractor:          "strip",
	}
}

// LoadAnalysis reads an Analysis from a YAML file, filling unset fields
// with defaults. An empty path returns the defaults.
func LoadAnalysis(path string) (Analysis, error) {
	a := DefaultAnalysis()
	if path == "" {
		return a, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("failed to read analysis config: %w", err)
	}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("failed to parse analysis config: %w", err)
	}

	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

// Validate rejects parameter combinations the pipeline would refuse at run
// time, so bad configuration surfaces at startup.
func (a Analysis) Validate() error {
	if !a.Language.Valid() {
		return fmt.Errorf("unsupported language %q", a.Language)
	}
	for name, v := range map[string]int{
		"result_count":         a.ResultCount,
		"top_terms_per_page":   a.TopTermsPerPage,
		"top_weighted_terms":   a.TopWeightedTerms,
		"top_aggregated_terms": a.TopAggregatedTerms,
		"fetch_parallelism":    a.FetchParallelism,
		"min_term_length":      a.MinTermLength,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if a.Extractor != "strip" && a.Extractor != "article" {
		return fmt.Errorf("unsupported extractor %q", a.Extractor)
	}
	return nil
}
