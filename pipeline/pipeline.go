// Package pipeline runs one analysis: search, fetch, extract, rank,
// generate. A run owns its corpus and holds no state afterwards.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"outliner/config"
	"outliner/extract"
	"outliner/fetch"
	"outliner/keywords"
	"outliner/outline"
	"outliner/search"
)

// ErrNoResults signals that the search provider returned nothing to
// analyze. It is a data condition, distinct from configuration errors.
var ErrNoResults = errors.New("pipeline: search returned no results")

// ErrEmptyQuery rejects a request without a query.
var ErrEmptyQuery = errors.New("pipeline: query must not be empty")

// Request is one user-triggered analysis.
type Request struct {
	Query    string            `json:"query"`
	Language keywords.Language `json:"language,omitempty"`
}

// Competitor is the per-page slice of a Result.
type Competitor struct {
	URL      string             `json:"url"`
	Title    string             `json:"title,omitempty"`
	Domain   string             `json:"domain"`
	Preview  string             `json:"preview,omitempty"`
	Keywords []keywords.Keyword `json:"keywords"`
}

// Result carries everything one run produced.
type Result struct {
	RunID            string                     `json:"run_id"`
	Query            string                     `json:"query"`
	Intent           search.Intent              `json:"intent"`
	Competitors      []Competitor               `json:"competitors"`
	TopKeywords      []keywords.Keyword         `json:"top_keywords"`
	WeightedKeywords []keywords.WeightedKeyword `json:"weighted_keywords"`
	Outline          string                     `json:"outline"`
}

// Runner wires the collaborators for analysis runs. Construct once at
// startup and share; runs are independent.
type Runner struct {
	engine    search.Engine
	fetcher   fetch.Client
	extractor extract.Extractor
	generator outline.Generator
	cfg       config.Analysis
	logger    *zap.Logger
}

func NewRunner(
	engine search.Engine,
	fetcher fetch.Client,
	extractor extract.Extractor,
	generator outline.Generator,
	cfg config.Analysis,
	logger *zap.Logger,
) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: invalid analysis config: %w", err)
	}
	return &Runner{
		engine:    engine,
		fetcher:   fetcher,
		extractor: extractor,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Run executes one analysis. Failed fetches degrade to empty documents and
// never abort the run; only configuration errors and collaborator failures
// on the search/generate edges do.
func (r *Runner) Run(ctx context.Context, req *Request) (*Result, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	lang := req.Language
	if lang == "" {
		lang = r.cfg.Language
	}
	if !lang.Valid() {
		return nil, fmt.Errorf("pipeline: unsupported language %q", lang)
	}

	runID := uuid.NewString()
	logger := r.logger.With(zap.String("run_id", runID), zap.String("query", query))

	intent := search.DetectIntent(query)
	logger.Info("run_started", zap.String("intent", string(intent)))

	results, err := r.engine.Search(ctx, &search.Request{
		Query:    query,
		Count:    r.cfg.ResultCount,
		Language: string(lang),
	})
	if err != nil {
		return nil, fmt.Errorf("pipeline: search failed: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	competitors := make([]Competitor, len(results))
	docTerms := make([][]string, len(results))
	docErrs := make([]error, len(results))

	// Fetch and analyze each page independently; the corpus-level stages
	// wait for the full set.
	sem := make(chan struct{}, r.cfg.FetchParallelism)
	var wg sync.WaitGroup
	for i, res := range results {
		wg.Add(1)
		go func(i int, res search.Result) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			competitors[i], docTerms[i], docErrs[i] = r.analyzePage(ctx, logger, lang, res)
		}(i, res)
	}
	wg.Wait()

	rankings := make([][]keywords.Keyword, len(results))
	for i, err := range docErrs {
		if err != nil {
			return nil, err
		}
		rankings[i] = competitors[i].Keywords
	}

	topKeywords, err := keywords.Aggregate(rankings, r.cfg.TopAggregatedTerms)
	if err != nil {
		return nil, fmt.Errorf("pipeline: aggregation failed: %w", err)
	}
	weighted, err := keywords.WeightCorpus(docTerms, r.cfg.TopWeightedTerms)
	if err != nil {
		return nil, fmt.Errorf("pipeline: corpus weighting failed: %w", err)
	}

	outlineText, err := r.generator.Propose(ctx, r.buildBrief(query, intent, topKeywords, weighted, competitors))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	logger.Info("run_finished",
		zap.Int("competitors", len(competitors)),
		zap.Int("top_keywords", len(topKeywords)),
		zap.Int("weighted_keywords", len(weighted)))

	return &Result{
		RunID:            runID,
		Query:            query,
		Intent:           intent,
		Competitors:      competitors,
		TopKeywords:      topKeywords,
		WeightedKeywords: weighted,
		Outline:          outlineText,
	}, nil
}

// analyzePage runs the per-document half of the pipeline. A failed fetch or
// extraction yields an empty document, which ranks to nothing.
func (r *Runner) analyzePage(ctx context.Context, logger *zap.Logger,
	lang keywords.Language, res search.Result) (Competitor, []string, error) {

	competitor := Competitor{
		URL:    res.URL,
		Title:  res.Title,
		Domain: displayDomain(res.URL),
	}

	html := r.fetcher.Fetch(ctx, res.URL)

	content, err := r.extractor.Extract(html, res.URL)
	if err != nil || content == nil {
		logger.Warn("extraction_failed", zap.String("url", res.URL), zap.Error(err))
		content = &extract.Content{}
	}
	if content.Title != "" {
		competitor.Title = content.Title
	}
	competitor.Preview = content.Preview

	terms := keywords.FilterStopWords(keywords.Tokenize(content.Text, r.cfg.MinTermLength))
	ranking, err := keywords.CountFrequencies(terms, lang, r.cfg.TopTermsPerPage)
	if err != nil {
		return competitor, nil, fmt.Errorf("pipeline: frequency counting failed: %w", err)
	}
	competitor.Keywords = ranking

	logger.Info("page_analyzed",
		zap.String("url", res.URL),
		zap.Int("terms", len(terms)),
		zap.Int("keywords", len(ranking)))

	return competitor, terms, nil
}

func (r *Runner) buildBrief(query string, intent search.Intent,
	top []keywords.Keyword, weighted []keywords.WeightedKeyword,
	competitors []Competitor) *outline.Brief {

	primary := make([]string, 0, len(top))
	for _, kw := range top {
		primary = append(primary, kw.Word)
	}
	lsi := make([]string, 0, len(weighted))
	for _, wk := range weighted {
		lsi = append(lsi, wk.Term)
	}

	summaries := make([]outline.CompetitorSummary, 0, len(competitors))
	for _, c := range competitors {
		words := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			words = append(words, kw.Word)
		}
		summaries = append(summaries, outline.CompetitorSummary{URL: c.URL, Keywords: words})
	}

	return &outline.Brief{
		Query:            query,
		Intent:           string(intent),
		PrimaryKeywords:  primary,
		WeightedKeywords: lsi,
		Competitors:      summaries,
	}
}

// displayDomain reduces a URL to its registrable domain for display,
// falling back to the bare host (or the raw input) when the public suffix
// list can't place it.
func displayDomain(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return pageURL
	}
	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain
	}
	return host
}
