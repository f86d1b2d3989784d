package main

import (
	"log"

	"go.uber.org/zap"

	"outliner/api"
	"outliner/config"
	"outliner/extract"
	"outliner/fetch"
	"outliner/outline"
	"outliner/pipeline"
	"outliner/search"
)

func main() {
	// =========
	// Config
	// =========
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	analysis, err := config.LoadAnalysis(cfg.AnalysisFilePath)
	if err != nil {
		log.Fatalf("Failed to load analysis config: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Search provider
	// =========
	engine := search.NewSerpApiEngine(cfg.SerpApiKey)

	// =========
	// Page fetcher
	// =========
	fetchOpts := []fetch.Option{fetch.WithTimeout(analysis.FetchTimeout.Std())}
	if analysis.CachePath != "" {
		cache, err := fetch.OpenPageCache(analysis.CachePath)
		if err != nil {
			log.Fatalf("failed to open page cache: %v", err)
		}
		defer cache.Close()
		fetchOpts = append(fetchOpts, fetch.WithCache(cache))
	}
	fetcher := fetch.NewFetcher(logger, fetchOpts...)

	// =========
	// Text extractor
	// =========
	var extractor extract.Extractor
	switch analysis.Extractor {
	case "article":
		extractor = extract.NewArticleExtractor(logger)
	default:
		extractor = extract.NewStripExtractor()
	}

	// =========
	// Outline generator
	// =========
	generator, err := outline.NewOpenAIGenerator(cfg.OpenAIKey, analysis.Model, logger)
	if err != nil {
		log.Fatalf("failed to create outline generator: %v", err)
	}

	// =========
	// Pipeline
	// =========
	runner, err := pipeline.NewRunner(engine, fetcher, extractor, generator, analysis, logger)
	if err != nil {
		log.Fatalf("failed to create pipeline: %v", err)
	}

	// =========
	// HTTP server
	// =========
	server := api.NewServer(runner, logger, cfg.AppPort)
	log.Fatal(server.Start())
}
