package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nafamubarokhusni/News-Summary/pkg/articles"
	"github.com/nafamubarokhusni/News-Summary/pkg/config"
	"github.com/nafamubarokhusni/News-Summary/pkg/llms"
	"github.com/nafamubarokhusni/News-Summary/pkg/nlp"
)

// Summarizes a single URL and prints the result as JSON. Useful for trying
// extraction heuristics against a stubborn page without running the server.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <url>\n", os.Args[0])
		os.Exit(2)
	}
	rawURL := os.Args[1]

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Fatal().Err(err).Msg("Failed to load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipeline, err := newPipeline(&logger, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build pipeline")
	}

	summary, err := pipeline.Summarize(ctx, rawURL)
	if err != nil {
		logger.Fatal().Err(err).Str("url", rawURL).Msg("Failed to summarize")
	}

	out, err := json.MarshalIndent(map[string]string{
		"title":   summary.Title,
		"summary": summary.Summary,
		"url":     summary.URL,
	}, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to serialize result")
	}

	fmt.Println(string(out))
}

func newPipeline(logger *zerolog.Logger, cfg *config.Config) (*articles.Pipeline, error) {
	fetcher := articles.NewFetcher(&cfg.ArticlesConfig, logger)
	extractor := articles.NewExtractor(logger)
	extractive := nlp.NewExtractiveSummarizer()

	if !cfg.LLMConfig.Enabled() {
		return articles.NewPipeline(fetcher, extractor, extractive, extractive, logger), nil
	}

	model, err := llms.NewCompletionModel(&cfg.LLMConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("create completion model: %w", err)
	}
	summarizer := nlp.NewFallbackSummarizer(nlp.NewArticleSummarizer(model, logger), extractive, logger)

	return articles.NewPipeline(fetcher, extractor, summarizer, extractive, logger), nil
}
