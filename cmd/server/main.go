package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nafamubarokhusni/News-Summary/pkg/api"
	"github.com/nafamubarokhusni/News-Summary/pkg/articles"
	"github.com/nafamubarokhusni/News-Summary/pkg/config"
	"github.com/nafamubarokhusni/News-Summary/pkg/lib/log"
	"github.com/nafamubarokhusni/News-Summary/pkg/llms"
	"github.com/nafamubarokhusni/News-Summary/pkg/nlp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := log.NewLogger(&cfg.LogConfig)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	server, err := initServer(logger, cfg)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return nil
}

func initServer(logger *zerolog.Logger, cfg *config.Config) (*api.Server, error) {
	fetcher := articles.NewFetcher(&cfg.ArticlesConfig, logger)
	extractor := articles.NewExtractor(logger)
	extractive := nlp.NewExtractiveSummarizer()

	summarizer, err := newSummarizer(logger, &cfg.LLMConfig, extractive)
	if err != nil {
		return nil, err
	}

	pipeline := articles.NewPipeline(fetcher, extractor, summarizer, extractive, logger)

	return api.NewServer(logger, &cfg.APIConfig, pipeline), nil
}

type articleSummarizer interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// newSummarizer picks the summarization strategy: a completion model with an
// extractive safety net when the provider is usable, extractive only when it
// is not.
func newSummarizer(logger *zerolog.Logger, cfg *llms.Config, extractive *nlp.ExtractiveSummarizer) (articleSummarizer, error) {
	if !cfg.Enabled() {
		logger.Info().
			Str("provider", cfg.Provider).
			Msg("No usable LLM credentials, serving extractive summaries only")
		return extractive, nil
	}

	model, err := llms.NewCompletionModel(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create completion model: %w", err)
	}

	remote := nlp.NewArticleSummarizer(model, logger)

	return nlp.NewFallbackSummarizer(remote, extractive, logger), nil
}
