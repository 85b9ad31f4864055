package nlp

import (
	"context"

	"github.com/rs/zerolog"
)

type summarizer interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// FallbackSummarizer runs the primary summarizer and recovers from its
// failures with the fallback. The primary's error is logged, not returned;
// callers only see a failure when both summarizers fail.
type FallbackSummarizer struct {
	primary  summarizer
	fallback summarizer
	logger   *zerolog.Logger
}

func NewFallbackSummarizer(primary, fallback summarizer, logger *zerolog.Logger) *FallbackSummarizer {
	return &FallbackSummarizer{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (s *FallbackSummarizer) Summarize(ctx context.Context, title, body string) (string, error) {
	out, err := s.primary.Summarize(ctx, title, body)
	if err == nil {
		return out, nil
	}

	s.logger.Warn().
		Err(err).
		Str("title", title).
		Msg("Summarization failed, falling back to extractive summary")

	return s.fallback.Summarize(ctx, title, body)
}
