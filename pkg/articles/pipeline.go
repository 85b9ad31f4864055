package articles

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

type summarizer interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// Pipeline runs a request end to end: validate, fetch, extract, summarize.
// Each stage either hands its output to the next or fails the whole run;
// there are no partial results and no state outlives the call.
type Pipeline struct {
	fetcher   *Fetcher
	extractor *Extractor
	// summarizer handles live articles and may call a remote model.
	summarizer summarizer
	// extractive handles demo requests so their output never varies.
	extractive summarizer
	logger     *zerolog.Logger
}

func NewPipeline(fetcher *Fetcher, extractor *Extractor, summarizer, extractive summarizer, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		extractor:  extractor,
		summarizer: summarizer,
		extractive: extractive,
		logger:     logger,
	}
}

func (p *Pipeline) Summarize(ctx context.Context, rawURL string) (*Summary, error) {
	if strings.HasPrefix(rawURL, DemoScheme) {
		return p.summarizeDemo(ctx)
	}

	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	doc, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}

	content, err := p.extractor.Extract(doc)
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}

	summary, err := p.summarizer.Summarize(ctx, content.Title, content.Body)
	if err != nil {
		return nil, &StageError{Stage: StageSummarize, Err: err}
	}

	p.logger.Info().
		Str("url", rawURL).
		Str("title", content.Title).
		Int("body_runes", utf8.RuneCountInString(content.Body)).
		Int("summary_runes", utf8.RuneCountInString(summary)).
		Msg("Article summarized")

	return &Summary{Title: content.Title, Summary: summary, URL: rawURL}, nil
}

// summarizeDemo injects the sample article past the fetch and extract
// stages. The extractive summarizer keeps the response identical across
// runs.
func (p *Pipeline) summarizeDemo(ctx context.Context) (*Summary, error) {
	article := NewDemoArticle()

	summary, err := p.extractive.Summarize(ctx, article.Title, article.Content)
	if err != nil {
		return nil, &StageError{Stage: StageSummarize, Err: err}
	}

	return &Summary{Title: article.Title, Summary: summary, URL: article.URL}, nil
}
