package nlp

import (
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/nafamubarokhusni/News-Summary/pkg/lib"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

//go:embed summarize-article.md
var summarizeArticlePrompt string

// maxPromptContentRunes caps how much of the article body goes into the
// prompt. Long articles blow the context window and the summary quality
// gains nothing past the lede and first sections.
const maxPromptContentRunes = 3000

// ArticleSummarizer produces an abstractive summary through a completion
// model.
type ArticleSummarizer struct {
	model  llms.Model
	logger *zerolog.Logger
}

func NewArticleSummarizer(model llms.Model, logger *zerolog.Logger) *ArticleSummarizer {
	return &ArticleSummarizer{model: model, logger: logger}
}

func (s *ArticleSummarizer) Summarize(ctx context.Context, title, body string) (string, error) {
	template := prompts.NewPromptTemplate(summarizeArticlePrompt, []string{"title", "content"})

	content, limited := lib.LimitStringLength(body, maxPromptContentRunes)
	if limited {
		s.logger.Debug().
			Int("limit_runes", maxPromptContentRunes).
			Msg("Article body truncated for prompt")
	}

	prompt, err := template.Format(map[string]any{
		"title":   title,
		"content": content,
	})
	if err != nil {
		return "", fmt.Errorf("format prompt: %w", err)
	}

	out, err := llms.GenerateFromSinglePrompt(
		ctx,
		s.model,
		prompt,
		// Note: Fixed temperature of 1 must be applied for gpt-5-nano
		llms.WithTemperature(1.0),
	)
	if err != nil {
		logGenerateCompletionError(s.logger, prompt, err)
		return "", fmt.Errorf("generate completion: %w", err)
	}

	summary := strings.TrimSpace(out)
	if summary == "" {
		return "", fmt.Errorf("model returned an empty completion")
	}

	return summary, nil
}

func logGenerateCompletionError(logger *zerolog.Logger, prompt string, err error) {
	logger.Error().
		Err(err).
		// Log in base64 for a more compact representation
		Str("prompt_base64", base64.StdEncoding.EncodeToString([]byte(prompt))).
		Int("prompt_bytes", len(prompt)).
		Msg("Error generating completion")
}
