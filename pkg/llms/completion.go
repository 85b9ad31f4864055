package llms

import (
	"fmt"
	"net/http"

	"github.com/nafamubarokhusni/News-Summary/pkg/lib"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewCompletionModel builds the configured completion model. Callers should
// check Config.Enabled first; an openai provider without a key is a
// construction error here, not a fallback.
func NewCompletionModel(config *Config, logger *zerolog.Logger) (llms.Model, error) {
	switch config.Provider {
	case "openai":
		model, err := openai.New(
			openai.WithModel(config.Model),
			openai.WithToken(config.OpenAIAPIKey),
			openai.WithHTTPClient(lib.NewUsageLoggingClient(logger)),
		)
		if err != nil {
			return nil, fmt.Errorf("create openai model: %w", err)
		}
		return model, nil
	case "ollama":
		return NewOllamaModel(config.OllamaBaseURL, config.Model, http.DefaultClient, config.OllamaContextSize), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
