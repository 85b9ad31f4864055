package llms

type Config struct {
	Provider string `env:"LLM_PROVIDER,default=openai" validate:"required,oneof=openai ollama"`
	Model    string `env:"LLM_MODEL,default=gpt-5-nano-2025-08-07" validate:"required"`

	// Provider specific configurations
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	OllamaBaseURL     string `env:"OLLAMA_BASE_URL,default=http://localhost:11434"`
	OllamaContextSize int    `env:"OLLAMA_CONTEXT_SIZE,default=32768"` // context window size in tokens
}

// Enabled reports whether a completion model can be built from this config.
// Ollama needs no credentials; OpenAI is only usable with an API key.
func (c *Config) Enabled() bool {
	switch c.Provider {
	case "ollama":
		return true
	case "openai":
		return c.OpenAIAPIKey != ""
	default:
		return false
	}
}
