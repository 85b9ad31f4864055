package lib

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// UsageLoggingClient is the HTTP client handed to the OpenAI-compatible LLM
// client. It logs token usage from successful completion responses and does
// nothing else: no retries, no rate limiting.
type UsageLoggingClient struct {
	client *http.Client
	logger *zerolog.Logger
}

func NewUsageLoggingClient(logger *zerolog.Logger) *UsageLoggingClient {
	return &UsageLoggingClient{
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

// usageResponse mirrors the usage block of a completions response,
// https://platform.openai.com/docs/api-reference/chat/object
type usageResponse struct {
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Model string `json:"model"`
}

func (c *UsageLoggingClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		c.logUsage(resp, time.Since(start))
	}

	return resp, nil
}

// logUsage reads the body for the usage block, then restores it so the LLM
// client sees the same bytes.
func (c *UsageLoggingClient) logUsage(resp *http.Response, elapsed time.Duration) {
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return
	}

	var parsed usageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return
	}

	c.logger.Debug().
		Str("model", parsed.Model).
		Int("prompt_tokens", parsed.Usage.PromptTokens).
		Int("completion_tokens", parsed.Usage.CompletionTokens).
		Int("total_tokens", parsed.Usage.TotalTokens).
		Dur("elapsed", elapsed).
		Msg("LLM completion finished")
}
