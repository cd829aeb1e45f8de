package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/inbox-assistant/internal/config"
)

// OpenAIClient implements Client for any OpenAI-compatible chat-completions
// API, which covers OpenAI, Groq and a local Ollama endpoint.
type OpenAIClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewOpenAIClient builds the client from immutable process configuration.
func NewOpenAIClient(cfg config.AIConfig) *OpenAIClient {
	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &OpenAIClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}
}

// Model returns the configured model identifier.
func (c *OpenAIClient) Model() string { return c.model }

// Complete sends one chat-completion request. The returned Completion
// carries the reply as text or as an already-decoded object, depending on
// what the provider produced. Context cancellation and timeouts propagate
// through the underlying HTTP call.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, opts Options) (*Completion, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: &opts.Temperature,
	}
	if opts.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return decodeContent(chatResp.Choices[0].Message.Content), nil
}

// decodeContent maps the provider's message content onto the string-or-
// structured variant. Anything that is neither is carried as raw text so
// the caller's decode step reports the parse failure.
func decodeContent(content json.RawMessage) *Completion {
	if len(content) == 0 {
		return &Completion{}
	}
	var text string
	if err := json.Unmarshal(content, &text); err == nil {
		return &Completion{Text: text}
	}
	var structured map[string]any
	if err := json.Unmarshal(content, &structured); err == nil {
		return &Completion{Structured: structured}
	}
	return &Completion{Text: string(content)}
}

// --- wire format types ---

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message struct {
		Content json.RawMessage `json:"content"`
	} `json:"message"`
}

// Warmup fires a single best-effort completion so a cold local model gets
// loaded before the first real request. Failures are logged, never
// surfaced; the caller bounds the wait through ctx.
func Warmup(ctx context.Context, client Client, logger *zap.Logger) {
	start := time.Now()
	_, err := client.Complete(ctx,
		"System warmup: please respond with a short acknowledgement in one word.",
		"Warmup",
		Options{Temperature: 0},
	)
	if err != nil {
		logger.Warn("model warmup failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return
	}
	logger.Info("model warmup completed", zap.Duration("elapsed", time.Since(start)))
}
