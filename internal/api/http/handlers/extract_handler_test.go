package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/inbox-assistant/internal/ai"
	httptransport "github.com/spec-kit/inbox-assistant/internal/api/http"
	"github.com/spec-kit/inbox-assistant/internal/api/http/handlers"
	"github.com/spec-kit/inbox-assistant/internal/observability"
	"github.com/spec-kit/inbox-assistant/internal/service"
)

type stubClient struct {
	completion *ai.Completion
	err        error
}

func (s *stubClient) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ai.Options) (*ai.Completion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

func newExtractApp(client ai.Client) *fiber.App {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	svc := service.NewExtractionService(service.ExtractionDependencies{
		Client:       client,
		Logger:       logger,
		Metrics:      metrics,
		SystemPrompt: "extract fields as JSON",
		Temperature:  0.2,
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, 0)
	app.Post("/api/ai/extract", handlers.NewExtractHandler(svc).Extract)
	return app
}

func postExtract(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestExtractEndpointSuccess(t *testing.T) {
	app := newExtractApp(&stubClient{completion: &ai.Completion{
		Text: `{"priority":"low","channel":"chat","language":"en","intent":"incident"}`,
	}})

	resp := postExtract(t, app, `{"message":"URGENT: server down now!"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Priority   string `json:"priority"`
			Channel    string `json:"channel"`
			MessageRaw string `json:"message_raw"`
		} `json:"data"`
		Metadata struct {
			PrioritySource    string `json:"priority_source"`
			RuleBasedPriority string `json:"rule_based_priority"`
		} `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.True(t, payload.Success)
	assert.Equal(t, "high", payload.Data.Priority)
	assert.Equal(t, "chat", payload.Data.Channel)
	assert.Equal(t, "URGENT: server down now!", payload.Data.MessageRaw)
	assert.Equal(t, "rule-based", payload.Metadata.PrioritySource)
	assert.Equal(t, "high", payload.Metadata.RuleBasedPriority)
}

func TestExtractEndpointEmptyMessage(t *testing.T) {
	app := newExtractApp(&stubClient{})

	resp := postExtract(t, app, `{"message":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "INVALID_INPUT", payload.Error.Code)
}

func TestExtractEndpointProviderFailure(t *testing.T) {
	app := newExtractApp(&stubClient{err: errors.New("connection refused")})

	resp := postExtract(t, app, `{"message":"hello"}`)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "PROVIDER_ERROR", payload.Error.Code)
}

func TestExtractEndpointUnparseableReply(t *testing.T) {
	app := newExtractApp(&stubClient{completion: &ai.Completion{
		Text: "not json at all",
	}})

	resp := postExtract(t, app, `{"message":"hello"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "RESPONSE_PARSE_ERROR", payload.Error.Code)
}
