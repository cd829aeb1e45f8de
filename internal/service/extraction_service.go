package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/inbox-assistant/internal/ai"
	"github.com/spec-kit/inbox-assistant/internal/domain"
	"github.com/spec-kit/inbox-assistant/internal/events"
	"github.com/spec-kit/inbox-assistant/internal/observability"
	"github.com/spec-kit/inbox-assistant/internal/triage"
	apperrors "github.com/spec-kit/inbox-assistant/pkg/util/errorutil"
)

// ExtractionService turns one raw inbound message into a structured ticket
// draft: rule classification, one model call, normalization, priority merge
// and flattening. Each call is independent; the only suspension point is
// the model call, bounded by the caller's context.
type ExtractionService struct {
	client       ai.Client
	logger       *zap.Logger
	metrics      *observability.Metrics
	dispatcher   events.Dispatcher
	systemPrompt string
	temperature  float64
}

// ExtractionDependencies bundles collaborators for the extraction service.
type ExtractionDependencies struct {
	Client       ai.Client
	Logger       *zap.Logger
	Metrics      *observability.Metrics
	Dispatcher   events.Dispatcher
	SystemPrompt string
	Temperature  float64
}

// NewExtractionService constructs the service.
func NewExtractionService(deps ExtractionDependencies) *ExtractionService {
	return &ExtractionService{
		client:       deps.Client,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		dispatcher:   deps.Dispatcher,
		systemPrompt: deps.SystemPrompt,
		temperature:  deps.Temperature,
	}
}

// Extract runs the full pipeline for one message. Failures map 1:1 onto
// the caller-visible error taxonomy: INVALID_INPUT before any model call,
// PROVIDER_TIMEOUT when the bounded wait elapsed, PROVIDER_ERROR for any
// other failed call, RESPONSE_PARSE_ERROR for an undecodable reply. No
// step retries.
func (s *ExtractionService) Extract(ctx context.Context, message string) (*domain.TicketDraft, *domain.ExtractionMetadata, error) {
	if strings.TrimSpace(message) == "" {
		return nil, nil, apperrors.NewInvalidInput("message is required and must be a non-empty string")
	}

	rulePriority := triage.ClassifyPriority(message)

	userPrompt := "Extract fields from this message:\n\n" + message
	start := time.Now()
	completion, err := s.client.Complete(ctx, s.systemPrompt, userPrompt, ai.Options{
		Temperature: s.temperature,
		JSONMode:    true,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			s.metrics.RecordExtraction("PROVIDER_TIMEOUT")
			return nil, nil, apperrors.NewProviderTimeout(err)
		}
		s.metrics.RecordExtraction("PROVIDER_ERROR")
		return nil, nil, apperrors.NewProviderError(err)
	}
	s.logger.Info("ai provider responded", zap.Duration("elapsed", time.Since(start)))

	candidate, err := decodeCandidate(completion)
	if err != nil {
		s.metrics.RecordExtraction("RESPONSE_PARSE_ERROR")
		return nil, nil, apperrors.NewResponseParseError(err)
	}

	extraction := triage.Normalize(candidate)
	finalPriority, _ := triage.MergePriority(rulePriority, extraction.Priority)

	// The reported provenance only ever distinguishes a rule-forced high
	// from everything else; a medium escalation is still attributed to the
	// model. Existing behavior, kept as-is.
	source := domain.PrioritySourceAI
	if rulePriority == domain.TicketPriorityHigh {
		source = domain.PrioritySourceRule
	}

	draft := &domain.TicketDraft{
		ContactName:     extraction.Contact.Name,
		ContactEmail:    extraction.Contact.Email,
		ContactPhone:    extraction.Contact.Phone,
		Channel:         extraction.Channel,
		Language:        extraction.Language,
		Intent:          extraction.Intent,
		Priority:        finalPriority,
		Entities:        extraction.Entities,
		MessageRaw:      message,
		ReplySuggestion: extraction.ReplySuggestion,
	}
	metadata := &domain.ExtractionMetadata{
		PrioritySource:    source,
		RuleBasedPriority: rulePriority,
	}

	s.logger.Info("extraction completed",
		zap.String("priority", string(finalPriority)),
		zap.String("rule_based_priority", string(rulePriority)),
		zap.String("model_priority", string(extraction.Priority)),
		zap.String("priority_source", string(source)),
	)
	s.metrics.RecordExtraction(string(source))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type: events.EventExtractionCompleted,
			Payload: events.ExtractionCompletedPayload{
				PrioritySource:    source,
				RuleBasedPriority: rulePriority,
				FinalPriority:     finalPriority,
				Language:          extraction.Language,
			},
		})
	}

	return draft, metadata, nil
}

// decodeCandidate resolves the string-or-structured duality of a provider
// reply into one decoded document.
func decodeCandidate(completion *ai.Completion) (any, error) {
	if completion.Structured != nil {
		return completion.Structured, nil
	}
	var candidate any
	if err := json.Unmarshal([]byte(completion.Text), &candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}
