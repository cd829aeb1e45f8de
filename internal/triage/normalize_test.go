package triage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

func TestNormalizeEmptyObject(t *testing.T) {
	got := Normalize(map[string]any{})

	assert.Equal(t, domain.Extraction{
		Contact:         domain.Contact{Name: nil, Email: nil, Phone: nil},
		Channel:         domain.ChannelUnknown,
		Language:        "en",
		Intent:          "",
		Priority:        domain.TicketPriorityLow,
		Entities:        []domain.Entity{},
		ReplySuggestion: "",
	}, got)
}

func TestNormalizeNonObjectInput(t *testing.T) {
	for _, candidate := range []any{nil, "just a string", 42.0, []any{"a"}} {
		got := Normalize(candidate)
		assert.Equal(t, domain.ChannelUnknown, got.Channel)
		assert.Equal(t, "en", got.Language)
		assert.Equal(t, domain.TicketPriorityLow, got.Priority)
		assert.Empty(t, got.Entities)
	}
}

func TestNormalizeInvalidEmailNulled(t *testing.T) {
	got := Normalize(map[string]any{
		"contact": map[string]any{"email": "not-an-email"},
	})
	assert.Nil(t, got.Contact.Email)
}

func TestNormalizeValidEmailKept(t *testing.T) {
	got := Normalize(map[string]any{
		"contact": map[string]any{"name": "Sara", "email": "sara@example.com", "phone": "+15551234"},
	})
	require.NotNil(t, got.Contact.Email)
	assert.Equal(t, "sara@example.com", *got.Contact.Email)
	require.NotNil(t, got.Contact.Name)
	assert.Equal(t, "Sara", *got.Contact.Name)
	require.NotNil(t, got.Contact.Phone)
	assert.Equal(t, "+15551234", *got.Contact.Phone)
}

func TestNormalizeChannel(t *testing.T) {
	assert.Equal(t, domain.ChannelUnknown, Normalize(map[string]any{"channel": "carrier-pigeon"}).Channel)
	assert.Equal(t, domain.ChannelSMS, Normalize(map[string]any{"channel": "sms"}).Channel)
	assert.Equal(t, domain.ChannelUnknown, Normalize(map[string]any{"channel": 7.0}).Channel)
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, domain.TicketPriorityHigh, Normalize(map[string]any{"priority": "high"}).Priority)
	assert.Equal(t, domain.TicketPriorityLow, Normalize(map[string]any{"priority": "sky-high"}).Priority)
}

func TestNormalizeEntities(t *testing.T) {
	got := Normalize(map[string]any{"entities": "not-an-array"})
	assert.Equal(t, []domain.Entity{}, got.Entities)

	got = Normalize(map[string]any{"entities": []any{
		map[string]any{"type": "date", "value": "tomorrow"},
		map[string]any{"value": "Berlin"},
		"free-floating",
		3.14,
	}})
	assert.Equal(t, []domain.Entity{
		{Type: "date", Value: "tomorrow"},
		{Type: "", Value: "Berlin"},
		{Type: "", Value: "free-floating"},
	}, got.Entities)
}

func TestNormalizeDecodedJSON(t *testing.T) {
	// Exactly what the orchestrator feeds in after decoding a model reply.
	var candidate any
	err := json.Unmarshal([]byte(`{
		"contact": {"name": "Omar", "email": "omar@shop.io", "phone": null},
		"channel": "whatsapp",
		"language": "ar",
		"intent": "order_status",
		"priority": "medium",
		"entities": [{"type": "order_id", "value": "8841"}],
		"reply_suggestion": "سنتحقق من طلبك"
	}`), &candidate)
	require.NoError(t, err)

	got := Normalize(candidate)
	assert.Equal(t, domain.ChannelWhatsApp, got.Channel)
	assert.Equal(t, "ar", got.Language)
	assert.Equal(t, "order_status", got.Intent)
	assert.Equal(t, domain.TicketPriorityMedium, got.Priority)
	assert.Nil(t, got.Contact.Phone)
	require.NotNil(t, got.Contact.Email)
	assert.Equal(t, "omar@shop.io", *got.Contact.Email)
	assert.Equal(t, []domain.Entity{{Type: "order_id", Value: "8841"}}, got.Entities)
	assert.Equal(t, "سنتحقق من طلبك", got.ReplySuggestion)
}
