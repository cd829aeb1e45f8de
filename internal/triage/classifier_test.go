package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.TicketPriority
	}{
		{"urgent keyword", "URGENT: server down now!", domain.TicketPriorityHigh},
		{"emergency mixed case", "this is an Emergency please help", domain.TicketPriorityHigh},
		{"asap", "need this done asap thanks", domain.TicketPriorityHigh},
		{"critical", "critical outage in production", domain.TicketPriorityHigh},
		{"spanish urgente", "es muy urgente por favor", domain.TicketPriorityHigh},
		{"arabic urgent", "هذا طلب عاجل جدا", domain.TicketPriorityHigh},
		{"arabic emergency", "حالة طارئ في النظام", domain.TicketPriorityHigh},
		{"keyword inside word does not match", "detergent delivery question", domain.TicketPriorityLow},
		{"urgency wins over date", "urgent, meeting tomorrow", domain.TicketPriorityHigh},

		{"tomorrow", "can we meet tomorrow?", domain.TicketPriorityMedium},
		{"today", "I need the invoice today", domain.TicketPriorityMedium},
		{"arabic today", "أحتاج الرد اليوم", domain.TicketPriorityMedium},
		{"slash date", "my flight is on 12/25 and I have a question", domain.TicketPriorityMedium},
		{"dash date", "appointment on 3-14 please confirm", domain.TicketPriorityMedium},
		{"single digit date", "renewal due 5/9", domain.TicketPriorityMedium},

		{"plain question", "Hi, quick question about pricing", domain.TicketPriorityLow},
		{"empty", "", domain.TicketPriorityLow},
		{"long number is not a date", "order 123/4567 arrived broken", domain.TicketPriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPriority(tt.text))
		})
	}
}
