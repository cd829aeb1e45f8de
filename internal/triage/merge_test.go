package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

func TestMergePriority(t *testing.T) {
	tests := []struct {
		name       string
		rule       domain.TicketPriority
		model      domain.TicketPriority
		wantFinal  domain.TicketPriority
		wantSource domain.PrioritySource
	}{
		{"rule high beats model low", domain.TicketPriorityHigh, domain.TicketPriorityLow, domain.TicketPriorityHigh, domain.PrioritySourceRule},
		{"rule high beats model medium", domain.TicketPriorityHigh, domain.TicketPriorityMedium, domain.TicketPriorityHigh, domain.PrioritySourceRule},
		{"rule high agrees with model high", domain.TicketPriorityHigh, domain.TicketPriorityHigh, domain.TicketPriorityHigh, domain.PrioritySourceRule},
		{"rule medium lifts model low", domain.TicketPriorityMedium, domain.TicketPriorityLow, domain.TicketPriorityMedium, domain.PrioritySourceRule},
		{"rule medium defers to model medium", domain.TicketPriorityMedium, domain.TicketPriorityMedium, domain.TicketPriorityMedium, domain.PrioritySourceAI},
		{"rule medium defers to model high", domain.TicketPriorityMedium, domain.TicketPriorityHigh, domain.TicketPriorityHigh, domain.PrioritySourceAI},
		{"rule low defers to model low", domain.TicketPriorityLow, domain.TicketPriorityLow, domain.TicketPriorityLow, domain.PrioritySourceAI},
		{"rule low defers to model high", domain.TicketPriorityLow, domain.TicketPriorityHigh, domain.TicketPriorityHigh, domain.PrioritySourceAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, source := MergePriority(tt.rule, tt.model)
			assert.Equal(t, tt.wantFinal, final)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}
