package triage

import "github.com/spec-kit/inbox-assistant/internal/domain"

// MergePriority reconciles the rule-derived priority with the model's
// judgment. The rule escalates but never downgrades: a rule high always
// wins, a rule medium lifts a model low to medium, and in every other case
// the model's value stands unchanged.
func MergePriority(rule, model domain.TicketPriority) (domain.TicketPriority, domain.PrioritySource) {
	if rule == domain.TicketPriorityHigh {
		return domain.TicketPriorityHigh, domain.PrioritySourceRule
	}
	if rule == domain.TicketPriorityMedium && model == domain.TicketPriorityLow {
		return domain.TicketPriorityMedium, domain.PrioritySourceRule
	}
	return model, domain.PrioritySourceAI
}
