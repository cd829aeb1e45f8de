// Package triage implements the deterministic classification and
// normalization pipeline applied to every inbound message: the rule-based
// priority classifier, the extraction schema normalizer, and the
// rule-vs-model priority merge policy. Everything here is pure and total.
package triage

import (
	"regexp"
	"strings"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

var (
	// Whole-word urgency keywords. Arabic terms are matched by substring
	// below since RE2 word boundaries only apply to ASCII word characters.
	urgencyPattern = regexp.MustCompile(`\b(urgent|asap|immediately|emergency|critical|urgente)\b`)
	urgencyTerms   = []string{"عاجل", "طارئ"}

	dateWordPattern    = regexp.MustCompile(`today|tomorrow|الآن|اليوم|غدا`)
	numericDatePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}\b|\b\d{1,2}-\d{1,2}\b`)
)

// ClassifyPriority derives a coarse priority from raw message text using
// keyword and date-pattern heuristics, checked in order with first match
// winning: urgency keywords force high, date-proximity tokens force medium,
// everything else is low. Matching is case-insensitive and presence-based
// only; no actual date comparison is performed.
func ClassifyPriority(text string) domain.TicketPriority {
	lower := strings.ToLower(text)

	if urgencyPattern.MatchString(lower) {
		return domain.TicketPriorityHigh
	}
	for _, term := range urgencyTerms {
		if strings.Contains(lower, term) {
			return domain.TicketPriorityHigh
		}
	}

	if dateWordPattern.MatchString(lower) || numericDatePattern.MatchString(lower) {
		return domain.TicketPriorityMedium
	}

	return domain.TicketPriorityLow
}
