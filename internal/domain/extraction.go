package domain

// Contact holds the optional contact fields the model may extract.
type Contact struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Extraction is the validated, fully-defaulted form of a model reply.
// Every field is always populated after normalization.
type Extraction struct {
	Contact         Contact        `json:"contact"`
	Channel         Channel        `json:"channel"`
	Language        string         `json:"language"`
	Intent          string         `json:"intent"`
	Priority        TicketPriority `json:"priority"`
	Entities        []Entity       `json:"entities"`
	ReplySuggestion string         `json:"reply_suggestion"`
}

// PrioritySource tags where the final priority decision came from.
type PrioritySource string

const (
	PrioritySourceRule PrioritySource = "rule-based"
	PrioritySourceAI   PrioritySource = "ai-based"
)

// TicketDraft is the flattened output of one extraction, prior to any
// persistence. Contact fields are hoisted to the top level and the raw
// message is carried verbatim.
type TicketDraft struct {
	ContactName     *string        `json:"contact_name"`
	ContactEmail    *string        `json:"contact_email"`
	ContactPhone    *string        `json:"contact_phone"`
	Channel         Channel        `json:"channel"`
	Language        string         `json:"language"`
	Intent          string         `json:"intent"`
	Priority        TicketPriority `json:"priority"`
	Entities        []Entity       `json:"entities"`
	MessageRaw      string         `json:"message_raw"`
	ReplySuggestion string         `json:"reply_suggestion"`
}

// ExtractionMetadata records priority provenance for one extraction call.
type ExtractionMetadata struct {
	PrioritySource    PrioritySource `json:"priority_source"`
	RuleBasedPriority TicketPriority `json:"rule_based_priority"`
}
