package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// TicketPriority enumerates triage urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

// ValidPriority reports whether p is one of the three known labels.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return true
	}
	return false
}

// Channel enumerates the inbound channels a message can arrive on.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
	ChannelChat     Channel = "chat"
	ChannelUnknown  Channel = "unknown"
)

// ValidChannel reports whether ch is one of the five known channels.
func ValidChannel(ch Channel) bool {
	switch ch {
	case ChannelEmail, ChannelWhatsApp, ChannelSMS, ChannelChat, ChannelUnknown:
		return true
	}
	return false
}

// Entity is a single extracted entity (date, amount, location, ...).
// The extraction contract does not guarantee both fields are populated.
type Entity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Ticket is the persisted aggregate for one triaged message.
type Ticket struct {
	ID              int64
	Status          TicketStatus
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Channel         Channel
	Language        string
	Intent          string
	Priority        TicketPriority
	Entities        []Entity
	MessageRaw      string
	ReplySuggestion string
	CreatedAt       time.Time
}
