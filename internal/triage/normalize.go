package triage

import (
	"regexp"

	"github.com/spec-kit/inbox-assistant/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize converts an untrusted, arbitrarily-shaped model reply into a
// fully-defaulted Extraction. It never fails: inputs that are not
// object-shaped are treated as having no recognized fields, invalid values
// are replaced by their documented defaults, and a malformed contact email
// is nulled rather than rejecting the whole record.
func Normalize(candidate any) domain.Extraction {
	out := domain.Extraction{
		Channel:  domain.ChannelUnknown,
		Language: "en",
		Priority: domain.TicketPriorityLow,
		Entities: []domain.Entity{},
	}

	fields, ok := candidate.(map[string]any)
	if !ok {
		return out
	}

	out.Contact = normalizeContact(fields["contact"])

	if ch := domain.Channel(asString(fields["channel"])); domain.ValidChannel(ch) && ch != "" {
		out.Channel = ch
	}
	if lang := asString(fields["language"]); lang != "" {
		out.Language = lang
	}
	out.Intent = asString(fields["intent"])
	if p := domain.TicketPriority(asString(fields["priority"])); domain.ValidPriority(p) {
		out.Priority = p
	}
	out.Entities = normalizeEntities(fields["entities"])
	out.ReplySuggestion = asString(fields["reply_suggestion"])

	return out
}

func normalizeContact(raw any) domain.Contact {
	contact := domain.Contact{}
	fields, ok := raw.(map[string]any)
	if !ok {
		return contact
	}
	contact.Name = asNullableString(fields["name"])
	contact.Phone = asNullableString(fields["phone"])

	// Email validation runs after the field itself survives the falsy check.
	if email := asNullableString(fields["email"]); email != nil && emailPattern.MatchString(*email) {
		contact.Email = email
	}
	return contact
}

func normalizeEntities(raw any) []domain.Entity {
	items, ok := raw.([]any)
	if !ok {
		return []domain.Entity{}
	}
	entities := make([]domain.Entity, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			entities = append(entities, domain.Entity{
				Type:  asString(v["type"]),
				Value: asString(v["value"]),
			})
		case string:
			entities = append(entities, domain.Entity{Value: v})
		}
	}
	return entities
}

func asString(raw any) string {
	s, _ := raw.(string)
	return s
}

func asNullableString(raw any) *string {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}
