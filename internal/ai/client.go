// Package ai provides the model-provider collaborator: an abstraction over
// chat-completion APIs plus the OpenAI-compatible implementation used in
// production (OpenAI, Groq, local Ollama).
package ai

import "context"

// Options tune one completion call.
type Options struct {
	Temperature float64
	// JSONMode asks the provider to constrain the reply to a JSON object.
	JSONMode bool
}

// Completion is the tagged result of one call. Providers reply with either
// a JSON-encoded string body or an already-structured object; exactly one
// of the two fields is meaningful.
type Completion struct {
	Text       string
	Structured map[string]any
}

// Client is the abstraction over completion APIs.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts Options) (*Completion, error)
}
