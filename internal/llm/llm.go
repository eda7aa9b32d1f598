// Package llm defines the language-completion capability consumed by the
// query translation protocol, plus an OpenAI-compatible HTTP client.
package llm

import "context"

// Message is one chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the narrow completion capability. Implementations must
// honor the context deadline; a timeout surfaces as an ordinary error and
// feeds the caller's retry path like any other completion failure.
type Completer interface {
	Complete(ctx context.Context, messages []Message, temperature float64, maxTokens int) (string, error)
}
