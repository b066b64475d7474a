package llm

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of a normalized conversation history.
type Turn struct {
	Role string
	Text string
}

type Provider interface {
	// Chat sends one user message with prior history and returns the raw
	// model reply.
	Chat(ctx context.Context, systemPrompt string, history []Turn, message string) (string, error)
	// Probe issues a trivial request to check reachability.
	Probe(ctx context.Context) error
	Close() error
}
