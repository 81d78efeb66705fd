package llm

import (
	"context"
	"fmt"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is the wire shape shared by persistence, the relay protocol and
// the upstream completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Response struct {
	Content string
	Model   string
}

// Client produces one completion for a full message sequence. A send issues
// exactly one Generate call: no retries, no timeout at this layer.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}

// APIError is an application-level failure reported by the completion
// endpoint: the request completed, but the service answered with a
// structured error. Anything else returned from Generate is a transport
// failure.
type APIError struct {
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat completion error: %s", e.Detail)
}
