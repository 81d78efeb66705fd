package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"groq-chat/internal/llm"
	"groq-chat/internal/store"
)

// State tracks where a send is in its lifecycle. Terminal outcomes always
// return the exchange to StateIdle.
type State int

const (
	StateIdle State = iota
	StateComposing
	StateAwaitingReply
	StateSettled
	StateFailed
)

const (
	emptyReplyFallback = "(empty response)"
	networkErrorText   = "Network error. Please try again in a moment."
)

// Exchange orchestrates the optimistic append / network call / reconcile
// cycle for one client. It runs on a single logical thread: callers must
// serialize sends per conversation (e.g. by disabling input while a reply
// is pending); there is no internal locking and no cancellation path.
type Exchange struct {
	store  *store.Store
	ctrl   *Controller
	client llm.Client
	render Renderer

	state  State
	typing bool
}

func NewExchange(s *store.Store, ctrl *Controller, client llm.Client, render Renderer) *Exchange {
	return &Exchange{store: s, ctrl: ctrl, client: client, render: render}
}

// Typing reports whether the transient typing indicator is active. It is
// presentation state only and is never persisted.
func (e *Exchange) Typing() bool { return e.typing }

func (e *Exchange) State() State { return e.state }

// Send runs the full send protocol for one user message. Empty input after
// trimming is a no-op. Failures surface as assistant-authored messages in
// the conversation; the returned error carries the underlying cause for
// logging and is nil when the reply settled normally.
func (e *Exchange) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	e.state = StateComposing

	conv := e.ctrl.Active()
	if conv == nil {
		conv = e.ctrl.NewConversation(text)
	}

	conv.Messages = append(conv.Messages, llm.Message{Role: llm.RoleUser, Content: text})
	if IsPlaceholderTitle(conv.Title) {
		// The only point after creation where a title may change.
		conv.Title = DeriveTitle(text)
	}
	e.store.Save()
	e.render.RenderHistory()
	e.render.RenderMessages()

	// Entering AwaitingReply replaces any stale indicator from a previous
	// send.
	e.state = StateAwaitingReply
	e.typing = true
	e.render.RenderMessages()

	resp, err := e.client.Generate(ctx, conv.Messages)
	e.typing = false

	switch {
	case err == nil:
		reply := strings.TrimSpace(resp.Content)
		if reply == "" {
			reply = emptyReplyFallback
		}
		conv.Messages = append(conv.Messages, llm.Message{Role: llm.RoleAssistant, Content: reply})
		e.state = StateSettled
	default:
		var apiErr *llm.APIError
		content := networkErrorText
		if errors.As(err, &apiErr) {
			content = fmt.Sprintf("Error: %s", apiErr.Detail)
		}
		conv.Messages = append(conv.Messages, llm.Message{Role: llm.RoleAssistant, Content: content})
		e.state = StateFailed
	}

	e.store.Save()
	e.render.RenderMessages()
	e.state = StateIdle
	return err
}
