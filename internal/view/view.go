// Package view projects store state into renderable view models. It holds
// no state of its own: the presentation shell calls these on every
// re-render signal.
package view

import (
	"groq-chat/internal/llm"
	"groq-chat/internal/store"
)

type HistoryItem struct {
	ID     string
	Title  string
	Active bool
}

type Bubble struct {
	Role    string
	Content string
}

// Transcript is the message-list projection for one conversation. Empty
// marks the no-conversation state; Typing mirrors the transient indicator.
type Transcript struct {
	Empty   bool
	Bubbles []Bubble
	Typing  bool
}

// ProjectHistory lists conversations in store order with the active one
// marked.
func ProjectHistory(s *store.Store) []HistoryItem {
	items := make([]HistoryItem, 0, s.Len())
	for _, c := range s.List() {
		items = append(items, HistoryItem{
			ID:     c.ID,
			Title:  c.Title,
			Active: c.ID == s.ActiveID(),
		})
	}
	return items
}

// ProjectMessages renders a conversation's messages in order with system
// messages filtered out. A nil conversation produces the empty-state
// marker.
func ProjectMessages(conv *store.Conversation, typing bool) Transcript {
	if conv == nil {
		return Transcript{Empty: true}
	}
	bubbles := make([]Bubble, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		if m.Role == llm.RoleSystem {
			continue
		}
		bubbles = append(bubbles, Bubble{Role: m.Role, Content: m.Content})
	}
	return Transcript{Bubbles: bubbles, Typing: typing}
}
