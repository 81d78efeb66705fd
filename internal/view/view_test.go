package view

import (
	"testing"

	"go.uber.org/zap"

	"groq-chat/internal/llm"
	"groq-chat/internal/store"
)

type memKV struct{ data map[string][]byte }

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func TestProjectHistory(t *testing.T) {
	st := store.New(&memKV{data: map[string][]byte{}}, zap.NewNop())
	st.InsertFront(&store.Conversation{ID: "1", Title: "older"})
	st.InsertFront(&store.Conversation{ID: "2", Title: "newer"})
	st.SetActive("2")

	items := ProjectHistory(st)
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	if items[0].ID != "2" || !items[0].Active {
		t.Fatalf("active conversation not marked: %+v", items[0])
	}
	if items[1].ID != "1" || items[1].Active {
		t.Fatalf("inactive conversation marked: %+v", items[1])
	}
}

func TestProjectMessages_EmptyState(t *testing.T) {
	tr := ProjectMessages(nil, false)
	if !tr.Empty || len(tr.Bubbles) != 0 {
		t.Fatalf("nil conversation must produce the empty marker: %+v", tr)
	}
}

func TestProjectMessages_FiltersSystem(t *testing.T) {
	conv := &store.Conversation{
		ID: "1",
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: "you are helpful"},
			{Role: llm.RoleUser, Content: "hi"},
			{Role: llm.RoleAssistant, Content: "hello"},
		},
	}

	tr := ProjectMessages(conv, true)
	if tr.Empty {
		t.Fatalf("unexpected empty marker")
	}
	if len(tr.Bubbles) != 2 {
		t.Fatalf("system message not filtered: %+v", tr.Bubbles)
	}
	if tr.Bubbles[0].Role != llm.RoleUser || tr.Bubbles[1].Role != llm.RoleAssistant {
		t.Fatalf("order not preserved: %+v", tr.Bubbles)
	}
	if !tr.Typing {
		t.Fatalf("typing flag dropped")
	}
}
