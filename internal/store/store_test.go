package store

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"groq-chat/internal/llm"
)

type memKV struct {
	data   map[string][]byte
	setErr error
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func TestStore_RoundTrip(t *testing.T) {
	kvs := newMemKV()
	s := New(kvs, zap.NewNop())
	s.Load()

	older := &Conversation{ID: "1", Title: "first", CreatedAt: time.Unix(1, 0).UTC(),
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}, {Role: llm.RoleAssistant, Content: "hello"}}}
	newer := &Conversation{ID: "2", Title: "second", CreatedAt: time.Unix(2, 0).UTC(),
		Messages: []llm.Message{}}
	s.InsertFront(older)
	s.InsertFront(newer)
	s.SetActive("1")
	s.Save()

	reloaded := New(kvs, zap.NewNop())
	reloaded.Load()

	list := reloaded.List()
	if len(list) != 2 {
		t.Fatalf("want 2 conversations, got %d", len(list))
	}
	if list[0].ID != "2" || list[1].ID != "1" {
		t.Fatalf("order not preserved: %s, %s", list[0].ID, list[1].ID)
	}
	if list[1].Title != "first" || len(list[1].Messages) != 2 {
		t.Fatalf("conversation content lost: %+v", list[1])
	}
	if list[1].Messages[0].Role != llm.RoleUser || list[1].Messages[0].Content != "hi" {
		t.Fatalf("message content lost: %+v", list[1].Messages[0])
	}
	// Load always reselects the most recent conversation
	if reloaded.ActiveID() != "2" {
		t.Fatalf("expected most recent active, got %q", reloaded.ActiveID())
	}
}

func TestStore_LoadMissingData(t *testing.T) {
	s := New(newMemKV(), zap.NewNop())
	s.Load()
	if s.Len() != 0 || s.ActiveID() != "" {
		t.Fatalf("expected empty store, got len=%d active=%q", s.Len(), s.ActiveID())
	}
}

func TestStore_LoadMalformedData(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":       "not json at all",
		"wrong_version": `{"version":99,"conversations":[]}`,
		"wrong_shape":   `[1,2,3]`,
	} {
		kvs := newMemKV()
		kvs.data[StorageKey] = []byte(raw)
		s := New(kvs, zap.NewNop())
		s.Load()
		if s.Len() != 0 || s.ActiveID() != "" {
			t.Fatalf("%s: expected empty store, got len=%d active=%q", name, s.Len(), s.ActiveID())
		}
	}
}

func TestStore_SaveFailureDoesNotBlock(t *testing.T) {
	kvs := newMemKV()
	kvs.setErr = errors.New("quota exceeded")
	s := New(kvs, zap.NewNop())
	s.InsertFront(&Conversation{ID: "1", Title: "t"})
	s.SetActive("1")
	s.Save()

	// In-memory state survives the persistence failure
	if s.Find("1") == nil || s.Active() == nil {
		t.Fatalf("in-memory state lost after save failure")
	}
}

func TestStore_ActiveStaleID(t *testing.T) {
	s := New(newMemKV(), zap.NewNop())
	s.InsertFront(&Conversation{ID: "1"})
	s.SetActive("missing")
	if s.Active() != nil {
		t.Fatalf("stale active id must resolve to nil")
	}
}

func TestStore_Find(t *testing.T) {
	s := New(newMemKV(), zap.NewNop())
	s.InsertFront(&Conversation{ID: "1", Title: "a"})
	s.InsertFront(&Conversation{ID: "2", Title: "b"})
	if c := s.Find("1"); c == nil || c.Title != "a" {
		t.Fatalf("find 1: %+v", c)
	}
	if c := s.Find("nope"); c != nil {
		t.Fatalf("expected nil for unknown id, got %+v", c)
	}
}
