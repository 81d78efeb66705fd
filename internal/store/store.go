package store

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"groq-chat/internal/kv"
	"groq-chat/internal/llm"
)

// StorageKey is the fixed namespace under which the conversation list is
// persisted.
const StorageKey = "groq-chat-conversations"

const envelopeVersion = 1

// Conversation is an ordered, append-only message sequence. Messages are
// never reordered or deleted; the title changes at most once after creation.
type Conversation struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []llm.Message `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
}

// envelope is the persisted schema. A version mismatch on load is treated
// the same as malformed data: no history.
type envelope struct {
	Version       int             `json:"version"`
	Conversations []*Conversation `json:"conversations"`
}

// Store holds the in-memory conversation list (most-recently-created first)
// and its active id, and writes through to durable key-value persistence.
// It is driven from a single logical thread of control; see session.Exchange.
type Store struct {
	kv     kv.Store
	logger *zap.Logger

	conversations []*Conversation
	activeID      string
}

func New(persistence kv.Store, logger *zap.Logger) *Store {
	return &Store{kv: persistence, logger: logger}
}

// Load reads persisted state. Missing or malformed data degrades to an
// empty store; it never returns an error to the caller. A non-empty load
// selects the most recent conversation as active.
func (s *Store) Load() {
	s.conversations = nil
	s.activeID = ""

	raw, found, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Warn("cannot load conversations", zap.Error(err))
		return
	}
	if !found {
		return
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		s.logger.Warn("malformed conversation data, starting fresh", zap.Error(err))
		return
	}
	if env.Version != envelopeVersion {
		s.logger.Warn("unsupported conversation schema, starting fresh",
			zap.Int("version", env.Version))
		return
	}

	s.conversations = env.Conversations
	if len(s.conversations) > 0 {
		s.activeID = s.conversations[0].ID
	}
}

// Save serializes the full conversation list. Persistence failure is logged
// and swallowed: it must never block the in-memory flow.
func (s *Store) Save() {
	raw, err := json.Marshal(envelope{
		Version:       envelopeVersion,
		Conversations: s.conversations,
	})
	if err != nil {
		s.logger.Warn("cannot serialize conversations", zap.Error(err))
		return
	}
	if err := s.kv.Set(StorageKey, raw); err != nil {
		s.logger.Warn("cannot save conversations", zap.Error(err))
	}
}

// List returns conversations in store order, most-recently-created first.
func (s *Store) List() []*Conversation {
	return s.conversations
}

func (s *Store) Find(id string) *Conversation {
	for _, c := range s.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Active resolves the active conversation, or nil when the store is empty
// or the active id is stale.
func (s *Store) Active() *Conversation {
	if s.activeID == "" {
		return nil
	}
	return s.Find(s.activeID)
}

func (s *Store) ActiveID() string {
	return s.activeID
}

func (s *Store) SetActive(id string) {
	s.activeID = id
}

// InsertFront adds a conversation at the head of the list so List stays in
// most-recently-created-first order.
func (s *Store) InsertFront(c *Conversation) {
	s.conversations = append([]*Conversation{c}, s.conversations...)
}

func (s *Store) Len() int {
	return len(s.conversations)
}
