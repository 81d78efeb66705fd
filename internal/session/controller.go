package session

import (
	"strconv"
	"time"

	"groq-chat/internal/llm"
	"groq-chat/internal/store"
)

// Controller owns conversation creation and selection. It mutates the store
// and signals the presentation shell after every mutation.
type Controller struct {
	store  *store.Store
	render Renderer

	now    func() time.Time
	lastID int64
}

func NewController(s *store.Store, render Renderer) *Controller {
	return &Controller{store: s, render: render, now: time.Now}
}

// NewConversation allocates a unique, creation-ordered id, derives a title
// from the seed text (or a time-stamped placeholder without one), inserts
// the conversation at the front of the list, makes it active and persists.
// The new conversation has zero messages.
func (c *Controller) NewConversation(seed string) *store.Conversation {
	ts := c.nextID()
	created := time.UnixMilli(ts)

	title := placeholderTitle(created)
	if seed != "" {
		title = DeriveTitle(seed)
	}

	conv := &store.Conversation{
		ID:        strconv.FormatInt(ts, 10),
		Title:     title,
		Messages:  []llm.Message{},
		CreatedAt: created,
	}
	c.store.InsertFront(conv)
	c.store.SetActive(conv.ID)
	c.store.Save()
	c.render.RenderHistory()
	c.render.RenderMessages()
	return conv
}

// nextID returns a millisecond clock reading, bumped when the clock has not
// advanced (or moved backwards) so ids stay strictly creation-ordered. Ids
// already present in the store are skipped too, so a restart with a skewed
// clock cannot collide with persisted history.
func (c *Controller) nextID() int64 {
	ts := c.now().UnixMilli()
	for {
		if ts <= c.lastID {
			ts = c.lastID + 1
		}
		if c.store.Find(strconv.FormatInt(ts, 10)) == nil {
			break
		}
		ts++
	}
	c.lastID = ts
	return ts
}

// Active returns the active conversation, or nil when the store is empty or
// the active id no longer resolves.
func (c *Controller) Active() *store.Conversation {
	return c.store.Active()
}

// Select makes an existing conversation active. Unknown ids are a silent
// no-op. Selection itself is not persisted: reload always reselects the
// most recent conversation.
func (c *Controller) Select(id string) {
	if c.store.Find(id) == nil {
		return
	}
	c.store.SetActive(id)
	c.render.RenderHistory()
	c.render.RenderMessages()
}
