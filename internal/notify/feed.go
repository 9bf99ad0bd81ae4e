// Package notify keeps the learner's notification feed and fans new
// entries out to live subscribers (the websocket stream). The feed is
// populated by the transport layer; the progression engine itself
// never publishes.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification is one feed entry.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "success", "info", "warning"
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Feed is an in-memory notification feed with subscriber fan-out.
type Feed struct {
	mu          sync.RWMutex
	entries     []Notification
	subscribers map[string]chan Notification
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{subscribers: make(map[string]chan Notification)}
}

// Publish appends a notification and delivers it to every subscriber.
// Slow subscribers are skipped rather than blocked on.
func (f *Feed) Publish(kind, title, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	f.mu.Lock()
	f.entries = append(f.entries, n)
	for id, ch := range f.subscribers {
		select {
		case ch <- n:
		default:
			slog.Warn("dropping notification for slow subscriber", "subscriber", id)
		}
	}
	f.mu.Unlock()

	return n
}

// List returns the feed newest-first.
func (f *Feed) List() []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Notification, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	return out
}

// MarkRead marks one notification read. Unknown IDs are ignored.
func (f *Feed) MarkRead(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Read = true
			return
		}
	}
}

// UnreadCount returns the number of unread notifications.
func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, e := range f.entries {
		if !e.Read {
			n++
		}
	}
	return n
}

// Subscribe registers a live listener. The returned channel receives
// every notification published after the call; cancel removes it.
func (f *Feed) Subscribe() (<-chan Notification, func()) {
	id := uuid.NewString()
	ch := make(chan Notification, 16)

	f.mu.Lock()
	f.subscribers[id] = ch
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		delete(f.subscribers, id)
		f.mu.Unlock()
	}
	return ch, cancel
}
