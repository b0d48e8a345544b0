// Package notify holds user-facing notices until the console picks them up.
package notify

import (
	"sync"
	"time"
)

// Level classifies a notice.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is one non-blocking message shown to the operator.
type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Inbox is a bounded FIFO; once full the oldest notice is dropped.
type Inbox struct {
	mu      sync.Mutex
	notices []Notice
	limit   int
}

// NewInbox creates an inbox holding at most limit notices.
func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = 50
	}
	return &Inbox{limit: limit}
}

// Push appends a notice.
func (i *Inbox) Push(n Notice) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.notices) >= i.limit {
		i.notices = append(i.notices[:0], i.notices[len(i.notices)-i.limit+1:]...)
	}
	i.notices = append(i.notices, n)
}

// Drain returns every pending notice, oldest first, and empties the inbox.
func (i *Inbox) Drain() []Notice {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := i.notices
	i.notices = nil
	if out == nil {
		return []Notice{}
	}
	return out
}

// Len reports how many notices are pending.
func (i *Inbox) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.notices)
}
