// Package notify delivers toasts raised by a controller.
package notify

import (
	"sync"

	"github.com/debemdeboas/postboard/internal/model"
	"github.com/rs/zerolog"
)

// Queue keeps toasts until the next render drains them.
type Queue struct {
	mu    sync.Mutex
	items []model.Notification
	limit int
}

// NewQueue returns a queue that keeps at most limit toasts, dropping the
// oldest. A limit of zero or less means no limit.
func NewQueue(limit int) *Queue {
	return &Queue{limit: limit}
}

func (q *Queue) Notify(n model.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	if q.limit > 0 && len(q.items) > q.limit {
		q.items = q.items[len(q.items)-q.limit:]
	}
}

// Drain returns the pending toasts, oldest first, and empties the queue.
func (q *Queue) Drain() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

type Notifier interface {
	Notify(n model.Notification)
}

// Multi fans a toast out to every notifier, in order.
type Multi []Notifier

func (m Multi) Notify(n model.Notification) {
	for _, t := range m {
		t.Notify(n)
	}
}

// Log writes toasts to a logger.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Notify(n model.Notification) {
	ev := l.Logger.Info()
	if n.IsError() {
		ev = l.Logger.Warn()
	}
	ev.Str("status", string(n.Status)).Str("description", n.Description).Msg(n.Title)
}
