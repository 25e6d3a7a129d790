// Package notify carries user-facing status notifications from the core
// to whatever presents them (the TUI renders a toast stack).
package notify

import "time"

// Severity classifies a notification.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notification is one user-facing message.
type Notification struct {
	Severity    Severity
	Message     string
	AutoDismiss time.Duration
}

// Sink accepts notifications. Implementations must be safe to call from
// within the event loop; they must not block.
type Sink interface {
	Notify(n Notification)
}

// Queue is a Sink that buffers notifications until the presenter drains
// them. The TUI drains it once per Update pass.
type Queue struct {
	pending []Notification
}

// NewQueue creates an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Notify implements Sink.
func (q *Queue) Notify(n Notification) {
	if n.AutoDismiss == 0 {
		n.AutoDismiss = 3 * time.Second
	}
	q.pending = append(q.pending, n)
}

// Drain returns buffered notifications and empties the queue.
func (q *Queue) Drain() []Notification {
	out := q.pending
	q.pending = nil
	return out
}

var _ Sink = (*Queue)(nil)
