// Package pubsub provides a small generic publish/subscribe broker used to
// feed background events (log lines, file changes) into the Bubble Tea loop.
package pubsub

import "time"

// EventType classifies a published event.
type EventType string

const (
	// LogEvent carries a formatted log entry.
	LogEvent EventType = "log"
	// ChangedEvent signals that a watched resource changed.
	ChangedEvent EventType = "changed"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
