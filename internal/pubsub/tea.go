package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Listener adapts a subscription to the Bubble Tea update loop. Each call to
// Listen yields a command that resolves to the next Event, or nil once the
// subscription ends.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewListener subscribes to broker for the lifetime of ctx.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen returns a command waiting for the next event. Re-issue it after
// every received event to keep listening.
func (l *Listener[T]) Listen() tea.Cmd {
	ctx, ch := l.ctx, l.ch
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}
