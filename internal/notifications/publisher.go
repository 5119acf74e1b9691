package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"postdeck/internal/observability"
)

// EventPostsUpdated tells listening views to re-read the post collection.
const EventPostsUpdated = "postsUpdated"

// Broadcaster is the narrow interface services use to announce data
// changes. Delivery is fire-and-forget, best effort, same tick.
type Broadcaster interface {
	PostsUpdated(ctx context.Context)
}

// Event is the wire format of a dashboard event.
type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// Publisher routes events through Redis when available so every server
// process sees them, and straight to the local hub otherwise.
type Publisher struct {
	notifier *Notifier
	hub      *Hub
}

// NewPublisher wires a Publisher to the given notifier and hub. notifier
// may wrap a nil Redis client.
func NewPublisher(notifier *Notifier, hub *Hub) *Publisher {
	return &Publisher{notifier: notifier, hub: hub}
}

// PostsUpdated broadcasts a postsUpdated event. Errors are logged, never
// returned; a missed refresh event must not fail the mutation that caused
// it.
func (p *Publisher) PostsUpdated(ctx context.Context) {
	p.emit(ctx, Event{Type: EventPostsUpdated, At: time.Now().UTC()})
}

func (p *Publisher) emit(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.ErrorContext(ctx, "marshal event", "error", err)
		return
	}
	if p.notifier != nil && p.notifier.rdb != nil {
		if err := p.notifier.Publish(ctx, string(payload)); err != nil {
			slog.WarnContext(ctx, "publish event to redis", "error", err)
		}
		// The hub receives it back through its subscription.
		observability.EventsPublished.WithLabelValues(ev.Type, "redis").Inc()
		return
	}
	if p.hub != nil {
		p.hub.Broadcast(payload)
		observability.EventsPublished.WithLabelValues(ev.Type, "local").Inc()
	}
}

// NopBroadcaster discards all events. Useful in tests and one-shot
// commands.
type NopBroadcaster struct{}

// PostsUpdated implements Broadcaster.
func (NopBroadcaster) PostsUpdated(context.Context) {}
