package notifications

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/redis/go-redis/v9"
)

// eventsChannel is the Redis pub/sub channel dashboard events travel on.
const eventsChannel = "postdeck:events"

// Notifier publishes dashboard events into Redis. All methods are safe to
// call with a nil Redis client; they become no-ops so the server runs
// without Redis.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// Publish sends an event payload to every subscribed process.
func (n *Notifier) Publish(ctx context.Context, payload string) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, eventsChannel, payload).Err()
}

// StartSubscriber subscribes to the events channel and calls onMessage for
// each incoming payload until ctx is cancelled.
func (n *Notifier) StartSubscriber(ctx context.Context, onMessage func(payload string)) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							slog.Error("panic in event subscriber", "panic", r, "stack", string(debug.Stack()))
						}
					}()
					onMessage(msg.Payload)
				}()
			}
		}
	}()

	return nil
}
