package notifications

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PublishWithoutRedis(t *testing.T) {
	// Notifier with nil Redis should return nil error (fail-open/noop)
	n := NewNotifier(nil)
	assert.NoError(t, n.Publish(context.Background(), "test payload"))
	assert.NoError(t, n.StartSubscriber(context.Background(), func(string) {}))
}

func TestNotifier_PublishReachesSubscriber(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 1)
	require.NoError(t, n.StartSubscriber(ctx, func(payload string) {
		payloads <- payload
	}))

	require.NoError(t, n.Publish(context.Background(), "hello"))

	select {
	case got := <-payloads:
		assert.Equal(t, "hello", got)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive payload")
	}
}

func TestNotifier_SubscriberStopsOnCancel(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())

	var received int32
	require.NoError(t, n.StartSubscriber(ctx, func(string) {
		atomic.AddInt32(&received, 1)
	}))

	require.NoError(t, n.Publish(context.Background(), "before-cancel"))
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&received) >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)

	require.NoError(t, n.Publish(context.Background(), "after-cancel"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&received))
}

func TestNotifier_SubscriberRecoversFromPanic(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var received int32
	require.NoError(t, n.StartSubscriber(ctx, func(payload string) {
		if atomic.AddInt32(&received, 1) == 1 {
			panic("first message explodes")
		}
	}))

	require.NoError(t, n.Publish(context.Background(), "boom"))
	require.NoError(t, n.Publish(context.Background(), "fine"))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&received) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestPublisher_RoutesThroughRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 1)
	require.NoError(t, n.StartSubscriber(ctx, func(payload string) {
		payloads <- payload
	}))

	p := NewPublisher(n, NewHub())
	p.PostsUpdated(context.Background())

	select {
	case payload := <-payloads:
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(payload), &ev))
		assert.Equal(t, EventPostsUpdated, ev.Type)
		assert.False(t, ev.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("event never reached the subscriber")
	}
}

func TestPublisher_WithoutRedisStaysLocal(t *testing.T) {
	hub := NewHub()
	p := NewPublisher(NewNotifier(nil), hub)

	// No clients are connected; the broadcast must still be a safe no-op.
	p.PostsUpdated(context.Background())
	assert.Equal(t, 0, hub.ClientCount())
}

func TestNopBroadcaster(t *testing.T) {
	NopBroadcaster{}.PostsUpdated(context.Background())
}
