package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Registration and broadcast only touch the client map and send channels,
// so a nil conn is fine as long as the pumps never start.

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())

	// Unregistering twice is a no-op.
	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()

	a, err := hub.Register(nil)
	require.NoError(t, err)
	b, err := hub.Register(nil)
	require.NoError(t, err)

	hub.Broadcast([]byte("ping"))

	assert.Equal(t, []byte("ping"), <-a.send)
	assert.Equal(t, []byte("ping"), <-b.send)
}

func TestHub_BroadcastDropsSlowClients(t *testing.T) {
	hub := NewHub()

	slow, err := hub.Register(nil)
	require.NoError(t, err)

	// Fill the slow client's buffer completely.
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("fill")
	}

	hub.Broadcast([]byte("overflow"))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_ConnectionLimit(t *testing.T) {
	hub := NewHub()

	for i := 0; i < maxConns; i++ {
		_, err := hub.Register(nil)
		require.NoError(t, err)
	}

	_, err := hub.Register(nil)
	assert.Error(t, err)
	assert.Equal(t, maxConns, hub.ClientCount())
}

func TestHub_ShutdownRejectsNewClients(t *testing.T) {
	hub := NewHub()

	client, err := hub.Register(nil)
	require.NoError(t, err)

	require.NoError(t, hub.Shutdown(context.Background()))
	assert.Equal(t, 0, hub.ClientCount())

	// The client's send channel is closed.
	_, open := <-client.send
	assert.False(t, open)

	_, err = hub.Register(nil)
	assert.Error(t, err)
}
