package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"postdeck/internal/observability"

	"github.com/gofiber/websocket/v2"
)

// Max total connections; the dashboard is single-user software, so this is
// generous.
const maxConns = 256

// Hub fans hub-level events out to every connected websocket client.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Name returns a human-readable identifier for this hub.
func (h *Hub) Name() string { return "events hub" }

// Register adds a connection to the hub and returns its Client.
func (h *Hub) Register(conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, errors.New("hub is shut down")
	}
	if len(h.clients) >= maxConns {
		return nil, errors.New("connection limit reached")
	}
	client := newClient(h, conn)
	h.clients[client] = struct{}{}
	observability.WebSocketConnectionsTotal.Inc()
	return client, nil
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		observability.WebSocketConnectionsTotal.Dec()
	}
}

// Broadcast queues payload on every connected client. Clients whose send
// buffer is full are dropped rather than blocking the caller.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.RLock()
	var stale []*Client
	for client := range h.clients {
		select {
		case client.send <- payload:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		slog.Warn("dropping slow websocket client", "hub", h.Name())
		observability.WebSocketBackpressureDrops.Inc()
		h.Unregister(client)
	}
}

// StartWiring subscribes the hub to the notifier's event channel so events
// published by other processes reach local clients. It returns immediately;
// the subscription runs until ctx is cancelled. A nil-Redis notifier is a
// no-op because events are then broadcast in-process.
func (h *Hub) StartWiring(ctx context.Context, n *Notifier) error {
	return n.StartSubscriber(ctx, func(payload string) {
		h.Broadcast([]byte(payload))
	})
}

// Shutdown closes every client connection and rejects new registrations.
func (h *Hub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	slog.Info("shutting down", "hub", h.Name(), "clients", len(h.clients))
	for client := range h.clients {
		close(client.send)
		delete(h.clients, client)
		observability.WebSocketConnectionsTotal.Dec()
	}
	return nil
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
