package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketUpgradeRequired rejects plain HTTP requests to websocket routes.
func (s *Server) WebsocketUpgradeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// WebsocketHandler returns a websocket handler that registers connections
// with the Hub. Connected clients receive dashboard refresh events; incoming
// frames are ignored.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		if s.hub == nil {
			_ = conn.Close()
			return
		}

		client, err := s.hub.Register(conn)
		if err != nil {
			slog.Warn("websocket registration rejected", "error", err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`))
			_ = conn.Close()
			return
		}

		defer s.hub.Unregister(client)

		go client.WritePump()
		client.ReadPump()
	})
}
