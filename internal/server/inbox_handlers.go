package server

import (
	"postdeck/internal/models"
	"postdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMessages handles GET /api/inbox?filter=...&q=...
func (s *Server) GetMessages(c *fiber.Ctx) error {
	filter := service.InboxFilter(c.Query("filter", string(service.InboxFilterAll)))
	switch filter {
	case service.InboxFilterAll, service.InboxFilterUnread, service.InboxFilterStarred, service.InboxFilterArchived:
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid inbox filter"))
	}

	return c.JSON(s.inboxService.ListMessages(filter, c.Query("q")))
}

// GetUnreadCount handles GET /api/inbox/unread-count
func (s *Server) GetUnreadCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"unread": s.inboxService.UnreadCount()})
}

// GetInboxBreakdown handles GET /api/inbox/breakdown
func (s *Server) GetInboxBreakdown(c *fiber.Ctx) error {
	return c.JSON(s.inboxService.PlatformBreakdown())
}

// StarMessage handles POST /api/inbox/:id/star
func (s *Server) StarMessage(c *fiber.Ctx) error {
	msg, err := s.inboxService.ToggleStar(c.Params("id"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(msg)
}

// ReadMessage handles POST /api/inbox/:id/read
func (s *Server) ReadMessage(c *fiber.Ctx) error {
	msg, err := s.inboxService.MarkRead(c.Params("id"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(msg)
}

// ArchiveMessage handles POST /api/inbox/:id/archive
func (s *Server) ArchiveMessage(c *fiber.Ctx) error {
	msg, err := s.inboxService.Archive(c.Params("id"))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(msg)
}

// ReplyToMessage handles POST /api/inbox/:id/reply
func (s *Server) ReplyToMessage(c *fiber.Ctx) error {
	var req struct {
		Body string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.inboxService.Reply(c.Params("id"), req.Body)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(msg)
}
