package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetAnalytics handles GET /api/analytics
func (s *Server) GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(s.analyticsService.Report())
}
