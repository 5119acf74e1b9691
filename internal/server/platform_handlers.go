package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPlatforms handles GET /api/platforms
func (s *Server) GetPlatforms(c *fiber.Ctx) error {
	ctx := c.Context()

	platforms, err := s.platformService.ListPlatforms(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(platforms)
}

// GetPlatformSummary handles GET /api/platforms/summary
func (s *Server) GetPlatformSummary(c *fiber.Ctx) error {
	ctx := c.Context()

	summary, err := s.platformService.Summary(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(summary)
}

// TogglePlatform handles POST /api/platforms/:id/toggle
func (s *Server) TogglePlatform(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	platform, err := s.platformService.ToggleConnection(ctx, id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(platform)
}
