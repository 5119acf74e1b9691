package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats handles GET /api/dashboard/stats
func (s *Server) GetDashboardStats(c *fiber.Ctx) error {
	ctx := c.Context()

	dashboard, err := s.postService.Dashboard(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(dashboard)
}

// GetUpcomingPosts handles GET /api/dashboard/upcoming?limit=N
func (s *Server) GetUpcomingPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	limit := c.QueryInt("limit", 3)
	if limit <= 0 {
		limit = 3
	}

	posts, err := s.postService.UpcomingPosts(ctx, limit)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}

// GetCalendarDay handles GET /api/calendar/day?date=YYYY-MM-DD
func (s *Server) GetCalendarDay(c *fiber.Ctx) error {
	ctx := c.Context()

	day, err := parseDay(c, "date")
	if err != nil {
		return respondAppError(c, err)
	}

	posts, err := s.postService.PostsOnDay(ctx, day)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}
