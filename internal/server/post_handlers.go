package server

import (
	"time"

	"postdeck/internal/models"
	"postdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Content       string     `json:"content"`
		Status        string     `json:"status"`
		Platforms     []string   `json:"platforms"`
		ScheduledDay  *time.Time `json:"scheduledDay,omitempty"`
		ScheduledTime string     `json:"scheduledTime,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Content:       req.Content,
		Status:        models.PostStatus(req.Status),
		Platforms:     req.Platforms,
		ScheduledDay:  req.ScheduledDay,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts with an optional ?status= filter
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	status := models.PostStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid status filter"))
	}

	posts, err := s.postService.ListPosts(ctx, status)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	post, err := s.postService.GetPost(ctx, id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	var req struct {
		Content       *string    `json:"content,omitempty"`
		Status        *string    `json:"status,omitempty"`
		Platforms     []string   `json:"platforms,omitempty"`
		ScheduledDay  *time.Time `json:"scheduledDay,omitempty"`
		ScheduledTime string     `json:"scheduledTime,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdatePostInput{
		Content:       req.Content,
		Platforms:     req.Platforms,
		ScheduledDay:  req.ScheduledDay,
		ScheduledTime: req.ScheduledTime,
	}
	if req.Status != nil {
		status := models.PostStatus(*req.Status)
		in.Status = &status
	}

	post, err := s.postService.UpdatePost(ctx, id, in)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(post)
}

// PublishPost handles POST /api/posts/:id/publish
func (s *Server) PublishPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	post, err := s.postService.PublishPost(ctx, id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	id := c.Params("id")

	if err := s.postService.DeletePost(ctx, id); err != nil {
		return respondAppError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
