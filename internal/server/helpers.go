package server

import (
	"errors"
	"time"

	"postdeck/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondAppError maps an application error to the right HTTP status. Errors
// without a typed code are treated as internal.
func respondAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}

// parseDay parses a query parameter holding a calendar day in YYYY-MM-DD form.
func parseDay(c *fiber.Ctx, param string) (time.Time, error) {
	raw := c.Query(param)
	if raw == "" {
		return time.Time{}, models.NewValidationError(param + " query parameter is required")
	}
	day, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, models.NewValidationError(param + " must be a YYYY-MM-DD date")
	}
	return day, nil
}
