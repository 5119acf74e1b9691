// Package lifecycle implements the post state machine: which status
// transitions are legal and which timestamps each transition stamps.
// Everything here is a pure function; the current time is always passed in.
package lifecycle

import (
	"fmt"
	"time"

	"postdeck/internal/models"
)

// CanTransition reports whether moving a post from one status to another is
// legal. Published is terminal. Same-status "transitions" are not
// transitions and return false.
func CanTransition(from, to models.PostStatus) bool {
	switch from {
	case models.PostStatusDraft:
		return to == models.PostStatusScheduled || to == models.PostStatusPublished
	case models.PostStatusScheduled:
		return to == models.PostStatusPublished
	}
	return false
}

// Publish moves a post to published and stamps PublishedDate with now.
// A previously set ScheduledDate is retained so scheduling history
// survives publishing.
func Publish(p *models.Post, now time.Time) error {
	if p.Status == models.PostStatusPublished {
		return models.NewValidationError("Post is already published")
	}
	if !CanTransition(p.Status, models.PostStatusPublished) {
		return models.NewValidationError(fmt.Sprintf("Cannot publish a %s post", p.Status))
	}
	p.Status = models.PostStatusPublished
	t := now
	p.PublishedDate = &t
	return nil
}

// Schedule moves a post to scheduled at the given timestamp. The timestamp
// must be strictly in the future relative to now.
func Schedule(p *models.Post, at, now time.Time) error {
	if p.Status == models.PostStatusPublished {
		return models.NewValidationError("Cannot schedule a published post")
	}
	if !at.After(now) {
		return models.NewValidationError("Scheduled date must be in the future")
	}
	p.Status = models.PostStatusScheduled
	t := at
	p.ScheduledDate = &t
	return nil
}

// CombineDateTime merges a calendar day with a clock time in "HH:MM" form
// into a single timestamp in the day's location. Both parts are required;
// the composer must reject a scheduled post that is missing either.
func CombineDateTime(day time.Time, clock string) (time.Time, error) {
	if clock == "" {
		return time.Time{}, models.NewValidationError("A time of day is required to schedule a post")
	}
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, models.NewValidationError("Time of day must be in HH:MM format")
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		day.Location(),
	), nil
}
