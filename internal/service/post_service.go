// Package service holds the business rules: input validation, lifecycle
// orchestration, and the dashboard read models. Handlers stay thin; every
// guard lives here so it holds for every caller, not just the web client.
package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"postdeck/internal/lifecycle"
	"postdeck/internal/models"
	"postdeck/internal/notifications"
	"postdeck/internal/repository"
	"postdeck/internal/stats"

	"github.com/google/uuid"
)

// PostService owns the post collection's write paths and derived reads.
type PostService struct {
	postRepo     repository.PostRepository
	platformRepo repository.PlatformRepository
	events       notifications.Broadcaster
	now          func() time.Time
}

// NewPostService creates a new post service.
func NewPostService(
	postRepo repository.PostRepository,
	platformRepo repository.PlatformRepository,
	events notifications.Broadcaster,
) *PostService {
	if events == nil {
		events = notifications.NopBroadcaster{}
	}
	return &PostService{
		postRepo:     postRepo,
		platformRepo: platformRepo,
		events:       events,
		now:          time.Now,
	}
}

// CreatePostInput carries the composer's payload. ScheduledDay and
// ScheduledTime ("HH:MM") are combined into one timestamp for scheduled
// posts; both are required then.
type CreatePostInput struct {
	Content       string
	Status        models.PostStatus
	Platforms     []string
	ScheduledDay  *time.Time
	ScheduledTime string
}

// UpdatePostInput is a partial patch; nil fields are left untouched.
type UpdatePostInput struct {
	Content       *string
	Status        *models.PostStatus
	Platforms     []string
	ScheduledDay  *time.Time
	ScheduledTime string
}

// CreatePost validates the input, derives hashtags, applies the initial
// lifecycle state, and persists the post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	status := in.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid status")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Platforms) == 0 {
		return nil, models.NewValidationError("At least one platform is required")
	}
	if err := s.checkPlatforms(ctx, in.Content, in.Platforms); err != nil {
		return nil, err
	}

	now := s.now()
	post := &models.Post{
		ID:        uuid.NewString(),
		Content:   in.Content,
		Status:    models.PostStatusDraft,
		Platforms: in.Platforms,
		Hashtags:  models.ExtractHashtags(in.Content),
		CreatedAt: now,
	}

	switch status {
	case models.PostStatusScheduled:
		at, err := s.scheduledTimestamp(in.ScheduledDay, in.ScheduledTime)
		if err != nil {
			return nil, err
		}
		if err := lifecycle.Schedule(post, at, now); err != nil {
			return nil, err
		}
	case models.PostStatusPublished:
		if err := lifecycle.Publish(post, now); err != nil {
			return nil, err
		}
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.events.PostsUpdated(ctx)
	return post, nil
}

// UpdatePost merges a partial patch into an existing post. A status patch
// must be a legal lifecycle transition; publishing stamps publishedDate and
// keeps any scheduledDate. A patch carrying schedule fields without a status
// change reschedules the post to the new timestamp. Hashtags are not
// re-derived on content edits.
func (s *PostService) UpdatePost(ctx context.Context, id string, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Content != nil {
		if *in.Content == "" {
			return nil, models.NewValidationError("Content is required")
		}
		post.Content = *in.Content
	}
	if in.Platforms != nil {
		if len(in.Platforms) == 0 {
			return nil, models.NewValidationError("At least one platform is required")
		}
		post.Platforms = in.Platforms
	}
	if in.Content != nil || in.Platforms != nil {
		if err := s.checkPlatforms(ctx, post.Content, post.Platforms); err != nil {
			return nil, err
		}
	}

	switch {
	case in.Status != nil && *in.Status != post.Status:
		now := s.now()
		switch *in.Status {
		case models.PostStatusScheduled:
			at, err := s.scheduledTimestamp(in.ScheduledDay, in.ScheduledTime)
			if err != nil {
				return nil, err
			}
			if err := lifecycle.Schedule(post, at, now); err != nil {
				return nil, err
			}
		case models.PostStatusPublished:
			if err := lifecycle.Publish(post, now); err != nil {
				return nil, err
			}
		default:
			return nil, models.NewValidationError(
				fmt.Sprintf("Cannot move a %s post back to %s", post.Status, *in.Status))
		}
	case in.ScheduledDay != nil || in.ScheduledTime != "":
		// No status change, but the patch carries schedule fields. The
		// existing timestamp is replaced, with the same future guard as the
		// initial scheduling.
		at, err := s.scheduledTimestamp(in.ScheduledDay, in.ScheduledTime)
		if err != nil {
			return nil, err
		}
		if err := lifecycle.Schedule(post, at, s.now()); err != nil {
			return nil, err
		}
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	s.events.PostsUpdated(ctx)
	return post, nil
}

// PublishPost transitions a draft or scheduled post to published now.
func (s *PostService) PublishPost(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.Publish(post, s.now()); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	s.events.PostsUpdated(ctx)
	return post, nil
}

// DeletePost removes the post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.PostsUpdated(ctx)
	return nil
}

// GetPost returns one post by id.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns the collection most-recently-created first, optionally
// filtered to one status.
func (s *PostService) ListPosts(ctx context.Context, status models.PostStatus) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return posts, nil
	}
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid status filter")
	}
	filtered := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// scheduledTimestamp enforces the date+time pairing rule for scheduling.
func (s *PostService) scheduledTimestamp(day *time.Time, clock string) (time.Time, error) {
	if day == nil {
		return time.Time{}, models.NewValidationError("A calendar date is required to schedule a post")
	}
	return lifecycle.CombineDateTime(*day, clock)
}

// checkPlatforms verifies every targeted platform exists and that the
// content fits its character limit. Limits are counted in runes.
func (s *PostService) checkPlatforms(ctx context.Context, content string, platformIDs []string) error {
	length := utf8.RuneCountInString(content)
	for _, id := range platformIDs {
		platform, err := s.platformRepo.GetByID(ctx, id)
		if err != nil {
			return models.NewValidationError(fmt.Sprintf("Unknown platform %q", id))
		}
		if length > platform.CharacterLimit {
			return models.NewValidationError(fmt.Sprintf(
				"Content exceeds the %d character limit for %s", platform.CharacterLimit, platform.Name))
		}
	}
	return nil
}

// DashboardStats is the aggregate read model behind the dashboard header
// cards. Optional values are pointers so "no data" is distinguishable from
// zero.
type DashboardStats struct {
	Breakdown          stats.StatusBreakdown `json:"breakdown"`
	NextScheduled      *models.Post          `json:"nextScheduled,omitempty"`
	ScheduledNext24h   int                   `json:"scheduledNext24h"`
	HoursSincePublish  *int                  `json:"hoursSincePublish,omitempty"`
	OldestDraftAgeDays *int                  `json:"oldestDraftAgeDays,omitempty"`
	Upcoming           []*models.Post        `json:"upcoming"`
	PlatformBreakdown  []stats.PlatformCount `json:"platformBreakdown"`
	ConnectedPlatforms int                   `json:"connectedPlatforms"`
	TotalPlatforms     int                   `json:"totalPlatforms"`
	TotalReach         int                   `json:"totalReach"`
	AvgReachPerPost    int                   `json:"avgReachPerPost"`
	ReachGrowthPct     int                   `json:"reachGrowthPct"`
}

// Demo reach numbers matching the mocked analytics.
const (
	avgReachPerPublishedPost = 2847
	reachGrowthPct           = 12
)

// upcomingDisplayCount is how many upcoming posts the dashboard shows.
const upcomingDisplayCount = 3

// Dashboard recomputes every derived statistic from the current
// collections. Nothing is cached; the collections are small.
func (s *PostService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	platforms, err := s.platformRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := &DashboardStats{
		Breakdown:         stats.CountByStatus(posts),
		NextScheduled:     stats.NextScheduled(posts, now),
		ScheduledNext24h:  stats.ScheduledWithin(posts, now, 24*time.Hour),
		Upcoming:          stats.Upcoming(posts, upcomingDisplayCount),
		PlatformBreakdown: stats.PostPlatformBreakdown(posts),
		TotalPlatforms:    len(platforms),
	}
	if hours, ok := stats.HoursSincePublished(posts, now); ok {
		out.HoursSincePublish = &hours
	}
	if days, ok := stats.OldestDraftAgeDays(posts, now); ok {
		out.OldestDraftAgeDays = &days
	}
	for _, p := range platforms {
		if p.Connected {
			out.ConnectedPlatforms++
		}
	}
	out.TotalReach = out.Breakdown.Published * avgReachPerPublishedPost
	if out.Breakdown.Published > 0 {
		out.AvgReachPerPost = out.TotalReach / out.Breakdown.Published
	}
	out.ReachGrowthPct = reachGrowthPct
	return out, nil
}

// UpcomingPosts returns the next scheduled posts for the calendar sidebar.
func (s *PostService) UpcomingPosts(ctx context.Context, limit int) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Upcoming(posts, limit), nil
}

// PostsOnDay returns posts landing on the given calendar day, for the
// calendar grid.
func (s *PostService) PostsOnDay(ctx context.Context, day time.Time) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.PostsOnDay(posts, day), nil
}
