package seed

import (
	"testing"
	"time"

	"postdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatforms(t *testing.T) {
	platforms := Platforms()
	require.Len(t, platforms, 7)

	// Fixed registry order.
	assert.Equal(t, "twitter", platforms[0].ID)
	assert.Equal(t, "instagram", platforms[1].ID)

	ids := make(map[string]bool)
	for _, p := range platforms {
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.CharacterLimit)
		assert.False(t, ids[p.ID], "duplicate platform id %s", p.ID)
		ids[p.ID] = true
	}
}

func TestPlatforms_ReturnsFreshCopies(t *testing.T) {
	first := Platforms()
	first[0].Connected = !first[0].Connected

	second := Platforms()
	assert.NotEqual(t, first[0].Connected, second[0].Connected)
}

func TestPosts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	posts := Posts(now)
	require.Len(t, posts, 9)

	counts := map[models.PostStatus]int{}
	registry := map[string]bool{}
	for _, p := range Platforms() {
		registry[p.ID] = true
	}

	for _, p := range posts {
		counts[p.Status]++
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Content)
		require.NotEmpty(t, p.Platforms)
		for _, id := range p.Platforms {
			assert.True(t, registry[id], "unknown platform %s", id)
		}

		switch p.Status {
		case models.PostStatusPublished:
			require.NotNil(t, p.PublishedDate)
			assert.NotNil(t, p.Likes)
			assert.NotNil(t, p.Views)
		case models.PostStatusScheduled:
			require.NotNil(t, p.ScheduledDate)
			assert.True(t, p.ScheduledDate.After(now))
			assert.Nil(t, p.PublishedDate)
			assert.Nil(t, p.Likes)
		case models.PostStatusDraft:
			assert.Nil(t, p.ScheduledDate)
			assert.Nil(t, p.PublishedDate)
		}
	}

	assert.Equal(t, 4, counts[models.PostStatusPublished])
	assert.Equal(t, 3, counts[models.PostStatusScheduled])
	assert.Equal(t, 2, counts[models.PostStatusDraft])
}

func TestMessages(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	messages := Messages(now)
	require.NotEmpty(t, messages)

	for _, m := range messages {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Platform)
		assert.NotEmpty(t, m.User)
		assert.NotEmpty(t, m.Body)
		assert.False(t, m.ReceivedAt.After(now))
	}
}

func TestEngagementSplit(t *testing.T) {
	total := 0
	for _, slice := range EngagementSplit() {
		total += slice.Value
	}
	assert.Equal(t, 10548, total)
}
