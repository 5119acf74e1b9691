package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"two tags", "Hello #world #test", []string{"#world", "#test"}},
		{"no tags", "plain content", nil},
		{"tag with digits", "launch day #day1", []string{"#day1"}},
		{"bare hash ignored", "just a # sign", nil},
		{"adjacent punctuation", "big news! #launch, more soon", []string{"#launch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractHashtags(tt.content))
		})
	}
}

func TestPostStatusValid(t *testing.T) {
	assert.True(t, PostStatusDraft.Valid())
	assert.True(t, PostStatusScheduled.Valid())
	assert.True(t, PostStatusPublished.Valid())
	assert.False(t, PostStatus("archived").Valid())
	assert.False(t, PostStatus("").Valid())
}

func TestPostJSONRoundTrip(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 14, 30, 0, 123000000, time.UTC)
	likes := 42
	post := &Post{
		ID:            "post-1",
		Content:       "Hello #world",
		Status:        PostStatusScheduled,
		ScheduledDate: &scheduled,
		Platforms:     []string{"twitter"},
		Hashtags:      []string{"#world"},
		Likes:         &likes,
		CreatedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(post)
	require.NoError(t, err)

	var decoded Post
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, post.ID, decoded.ID)
	assert.Equal(t, post.Status, decoded.Status)
	require.NotNil(t, decoded.ScheduledDate)
	// Sub-second precision survives the round trip.
	assert.True(t, decoded.ScheduledDate.Equal(scheduled))
	assert.Nil(t, decoded.PublishedDate)
	require.NotNil(t, decoded.Likes)
	assert.Equal(t, likes, *decoded.Likes)
	assert.True(t, decoded.CreatedAt.Equal(post.CreatedAt))
}

func TestPostJSONOmitsUnsetDates(t *testing.T) {
	data, err := json.Marshal(&Post{ID: "draft-1", Status: PostStatusDraft})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "scheduledDate")
	assert.NotContains(t, string(data), "publishedDate")
	assert.NotContains(t, string(data), "likes")
}

func TestTargetsPlatform(t *testing.T) {
	p := &Post{Platforms: []string{"twitter", "linkedin"}}

	assert.True(t, p.TargetsPlatform("twitter"))
	assert.False(t, p.TargetsPlatform("instagram"))
}
