// Package models contains data structures for the application's domain models.
package models

import (
	"regexp"
	"time"
)

// PostStatus represents the lifecycle state of a post.
type PostStatus string

const (
	// PostStatusDraft indicates a post not yet scheduled or published.
	PostStatusDraft PostStatus = "draft"
	// PostStatusScheduled indicates a post with a committed future publish timestamp.
	PostStatusScheduled PostStatus = "scheduled"
	// PostStatusPublished indicates a post considered delivered.
	PostStatusPublished PostStatus = "published"
)

// Valid reports whether s is one of the three known statuses.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusScheduled, PostStatusPublished:
		return true
	}
	return false
}

// Post is a unit of content targeted at one or more platforms.
// ScheduledDate is set only for posts that have been scheduled (and is
// retained after publishing); PublishedDate is set at the moment of the
// publish transition, never earlier. Engagement counters are present only
// on already-published demo data.
type Post struct {
	ID            string     `json:"id"`
	Content       string     `json:"content"`
	Status        PostStatus `json:"status"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	Platforms     []string   `json:"platforms"`
	Hashtags      []string   `json:"hashtags"`
	Likes         *int       `json:"likes,omitempty"`
	Comments      *int       `json:"comments,omitempty"`
	Shares        *int       `json:"shares,omitempty"`
	Views         *int       `json:"views,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags returns all #word tokens in content, in order of
// appearance. Hashtags are derived once at creation time and are not
// re-derived when content is edited.
func ExtractHashtags(content string) []string {
	return hashtagPattern.FindAllString(content, -1)
}

// TargetsPlatform reports whether the post targets the given platform id.
func (p *Post) TargetsPlatform(platformID string) bool {
	for _, id := range p.Platforms {
		if id == platformID {
			return true
		}
	}
	return false
}
