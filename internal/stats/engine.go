// Package stats computes derived dashboard statistics from the post
// collection. Every function is pure, takes the current time as an explicit
// parameter, and recomputes from scratch on each call; the collections are
// small enough that nothing is cached.
package stats

import (
	"math"
	"sort"
	"time"

	"postdeck/internal/models"
)

// StatusBreakdown holds per-status counts and rounded percentages.
// Percentages are all zero when the collection is empty.
type StatusBreakdown struct {
	Total        int `json:"total"`
	Draft        int `json:"draft"`
	Scheduled    int `json:"scheduled"`
	Published    int `json:"published"`
	DraftPct     int `json:"draftPct"`
	ScheduledPct int `json:"scheduledPct"`
	PublishedPct int `json:"publishedPct"`
}

// CountByStatus tallies posts per status and derives percentages.
func CountByStatus(posts []*models.Post) StatusBreakdown {
	b := StatusBreakdown{Total: len(posts)}
	for _, p := range posts {
		switch p.Status {
		case models.PostStatusDraft:
			b.Draft++
		case models.PostStatusScheduled:
			b.Scheduled++
		case models.PostStatusPublished:
			b.Published++
		}
	}
	if b.Total > 0 {
		b.DraftPct = percent(b.Draft, b.Total)
		b.ScheduledPct = percent(b.Scheduled, b.Total)
		b.PublishedPct = percent(b.Published, b.Total)
	}
	return b
}

func percent(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}

// NextScheduled returns the scheduled post with the earliest future
// scheduledDate, or nil if none. On equal timestamps the post appearing
// first in the input order wins.
func NextScheduled(posts []*models.Post, now time.Time) *models.Post {
	var next *models.Post
	for _, p := range posts {
		if p.Status != models.PostStatusScheduled || p.ScheduledDate == nil {
			continue
		}
		if !p.ScheduledDate.After(now) {
			continue
		}
		if next == nil || p.ScheduledDate.Before(*next.ScheduledDate) {
			next = p
		}
	}
	return next
}

// ScheduledWithin counts scheduled posts whose date falls in (now, now+window].
func ScheduledWithin(posts []*models.Post, now time.Time, window time.Duration) int {
	deadline := now.Add(window)
	count := 0
	for _, p := range posts {
		if p.Status != models.PostStatusScheduled || p.ScheduledDate == nil {
			continue
		}
		d := *p.ScheduledDate
		if d.After(now) && !d.After(deadline) {
			count++
		}
	}
	return count
}

// LastPublished returns the published post with the latest publishedDate,
// or nil if none carry one.
func LastPublished(posts []*models.Post) *models.Post {
	var last *models.Post
	for _, p := range posts {
		if p.Status != models.PostStatusPublished || p.PublishedDate == nil {
			continue
		}
		if last == nil || p.PublishedDate.After(*last.PublishedDate) {
			last = p
		}
	}
	return last
}

// HoursSincePublished returns the whole hours elapsed since the most recent
// publish, and false when nothing has been published.
func HoursSincePublished(posts []*models.Post, now time.Time) (int, bool) {
	last := LastPublished(posts)
	if last == nil {
		return 0, false
	}
	return int(math.Floor(now.Sub(*last.PublishedDate).Hours())), true
}

// OldestDraft returns the draft with the earliest creation time, or nil.
func OldestDraft(posts []*models.Post) *models.Post {
	var oldest *models.Post
	for _, p := range posts {
		if p.Status != models.PostStatusDraft {
			continue
		}
		if oldest == nil || p.CreatedAt.Before(oldest.CreatedAt) {
			oldest = p
		}
	}
	return oldest
}

// OldestDraftAgeDays returns the whole-day age of the oldest draft, and
// false when there are no drafts.
func OldestDraftAgeDays(posts []*models.Post, now time.Time) (int, bool) {
	oldest := OldestDraft(posts)
	if oldest == nil {
		return 0, false
	}
	return int(math.Floor(now.Sub(oldest.CreatedAt).Hours() / 24)), true
}

// Upcoming returns scheduled posts that carry a date, ascending by
// scheduledDate, truncated to limit. The sort is stable so list order breaks
// timestamp ties.
func Upcoming(posts []*models.Post, limit int) []*models.Post {
	upcoming := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == models.PostStatusScheduled && p.ScheduledDate != nil {
			upcoming = append(upcoming, p)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledDate.Before(*upcoming[j].ScheduledDate)
	})
	if limit >= 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// PlatformCount is one row of a per-platform breakdown.
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
	Pct      int    `json:"pct"`
}

// PlatformBreakdown tallies items per platform id and derives each
// platform's percentage of the total item count. Rows come back sorted by
// descending count, then platform id for determinism.
func PlatformBreakdown(platformIDs []string) []PlatformCount {
	counts := make(map[string]int)
	for _, id := range platformIDs {
		counts[id]++
	}
	total := len(platformIDs)
	rows := make([]PlatformCount, 0, len(counts))
	for id, n := range counts {
		row := PlatformCount{Platform: id, Count: n}
		if total > 0 {
			row.Pct = percent(n, total)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Platform < rows[j].Platform
	})
	return rows
}

// PostPlatformBreakdown flattens each post's platform targets into a
// per-platform breakdown. A post targeting two platforms counts once for
// each.
func PostPlatformBreakdown(posts []*models.Post) []PlatformCount {
	var ids []string
	for _, p := range posts {
		ids = append(ids, p.Platforms...)
	}
	return PlatformBreakdown(ids)
}

// PostsOnDay returns posts whose scheduledDate (else publishedDate) falls on
// the same calendar day as day. Posts with neither date are excluded.
func PostsOnDay(posts []*models.Post, day time.Time) []*models.Post {
	var out []*models.Post
	for _, p := range posts {
		d := p.ScheduledDate
		if d == nil {
			d = p.PublishedDate
		}
		if d == nil {
			continue
		}
		y1, m1, d1 := d.Date()
		y2, m2, d2 := day.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			out = append(out, p)
		}
	}
	return out
}
