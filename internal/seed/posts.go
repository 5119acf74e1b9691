package seed

import (
	"math/rand"
	"time"

	"postdeck/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

var postTemplates = []string{
	"Behind the scenes look at our office culture 📸 We're hiring! #WorkCulture #Jobs",
	"New product launch announcement! 🚀 Check out what we've been working on #ProductLaunch",
	"Customer success story: how one team achieved 300% growth 📈 #CaseStudy",
	"Weekly roundup of everything shipping this sprint ⚡ #BuildInPublic",
	"What's your favorite productivity hack? Drop it below 👇 #Productivity",
}

// Posts returns a demo post collection: a mix of published, scheduled, and
// draft posts spread around now. The published posts carry engagement
// counters; drafts and scheduled posts do not.
func Posts(now time.Time) []*models.Post {
	r := rand.New(rand.NewSource(now.UnixNano()))
	platformIDs := []string{"twitter", "instagram", "facebook", "linkedin"}

	var posts []*models.Post

	build := func(status models.PostStatus, createdAgo time.Duration) *models.Post {
		content := postTemplates[r.Intn(len(postTemplates))]
		if r.Intn(2) == 0 {
			content = gofakeit.Sentence(8) + " #" + gofakeit.BuzzWord()
		}
		n := 1 + r.Intn(len(platformIDs)-1)
		return &models.Post{
			ID:        uuid.NewString(),
			Content:   content,
			Status:    status,
			Platforms: pickPlatforms(r, platformIDs, n),
			Hashtags:  models.ExtractHashtags(content),
			CreatedAt: now.Add(-createdAgo),
		}
	}

	for i := 0; i < 4; i++ {
		p := build(models.PostStatusPublished, time.Duration(2+i*3)*24*time.Hour)
		published := p.CreatedAt.Add(time.Duration(1+r.Intn(12)) * time.Hour)
		p.PublishedDate = &published
		p.Likes = intp(50 + r.Intn(5000))
		p.Comments = intp(5 + r.Intn(800))
		p.Shares = intp(r.Intn(1200))
		p.Views = intp(1000 + r.Intn(90000))
		posts = append(posts, p)
	}
	for i := 0; i < 3; i++ {
		p := build(models.PostStatusScheduled, time.Duration(i+1)*24*time.Hour)
		at := now.Add(time.Duration(6+i*20) * time.Hour)
		p.ScheduledDate = &at
		posts = append(posts, p)
	}
	for i := 0; i < 2; i++ {
		posts = append(posts, build(models.PostStatusDraft, time.Duration(5+i*9)*24*time.Hour))
	}

	return posts
}

func pickPlatforms(r *rand.Rand, ids []string, n int) []string {
	shuffled := append([]string(nil), ids...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func intp(v int) *int { return &v }

