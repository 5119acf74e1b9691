package seed

import (
	"time"

	"postdeck/internal/models"

	"github.com/google/uuid"
)

// Messages returns the demo inbox. The set mirrors a typical morning:
// a couple of unread mentions, one starred thread, and older read mail.
func Messages(now time.Time) []*models.Message {
	fixed := []struct {
		platform  string
		user      string
		avatar    string
		body      string
		ago       time.Duration
		unread    bool
		starred   bool
		sentiment models.MessageSentiment
	}{
		{"twitter", "@johndoe", "JD", "Love your latest post! When is the next product launch?", 2 * time.Hour, true, false, models.SentimentPositive},
		{"instagram", "@sarahsmith", "SS", "Can you share more details about your office culture?", 5 * time.Hour, true, true, models.SentimentNeutral},
		{"facebook", "Mike Johnson", "MJ", "Interested in the job openings. How can I apply?", 24 * time.Hour, false, false, models.SentimentPositive},
		{"linkedin", "Emily Chen", "EC", "Great insights on your recent article about remote work trends!", 48 * time.Hour, false, true, models.SentimentPositive},
		{"twitter", "@techfan42", "TF", "The new feature broke my workflow, please fix it.", 72 * time.Hour, false, false, models.SentimentNegative},
	}

	out := make([]*models.Message, 0, len(fixed))
	for _, f := range fixed {
		out = append(out, &models.Message{
			ID:         uuid.NewString(),
			Platform:   f.platform,
			User:       f.user,
			Avatar:     f.avatar,
			Body:       f.body,
			ReceivedAt: now.Add(-f.ago),
			Unread:     f.unread,
			Starred:    f.starred,
			Sentiment:  f.sentiment,
		})
	}
	return out
}
