package models

import "time"

// MessageSentiment is a coarse sentiment label attached to inbox messages.
type MessageSentiment string

const (
	SentimentPositive MessageSentiment = "positive"
	SentimentNeutral  MessageSentiment = "neutral"
	SentimentNegative MessageSentiment = "negative"
)

// Message is an inbound interaction from a platform audience member.
// The inbox is backed by demo data; messages reference platforms by id
// the same way posts do.
type Message struct {
	ID         string           `json:"id"`
	Platform   string           `json:"platform"`
	User       string           `json:"user"`
	Avatar     string           `json:"avatar"`
	Body       string           `json:"body"`
	ReceivedAt time.Time        `json:"receivedAt"`
	Unread     bool             `json:"unread"`
	Starred    bool             `json:"starred"`
	Archived   bool             `json:"archived"`
	Sentiment  MessageSentiment `json:"sentiment"`
	Replies    []MessageReply   `json:"replies,omitempty"`
}

// MessageReply is an outbound reply attached to a message thread. Replies
// stay in memory with the message; nothing is delivered to the platform.
type MessageReply struct {
	Body   string    `json:"body"`
	SentAt time.Time `json:"sentAt"`
}
