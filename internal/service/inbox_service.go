package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"postdeck/internal/models"
	"postdeck/internal/stats"
)

// InboxFilter selects which messages a listing returns.
type InboxFilter string

const (
	InboxFilterAll      InboxFilter = "all"
	InboxFilterUnread   InboxFilter = "unread"
	InboxFilterStarred  InboxFilter = "starred"
	InboxFilterArchived InboxFilter = "archived"
)

// InboxService manages the mocked inbox. Messages live in memory only;
// there is no persistence and no real delivery, matching the demo nature
// of the inbox.
type InboxService struct {
	mu       sync.RWMutex
	messages []*models.Message
}

// NewInboxService creates an inbox preloaded with the given messages.
func NewInboxService(messages []*models.Message) *InboxService {
	return &InboxService{messages: messages}
}

// ListMessages returns messages matching the filter and search query,
// newest first. Archived messages only appear under the archived filter.
func (s *InboxService) ListMessages(filter InboxFilter, query string) []*models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if filter == "" {
		filter = InboxFilterAll
	}
	q := strings.ToLower(query)

	out := make([]*models.Message, 0, len(s.messages))
	for _, m := range s.messages {
		switch filter {
		case InboxFilterUnread:
			if !m.Unread || m.Archived {
				continue
			}
		case InboxFilterStarred:
			if !m.Starred || m.Archived {
				continue
			}
		case InboxFilterArchived:
			if !m.Archived {
				continue
			}
		default:
			if m.Archived {
				continue
			}
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Body), q) &&
			!strings.Contains(strings.ToLower(m.User), q) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out
}

// UnreadCount returns how many non-archived messages are unread.
func (s *InboxService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, m := range s.messages {
		if m.Unread && !m.Archived {
			count++
		}
	}
	return count
}

// ToggleStar flips the starred flag on a message.
func (s *InboxService) ToggleStar(id string) (*models.Message, error) {
	return s.mutate(id, func(m *models.Message) {
		m.Starred = !m.Starred
	})
}

// MarkRead clears the unread flag on a message.
func (s *InboxService) MarkRead(id string) (*models.Message, error) {
	return s.mutate(id, func(m *models.Message) {
		m.Unread = false
	})
}

// Archive hides a message from the main views.
func (s *InboxService) Archive(id string) (*models.Message, error) {
	return s.mutate(id, func(m *models.Message) {
		m.Archived = true
	})
}

// Reply appends a reply to the message's thread and marks it read. Nothing
// is actually delivered to the platform.
func (s *InboxService) Reply(id, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, models.NewValidationError("Reply text is required")
	}
	return s.mutate(id, func(m *models.Message) {
		m.Replies = append(m.Replies, models.MessageReply{Body: body, SentAt: time.Now()})
		m.Unread = false
	})
}

// PlatformBreakdown tallies messages per platform with percentages.
// Archived messages are included; the breakdown describes total volume.
func (s *InboxService) PlatformBreakdown() []stats.PlatformCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		ids = append(ids, m.Platform)
	}
	return stats.PlatformBreakdown(ids)
}

func (s *InboxService) mutate(id string, apply func(*models.Message)) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id {
			apply(m)
			return m, nil
		}
	}
	return nil, models.NewNotFoundError("Message", id)
}

// ReceivedSince counts non-archived messages received after t. The inbox
// header uses this for its "today" badge.
func (s *InboxService) ReceivedSince(t time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, m := range s.messages {
		if !m.Archived && m.ReceivedAt.After(t) {
			count++
		}
	}
	return count
}
