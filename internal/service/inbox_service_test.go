package service

import (
	"testing"
	"time"

	"postdeck/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessages(now time.Time) []*models.Message {
	return []*models.Message{
		{ID: "m1", Platform: "twitter", User: "johndoe", Body: "Love the new product!", ReceivedAt: now.Add(-3 * time.Hour), Unread: true},
		{ID: "m2", Platform: "instagram", User: "sarahsmith", Body: "When is the launch?", ReceivedAt: now.Add(-1 * time.Hour), Unread: true, Starred: true},
		{ID: "m3", Platform: "twitter", User: "mikej", Body: "Old thread", ReceivedAt: now.Add(-48 * time.Hour), Archived: true},
		{ID: "m4", Platform: "linkedin", User: "echen", Body: "Great article", ReceivedAt: now.Add(-30 * time.Minute)},
	}
}

func TestListMessages_NewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	msgs := svc.ListMessages(InboxFilterAll, "")
	require.Len(t, msgs, 3)
	assert.Equal(t, "m4", msgs[0].ID)
	assert.Equal(t, "m2", msgs[1].ID)
	assert.Equal(t, "m1", msgs[2].ID)
}

func TestListMessages_Filters(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	unread := svc.ListMessages(InboxFilterUnread, "")
	require.Len(t, unread, 2)

	starred := svc.ListMessages(InboxFilterStarred, "")
	require.Len(t, starred, 1)
	assert.Equal(t, "m2", starred[0].ID)

	archived := svc.ListMessages(InboxFilterArchived, "")
	require.Len(t, archived, 1)
	assert.Equal(t, "m3", archived[0].ID)

	// Empty filter behaves as "all".
	assert.Len(t, svc.ListMessages("", ""), 3)
}

func TestListMessages_Search(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	byBody := svc.ListMessages(InboxFilterAll, "launch")
	require.Len(t, byBody, 1)
	assert.Equal(t, "m2", byBody[0].ID)

	byUser := svc.ListMessages(InboxFilterAll, "JOHNDOE")
	require.Len(t, byUser, 1)
	assert.Equal(t, "m1", byUser[0].ID)

	assert.Empty(t, svc.ListMessages(InboxFilterAll, "nomatch"))
}

func TestUnreadCount(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	assert.Equal(t, 2, svc.UnreadCount())

	_, err := svc.MarkRead("m1")
	require.NoError(t, err)
	assert.Equal(t, 1, svc.UnreadCount())
}

func TestToggleStar(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	msg, err := svc.ToggleStar("m1")
	require.NoError(t, err)
	assert.True(t, msg.Starred)

	msg, err = svc.ToggleStar("m1")
	require.NoError(t, err)
	assert.False(t, msg.Starred)

	_, err = svc.ToggleStar("ghost")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestArchiveHidesFromMainViews(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	_, err := svc.Archive("m2")
	require.NoError(t, err)

	assert.Len(t, svc.ListMessages(InboxFilterAll, ""), 2)
	assert.Empty(t, svc.ListMessages(InboxFilterStarred, ""))
	assert.Len(t, svc.ListMessages(InboxFilterArchived, ""), 2)
}

func TestReply(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	msg, err := svc.Reply("m1", "Thanks for the kind words!")
	require.NoError(t, err)
	// Replying records the reply on the thread and marks it read.
	assert.False(t, msg.Unread)
	require.Len(t, msg.Replies, 1)
	assert.Equal(t, "Thanks for the kind words!", msg.Replies[0].Body)
	assert.False(t, msg.Replies[0].SentAt.IsZero())

	msg, err = svc.Reply("m1", "Following up.")
	require.NoError(t, err)
	assert.Len(t, msg.Replies, 2)

	_, err = svc.Reply("m2", "   ")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestInboxPlatformBreakdown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	rows := svc.PlatformBreakdown()
	require.Len(t, rows, 3)
	assert.Equal(t, "twitter", rows[0].Platform)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 50, rows[0].Pct)
}

func TestReceivedSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewInboxService(testMessages(now))

	assert.Equal(t, 2, svc.ReceivedSince(now.Add(-2*time.Hour)))
	assert.Equal(t, 3, svc.ReceivedSince(now.Add(-24*time.Hour)))
}
