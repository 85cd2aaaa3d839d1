package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedMember creates a member with the default cadence.
// Returns a filled domain.Member.
func SeedMember(t *testing.T, pool *pgxpool.Pool) domain.Member {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	member := domain.Member{
		ID:                  uuid.New(),
		Name:                "Test Member " + suffix,
		MeetingIntervalDays: domain.DefaultMeetingIntervalDays,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO members (id, name, meeting_interval_days, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		member.ID, member.Name, member.MeetingIntervalDays, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember insert: %v", err)
	}

	return member
}

// SeedMeeting creates a meeting for the member on the given date.
// Returns a filled domain.Meeting without children.
func SeedMeeting(t *testing.T, pool *pgxpool.Pool, memberID uuid.UUID, date time.Time) domain.Meeting {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	meeting := domain.Meeting{
		ID:        uuid.New(),
		MemberID:  memberID,
		Date:      date.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meetings (id, member_id, meeting_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		meeting.ID, meeting.MemberID, meeting.Date, meeting.CreatedAt, meeting.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeeting insert: %v", err)
	}

	return meeting
}

// SeedTopic creates a topic attached to the meeting.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, meetingID uuid.UUID, sortOrder int) domain.Topic {
	t.Helper()
	ctx := context.Background()

	topic := domain.Topic{
		ID:        uuid.New(),
		MeetingID: meetingID,
		Category:  domain.TopicCategoryWorkProgress,
		Title:     "Topic " + uniqueSuffix(),
		SortOrder: sortOrder,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, meeting_id, category, title, notes, sort_order, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		topic.ID, topic.MeetingID, string(topic.Category), topic.Title, topic.Notes, topic.SortOrder, topic.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert: %v", err)
	}

	return topic
}

// SeedActionItem creates a TODO action item for the member, optionally
// originating from a meeting (meetingID may be uuid.Nil for none).
func SeedActionItem(t *testing.T, pool *pgxpool.Pool, memberID, meetingID uuid.UUID, sortOrder int) domain.ActionItem {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.ActionItem{
		ID:        uuid.New(),
		MemberID:  memberID,
		Title:     "Action " + uniqueSuffix(),
		Status:    domain.ActionItemStatusTodo,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if meetingID != uuid.Nil {
		item.MeetingID = &meetingID
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO action_items (id, member_id, meeting_id, title, status, sort_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.MemberID, item.MeetingID, item.Title, string(item.Status), item.SortOrder, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedActionItem insert: %v", err)
	}

	return item
}
