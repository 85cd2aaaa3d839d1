package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Meeting is a single 1-on-1 between the manager and one member.
// Date may lie in the past or the future (scheduled meeting); StartedAt and
// EndedAt mark an in-progress or finished recording session.
type Meeting struct {
	ID        uuid.UUID
	MemberID  uuid.UUID
	Date      time.Time
	StartedAt *time.Time
	EndedAt   *time.Time
	Mood      *int // 1..5 or absent
	CreatedAt time.Time
	UpdatedAt time.Time

	Topics      []Topic
	ActionItems []ActionItem
}

// Topic is one discussion item within a meeting.
type Topic struct {
	ID        uuid.UUID
	MeetingID uuid.UUID
	Category  TopicCategory
	Title     string
	Notes     string
	SortOrder int
	CreatedAt time.Time
}

// MeetingUpdateParams holds partial-update fields for a meeting row.
// Nil means "don't change".
type MeetingUpdateParams struct {
	Date      *time.Time
	StartedAt *time.Time
	EndedAt   *time.Time
	Mood      *int
}

// SortTopics orders topics by sort order, breaking ties by creation time
// and finally by id so the order is stable across reads.
func SortTopics(topics []Topic) {
	sort.SliceStable(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}
