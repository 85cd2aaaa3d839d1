package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMeetingIntervalDays is the fallback cadence applied when a member
// has no explicit interval configured.
const DefaultMeetingIntervalDays = 14

// Member is a team member the manager holds periodic 1-on-1s with.
type Member struct {
	ID                  uuid.UUID
	Name                string
	Department          *string
	Position            *string
	MeetingIntervalDays int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IntervalDays returns the configured cadence, falling back to
// DefaultMeetingIntervalDays when the stored value is not positive.
func (m *Member) IntervalDays() int {
	if m.MeetingIntervalDays <= 0 {
		return DefaultMeetingIntervalDays
	}
	return m.MeetingIntervalDays
}

// MemberOverview is the member list read model: the member row plus the
// derived scheduling state for the reminder dashboard.
type MemberOverview struct {
	Member              Member
	LastMeetingDate     *time.Time
	NextRecommendedDate *time.Time
	NextRecommendedText string
	Overdue             bool
	ScheduledThisWeek   bool
}

// MemberUpdateParams holds partial-update fields for a member.
// Nil means "don't change"; for Department/Position a pointer to ""
// clears the value.
type MemberUpdateParams struct {
	Name                *string
	Department          *string
	Position            *string
	MeetingIntervalDays *int
}
