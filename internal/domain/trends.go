package domain

import (
	"time"

	"github.com/google/uuid"
)

// MonthlyActionTrend holds created/completed counts for one YYYY-MM bucket.
// An item created in month A and completed in month B contributes to both
// buckets independently.
type MonthlyActionTrend struct {
	Month     string
	Created   int
	Completed int
}

// ActionTrends is the aggregated action item analytics for one member.
type ActionTrends struct {
	AverageCompletionDays float64
	OnTimeCompletionRate  float64
	MonthlyTrends         []MonthlyActionTrend
}

// CategoryCount holds the topic count for one category (pie distribution).
type CategoryCount struct {
	Category TopicCategory
	Count    int
}

// CategoryMonthCount holds the topic count for one category in one month
// (stacked timeline).
type CategoryMonthCount struct {
	Month    string
	Category TopicCategory
	Count    int
}

// TopicTrends is the aggregated topic analytics for one member.
type TopicTrends struct {
	Distribution []CategoryCount
	Timeline     []CategoryMonthCount
}

// MonthCount holds a meeting count for one YYYY-MM bucket.
type MonthCount struct {
	Month string
	Count int
}

// HeatmapCell is one member × month cell of the dense meeting heatmap.
type HeatmapCell struct {
	Month string
	Count int
}

// HeatmapRow is one member's row of the meeting heatmap. Cells always cover
// the full month window, zero-filled.
type HeatmapRow struct {
	MemberID   uuid.UUID
	MemberName string
	Cells      []HeatmapCell
}

// MemberReminder is one entry of the recommended/overdue member listings.
type MemberReminder struct {
	MemberID            uuid.UUID
	MemberName          string
	LastMeetingDate     *time.Time
	NextRecommendedDate *time.Time
	NextRecommendedText string
	DaysSinceLast       int
	Overdue             bool
	ScheduledThisWeek   bool
}

// MemberLastMeeting pairs a member with the date of their latest meeting.
// LastDate is nil for members that never met.
type MemberLastMeeting struct {
	MemberID            uuid.UUID
	MemberName          string
	MeetingIntervalDays int
	LastDate            *time.Time
}

// MemberMeetingDate is one raw (member, meeting date) row used by the
// frequency and heatmap aggregations.
type MemberMeetingDate struct {
	MemberID uuid.UUID
	Date     time.Time
}

// TopicWithDate pairs a topic with the date of the meeting it belongs to,
// used by the topic timeline aggregation.
type TopicWithDate struct {
	Topic       Topic
	MeetingDate time.Time
}
