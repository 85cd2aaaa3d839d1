package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// dateLayout is the wire format for calendar dates (meeting dates, due dates).
const dateLayout = "2006-01-02"

type memberPayload struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Department          *string   `json:"department,omitempty"`
	Position            *string   `json:"position,omitempty"`
	MeetingIntervalDays int       `json:"meetingIntervalDays"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toMemberPayload(m *domain.Member) memberPayload {
	return memberPayload{
		ID:                  m.ID,
		Name:                m.Name,
		Department:          m.Department,
		Position:            m.Position,
		MeetingIntervalDays: m.MeetingIntervalDays,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

type memberOverviewPayload struct {
	memberPayload
	LastMeetingDate     *string `json:"lastMeetingDate,omitempty"`
	NextRecommendedDate *string `json:"nextRecommendedDate,omitempty"`
	NextRecommendedText string  `json:"nextRecommendedText"`
	Overdue             bool    `json:"overdue"`
	ScheduledThisWeek   bool    `json:"scheduledThisWeek"`
}

func toMemberOverviewPayload(o domain.MemberOverview) memberOverviewPayload {
	return memberOverviewPayload{
		memberPayload:       toMemberPayload(&o.Member),
		LastMeetingDate:     formatDate(o.LastMeetingDate),
		NextRecommendedDate: formatDate(o.NextRecommendedDate),
		NextRecommendedText: o.NextRecommendedText,
		Overdue:             o.Overdue,
		ScheduledThisWeek:   o.ScheduledThisWeek,
	}
}

type topicPayload struct {
	ID        uuid.UUID `json:"id"`
	MeetingID uuid.UUID `json:"meetingId"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTopicPayload(t domain.Topic) topicPayload {
	return topicPayload{
		ID:        t.ID,
		MeetingID: t.MeetingID,
		Category:  t.Category.String(),
		Title:     t.Title,
		Notes:     t.Notes,
		SortOrder: t.SortOrder,
		CreatedAt: t.CreatedAt,
	}
}

type actionItemPayload struct {
	ID          uuid.UUID  `json:"id"`
	MemberID    uuid.UUID  `json:"memberId"`
	MeetingID   *uuid.UUID `json:"meetingId,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *string    `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	SortOrder   int        `json:"sortOrder"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toActionItemPayload(a domain.ActionItem) actionItemPayload {
	return actionItemPayload{
		ID:          a.ID,
		MemberID:    a.MemberID,
		MeetingID:   a.MeetingID,
		Title:       a.Title,
		Description: a.Description,
		Status:      a.Status.String(),
		DueDate:     formatDate(a.DueDate),
		CompletedAt: a.CompletedAt,
		SortOrder:   a.SortOrder,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type meetingPayload struct {
	ID        uuid.UUID  `json:"id"`
	MemberID  uuid.UUID  `json:"memberId"`
	Date      string     `json:"date"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Mood      *int       `json:"mood,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Topics      []topicPayload      `json:"topics"`
	ActionItems []actionItemPayload `json:"actionItems"`
}

func toMeetingPayload(m *domain.Meeting) meetingPayload {
	p := meetingPayload{
		ID:          m.ID,
		MemberID:    m.MemberID,
		Date:        m.Date.UTC().Format(dateLayout),
		StartedAt:   m.StartedAt,
		EndedAt:     m.EndedAt,
		Mood:        m.Mood,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Topics:      make([]topicPayload, 0, len(m.Topics)),
		ActionItems: make([]actionItemPayload, 0, len(m.ActionItems)),
	}
	for _, t := range m.Topics {
		p.Topics = append(p.Topics, toTopicPayload(t))
	}
	for _, a := range m.ActionItems {
		p.ActionItems = append(p.ActionItems, toActionItemPayload(a))
	}
	return p
}

type reminderPayload struct {
	MemberID            uuid.UUID `json:"memberId"`
	MemberName          string    `json:"memberName"`
	LastMeetingDate     *string   `json:"lastMeetingDate,omitempty"`
	NextRecommendedDate *string   `json:"nextRecommendedDate,omitempty"`
	NextRecommendedText string    `json:"nextRecommendedText"`
	DaysSinceLast       int       `json:"daysSinceLast"`
	Overdue             bool      `json:"overdue"`
	ScheduledThisWeek   bool      `json:"scheduledThisWeek"`
}

func toReminderPayloads(reminders []domain.MemberReminder) []reminderPayload {
	out := make([]reminderPayload, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, reminderPayload{
			MemberID:            r.MemberID,
			MemberName:          r.MemberName,
			LastMeetingDate:     formatDate(r.LastMeetingDate),
			NextRecommendedDate: formatDate(r.NextRecommendedDate),
			NextRecommendedText: r.NextRecommendedText,
			DaysSinceLast:       r.DaysSinceLast,
			Overdue:             r.Overdue,
			ScheduledThisWeek:   r.ScheduledThisWeek,
		})
	}
	return out
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
