package member

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
	"github.com/heartmarshall/oneonone-backend/internal/service/schedule"
)

// CreateMember creates a member. A zero interval takes the default cadence.
func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*domain.Member, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.members.Create(ctx, &domain.Member{
		Name:                input.Name,
		Department:          input.Department,
		Position:            input.Position,
		MeetingIntervalDays: input.MeetingIntervalDays,
	})
	if err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.log.InfoContext(ctx, "member created", "member_id", created.ID)
	return created, nil
}

// GetMember returns a member by id.
func (s *Service) GetMember(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// UpdateMember applies a partial update. An empty update is a no-op that
// returns the current row.
func (s *Service) UpdateMember(ctx context.Context, id uuid.UUID, input UpdateMemberInput) (*domain.Member, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.empty() {
		return s.GetMember(ctx, id)
	}

	updated, err := s.members.Update(ctx, id, domain.MemberUpdateParams{
		Name:                input.Name,
		Department:          input.Department,
		Position:            input.Position,
		MeetingIntervalDays: input.MeetingIntervalDays,
	})
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}

	s.log.InfoContext(ctx, "member updated", "member_id", id)
	s.invalidate(ctx, id)

	return updated, nil
}

// DeleteMember removes a member; meetings, topics, and action items cascade.
// Returns domain.ErrNotFound if the member does not exist.
func (s *Service) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if err := s.members.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}

	s.log.InfoContext(ctx, "member deleted", "member_id", id)
	s.invalidate(ctx, id)

	return nil
}

// ListMembers returns every member with their last meeting date and derived
// scheduling state, ordered by name.
func (s *Service) ListMembers(ctx context.Context) ([]domain.MemberOverview, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	lastMeetings, err := s.members.ListWithLastMeeting(ctx)
	if err != nil {
		return nil, fmt.Errorf("list last meetings: %w", err)
	}

	lastByID := make(map[uuid.UUID]*time.Time, len(lastMeetings))
	for _, lm := range lastMeetings {
		lastByID[lm.MemberID] = lm.LastDate
	}

	now := s.now()
	overviews := make([]domain.MemberOverview, 0, len(members))
	for _, m := range members {
		last := lastByID[m.ID]
		next := schedule.NextRecommendedDate(last, m.MeetingIntervalDays)
		overviews = append(overviews, domain.MemberOverview{
			Member:              *m,
			LastMeetingDate:     last,
			NextRecommendedDate: next,
			NextRecommendedText: schedule.FormatNextRecommendedDate(next, now),
			Overdue:             schedule.IsOverdue(last, m.MeetingIntervalDays, now),
			ScheduledThisWeek:   schedule.IsScheduledThisWeek(last, m.MeetingIntervalDays, now),
		})
	}

	return overviews, nil
}
