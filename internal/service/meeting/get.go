package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// GetMeeting returns a meeting with its topics and action items in display
// order. Returns domain.ErrNotFound if the meeting does not exist.
func (s *Service) GetMeeting(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	m, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if err := s.loadChildren(ctx, m); err != nil {
		return nil, fmt.Errorf("load meeting children: %w", err)
	}
	return m, nil
}

// ListMeetingsByMember returns a member's meetings newest first, without
// children. Returns domain.ErrNotFound if the member does not exist.
func (s *Service) ListMeetingsByMember(ctx context.Context, memberID uuid.UUID) ([]*domain.Meeting, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	meetings, err := s.meetings.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return meetings, nil
}
