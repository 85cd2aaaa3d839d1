package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DeleteMeeting removes a meeting; topics and the action items that
// originated from it go with it via cascade. Deleting a meeting that does
// not exist returns domain.ErrNotFound, never a silent success.
func (s *Service) DeleteMeeting(ctx context.Context, id uuid.UUID) error {
	m, err := s.meetings.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get meeting: %w", err)
	}

	if err := s.meetings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}

	s.log.InfoContext(ctx, "meeting deleted", "meeting_id", id, "member_id", m.MemberID)
	s.invalidate(ctx, m.MemberID)

	return nil
}
