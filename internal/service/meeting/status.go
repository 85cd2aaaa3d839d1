package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// UpdateActionItemStatus moves an action item to the target status. The set
// is closed and flat: any status is reachable from any other in one call.
// Transitioning to DONE stamps completedAt to the current time on every call;
// leaving DONE clears it.
func (s *Service) UpdateActionItemStatus(ctx context.Context, id uuid.UUID, status domain.ActionItemStatus) (*domain.ActionItem, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid value")
	}

	var completedAt *time.Time
	if status == domain.ActionItemStatusDone {
		now := s.now().UTC()
		completedAt = &now
	}

	item, err := s.actionItems.UpdateStatus(ctx, id, status, completedAt)
	if err != nil {
		return nil, fmt.Errorf("update action item status: %w", err)
	}

	s.log.InfoContext(ctx, "action item status updated",
		"action_item_id", item.ID, "status", item.Status)
	s.invalidate(ctx, item.MemberID)

	return item, nil
}
