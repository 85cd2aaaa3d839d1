package meeting

import (
	"context"
	"fmt"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// CreateMeeting creates a meeting with its topics and action items in one
// atomic transaction. Action items are always attributed to the meeting's
// member. Returns the created meeting with children in display order.
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	member, err := s.members.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	var created *domain.Meeting
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.meetings.Create(txCtx, &domain.Meeting{
			MemberID: member.ID,
			Date:     input.Date.UTC(),
			Mood:     input.Mood,
		})
		if createErr != nil {
			return fmt.Errorf("create meeting: %w", createErr)
		}

		topics := make([]domain.Topic, 0, len(input.Topics))
		for _, draft := range input.Topics {
			topics = append(topics, domain.Topic{
				MeetingID: created.ID,
				Category:  draft.Category,
				Title:     draft.Title,
				Notes:     draft.Notes,
				SortOrder: draft.SortOrder,
			})
		}
		if err := s.topics.CreateBatch(txCtx, created.ID, topics); err != nil {
			return fmt.Errorf("create topics: %w", err)
		}

		items := make([]domain.ActionItem, 0, len(input.ActionItems))
		for _, draft := range input.ActionItems {
			items = append(items, domain.ActionItem{
				MemberID:    member.ID,
				MeetingID:   &created.ID,
				Title:       draft.Title,
				Description: draft.Description,
				Status:      domain.ActionItemStatusTodo,
				DueDate:     draft.DueDate,
				SortOrder:   draft.SortOrder,
			})
		}
		if err := s.actionItems.CreateBatch(txCtx, items); err != nil {
			return fmt.Errorf("create action items: %w", err)
		}

		return s.loadChildren(txCtx, created)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "meeting created",
		"meeting_id", created.ID, "member_id", member.ID,
		"topics", len(created.Topics), "action_items", len(created.ActionItems))
	s.invalidate(ctx, member.ID)

	return created, nil
}
