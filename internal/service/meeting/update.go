package meeting

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// UpdateMeeting reconciles a meeting and its children against the submitted
// desired state in one atomic transaction:
//
//  1. Load the meeting (NotFound when absent) and apply scalar changes.
//  2. Delete every id in the two deletion lists. A draft carrying an id that
//     is also listed for deletion is skipped: deletion wins.
//  3. Drafts with an id update the existing row in place; drafts without an
//     id insert a new row. Inserted action items take the member id from the
//     meeting row, never from client input. Status and completedAt are never
//     touched here.
//  4. Re-read and return the meeting with children in display order.
//
// Re-submitting the same fully-specified draft set is a no-op.
func (s *Service) UpdateMeeting(ctx context.Context, input UpdateMeetingInput) (*domain.Meeting, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Meeting
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.meetings.GetByID(txCtx, input.MeetingID)
		if err != nil {
			return fmt.Errorf("get meeting: %w", err)
		}

		if input.Date != nil || input.StartedAt != nil || input.EndedAt != nil || input.Mood != nil {
			params := domain.MeetingUpdateParams{
				Date:      input.Date,
				StartedAt: input.StartedAt,
				EndedAt:   input.EndedAt,
				Mood:      input.Mood,
			}
			if err := s.meetings.Update(txCtx, m.ID, params); err != nil {
				return fmt.Errorf("update meeting: %w", err)
			}
		}

		if err := s.topics.DeleteByIDs(txCtx, m.ID, input.DeletedTopicIDs); err != nil {
			return fmt.Errorf("delete topics: %w", err)
		}
		if err := s.actionItems.DeleteByIDs(txCtx, m.ID, input.DeletedActionItemIDs); err != nil {
			return fmt.Errorf("delete action items: %w", err)
		}

		if err := s.reconcileTopics(txCtx, m.ID, input.Topics, input.DeletedTopicIDs); err != nil {
			return err
		}
		if err := s.reconcileActionItems(txCtx, m, input.ActionItems, input.DeletedActionItemIDs); err != nil {
			return err
		}

		updated, err = s.meetings.GetByID(txCtx, m.ID)
		if err != nil {
			return fmt.Errorf("reload meeting: %w", err)
		}
		return s.loadChildren(txCtx, updated)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "meeting updated",
		"meeting_id", updated.ID, "member_id", updated.MemberID,
		"deleted_topics", len(input.DeletedTopicIDs),
		"deleted_action_items", len(input.DeletedActionItemIDs))
	s.invalidate(ctx, updated.MemberID)

	return updated, nil
}

func (s *Service) reconcileTopics(ctx context.Context, meetingID uuid.UUID, drafts []TopicDraft, deleted []uuid.UUID) error {
	deletedSet := idSet(deleted)

	var inserts []domain.Topic
	for _, draft := range drafts {
		if draft.ID != nil && deletedSet[*draft.ID] {
			continue
		}
		if draft.ID == nil {
			inserts = append(inserts, domain.Topic{
				MeetingID: meetingID,
				Category:  draft.Category,
				Title:     draft.Title,
				Notes:     draft.Notes,
				SortOrder: draft.SortOrder,
			})
			continue
		}
		err := s.topics.Update(ctx, domain.Topic{
			ID:        *draft.ID,
			MeetingID: meetingID,
			Category:  draft.Category,
			Title:     draft.Title,
			Notes:     draft.Notes,
			SortOrder: draft.SortOrder,
		})
		if err != nil {
			return fmt.Errorf("update topic %s: %w", *draft.ID, err)
		}
	}

	if err := s.topics.CreateBatch(ctx, meetingID, inserts); err != nil {
		return fmt.Errorf("insert topics: %w", err)
	}
	return nil
}

func (s *Service) reconcileActionItems(ctx context.Context, m *domain.Meeting, drafts []ActionItemDraft, deleted []uuid.UUID) error {
	deletedSet := idSet(deleted)

	var inserts []domain.ActionItem
	for _, draft := range drafts {
		if draft.ID != nil && deletedSet[*draft.ID] {
			continue
		}
		if draft.ID == nil {
			inserts = append(inserts, domain.ActionItem{
				MemberID:    m.MemberID,
				MeetingID:   &m.ID,
				Title:       draft.Title,
				Description: draft.Description,
				Status:      domain.ActionItemStatusTodo,
				DueDate:     draft.DueDate,
				SortOrder:   draft.SortOrder,
			})
			continue
		}

		// Full rewrite of the edit-form fields; an absent description or
		// due date in the draft clears the stored value.
		title := draft.Title
		sortOrder := draft.SortOrder
		params := domain.ActionItemUpdateParams{
			Title:     &title,
			SortOrder: &sortOrder,
		}
		if draft.Description != nil {
			params.Description = draft.Description
		} else {
			empty := ""
			params.Description = &empty
		}
		if draft.DueDate != nil {
			params.DueDate = draft.DueDate
		} else {
			params.ClearDue = true
		}

		if err := s.actionItems.Update(ctx, *draft.ID, params); err != nil {
			return fmt.Errorf("update action item %s: %w", *draft.ID, err)
		}
	}

	if err := s.actionItems.CreateBatch(ctx, inserts); err != nil {
		return fmt.Errorf("insert action items: %w", err)
	}
	return nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
