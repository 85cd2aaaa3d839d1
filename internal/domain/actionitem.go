package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ActionItem is a follow-up task owned by a member. It optionally originates
// from one meeting (MeetingID nil for free-standing items).
//
// Invariant: CompletedAt is non-nil if and only if Status is DONE. The pair
// is managed exclusively by the status-transition operation.
type ActionItem struct {
	ID          uuid.UUID
	MemberID    uuid.UUID
	MeetingID   *uuid.UUID
	Title       string
	Description *string
	Status      ActionItemStatus
	DueDate     *time.Time
	CompletedAt *time.Time
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCompleted reports whether the item has been marked DONE.
func (a *ActionItem) IsCompleted() bool {
	return a.Status == ActionItemStatusDone
}

// CompletedOnTime reports whether a completed item met its due date.
// Items without a due date are trivially on time. Returns false for
// items that are not completed.
func (a *ActionItem) CompletedOnTime() bool {
	if a.CompletedAt == nil {
		return false
	}
	if a.DueDate == nil {
		return true
	}
	return !a.CompletedAt.After(*a.DueDate)
}

// ActionItemUpdateParams holds partial-update fields for the edit form.
// Status and CompletedAt are deliberately absent: they belong to the
// status-transition operation only.
type ActionItemUpdateParams struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
	SortOrder   *int
}

// SortActionItems orders items by sort order with the same tie-breaking
// as SortTopics.
func SortActionItems(items []ActionItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}
