package meeting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

// TopicDraft is one submitted topic row. A non-nil ID means "update this
// existing topic in place"; a nil ID means "insert a new topic".
type TopicDraft struct {
	ID        *uuid.UUID
	Category  domain.TopicCategory
	Title     string
	Notes     string
	SortOrder int
}

// ActionItemDraft is one submitted action item row. A non-nil ID means
// "update this existing item in place"; a nil ID means "insert a new item".
// Status and completion are deliberately absent: they belong to the status
// transition operation, not the edit form.
type ActionItemDraft struct {
	ID          *uuid.UUID
	Title       string
	Description *string
	DueDate     *time.Time
	SortOrder   int
}

// CreateMeetingInput holds the parameters for creating a meeting with its
// children in one transaction.
type CreateMeetingInput struct {
	MemberID    uuid.UUID
	Date        time.Time
	Mood        *int
	Topics      []TopicDraft
	ActionItems []ActionItemDraft
}

// Validate checks all fields and collects all errors.
func (i *CreateMeetingInput) Validate() error {
	var errs []domain.FieldError

	if i.MemberID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "member_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	errs = append(errs, validateMood(i.Mood)...)
	errs = append(errs, validateTopicDrafts(i.Topics)...)
	errs = append(errs, validateActionItemDrafts(i.ActionItems)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMeetingInput holds the parameters for reconciling a meeting against
// a submitted desired state. Nil scalar fields mean "don't change". The two
// deletion lists carry explicit caller intent; the engine never infers
// deletions by set difference.
type UpdateMeetingInput struct {
	MeetingID            uuid.UUID
	Date                 *time.Time
	StartedAt            *time.Time
	EndedAt              *time.Time
	Mood                 *int
	Topics               []TopicDraft
	ActionItems          []ActionItemDraft
	DeletedTopicIDs      []uuid.UUID
	DeletedActionItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *UpdateMeetingInput) Validate() error {
	var errs []domain.FieldError

	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meeting_id", Message: "required"})
	}
	if i.Date != nil && i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must not be zero"})
	}
	errs = append(errs, validateMood(i.Mood)...)
	errs = append(errs, validateTopicDrafts(i.Topics)...)
	errs = append(errs, validateActionItemDrafts(i.ActionItems)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateMood(mood *int) []domain.FieldError {
	if mood != nil && (*mood < 1 || *mood > 5) {
		return []domain.FieldError{{Field: "mood", Message: "must be between 1 and 5"}}
	}
	return nil
}

func validateTopicDrafts(drafts []TopicDraft) []domain.FieldError {
	var errs []domain.FieldError
	for ti, t := range drafts {
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, domain.FieldError{
				Field:   fieldIndex("topics", ti, "title"),
				Message: "required",
			})
		}
		if !t.Category.IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   fieldIndex("topics", ti, "category"),
				Message: "invalid value",
			})
		}
	}
	return errs
}

func validateActionItemDrafts(drafts []ActionItemDraft) []domain.FieldError {
	var errs []domain.FieldError
	for ai, a := range drafts {
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, domain.FieldError{
				Field:   fieldIndex("action_items", ai, "title"),
				Message: "required",
			})
		}
	}
	return errs
}

func fieldIndex(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}
