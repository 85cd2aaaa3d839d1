package member

import (
	"strings"

	"github.com/heartmarshall/oneonone-backend/internal/domain"
)

const maxNameLen = 200

// CreateMemberInput holds the parameters for creating a member.
type CreateMemberInput struct {
	Name                string
	Department          *string
	Position            *string
	MeetingIntervalDays int
}

// Validate checks all fields and collects all errors.
func (i *CreateMemberInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
	}
	if i.MeetingIntervalDays < 0 {
		errs = append(errs, domain.FieldError{Field: "meeting_interval_days", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMemberInput holds partial-update parameters for a member.
// Nil means "don't change"; a pointer to "" clears department/position.
type UpdateMemberInput struct {
	Name                *string
	Department          *string
	Position            *string
	MeetingIntervalDays *int
}

// Validate checks all fields and collects all errors.
func (i *UpdateMemberInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if strings.TrimSpace(*i.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 200)"})
		}
	}
	if i.MeetingIntervalDays != nil && *i.MeetingIntervalDays <= 0 {
		errs = append(errs, domain.FieldError{Field: "meeting_interval_days", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// empty reports whether the update carries no changes at all.
func (i *UpdateMemberInput) empty() bool {
	return i.Name == nil && i.Department == nil && i.Position == nil && i.MeetingIntervalDays == nil
}
