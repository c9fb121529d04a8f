package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuickAction is a user-triggerable shortcut tied to a workspace.
// RequiredPermission is checked by an external authorizer during a load;
// BadgeSource references an external count provider.
type QuickAction struct {
	ID                 uuid.UUID
	WorkspaceID        uuid.UUID
	Label              string
	Description        string
	Icon               string
	Color              string
	ActionType         ActionType
	ActionTarget       string
	RequiredPermission *string
	Position           int
	IsVisible          bool
	ShowBadge          bool
	BadgeSource        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks structural invariants of the quick action definition.
// A badge without a source is rejected: the badge must come from a count
// provider, never default to zero.
func (a QuickAction) Validate() error {
	var errs []FieldError

	if a.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if a.WorkspaceID == uuid.Nil {
		errs = append(errs, FieldError{Field: "workspace_id", Message: "required"})
	}
	if a.Label == "" {
		errs = append(errs, FieldError{Field: "label", Message: "required"})
	} else if len(a.Label) > 255 {
		errs = append(errs, FieldError{Field: "label", Message: "too long"})
	}
	if !a.ActionType.IsValid() {
		errs = append(errs, FieldError{Field: "action_type", Message: "unknown action type"})
	}
	if a.ActionTarget == "" {
		errs = append(errs, FieldError{Field: "action_target", Message: "required"})
	}
	if a.Position < 0 {
		errs = append(errs, FieldError{Field: "position", Message: "must not be negative"})
	}
	if a.ShowBadge && (a.BadgeSource == nil || *a.BadgeSource == "") {
		errs = append(errs, FieldError{Field: "badge_source", Message: "required when show_badge is set"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
