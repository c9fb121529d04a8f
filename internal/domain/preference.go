package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserPreference is the per-user override layer for one workspace; at most
// one row exists per (user, workspace) pair. It is created lazily on first
// customization and deleted entirely on reset, so a user who resets is
// indistinguishable from one who never customized anything.
//
// HiddenWidgetIDs may reference required widgets: the resolver drops those
// entries at read time instead of the write path rejecting them.
type UserPreference struct {
	UserID             uuid.UUID
	WorkspaceID        uuid.UUID
	DefaultWorkspaceID *uuid.UUID
	HiddenWidgetIDs    []uuid.UUID
	CustomOrder        map[uuid.UUID]int
	CustomLayout       map[string]any
	ShowWelcomeMessage bool
	CompactMode        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultUserPreference returns the preference a user implicitly has before
// any customization: nothing hidden, no custom order, default display flags.
func DefaultUserPreference(userID, workspaceID uuid.UUID) UserPreference {
	return UserPreference{
		UserID:             userID,
		WorkspaceID:        workspaceID,
		HiddenWidgetIDs:    []uuid.UUID{},
		CustomOrder:        map[uuid.UUID]int{},
		ShowWelcomeMessage: true,
		CompactMode:        false,
	}
}

// Validate checks structural invariants of a stored preference.
func (p UserPreference) Validate() error {
	var errs []FieldError

	if p.UserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if p.WorkspaceID == uuid.Nil {
		errs = append(errs, FieldError{Field: "workspace_id", Message: "required"})
	}
	if p.DefaultWorkspaceID != nil && *p.DefaultWorkspaceID == uuid.Nil {
		errs = append(errs, FieldError{Field: "default_workspace_id", Message: "must be a valid workspace id"})
	}
	for _, id := range p.HiddenWidgetIDs {
		if id == uuid.Nil {
			errs = append(errs, FieldError{Field: "hidden_widget_ids", Message: "contains an empty widget id"})
			break
		}
	}
	for id := range p.CustomOrder {
		if id == uuid.Nil {
			errs = append(errs, FieldError{Field: "custom_order", Message: "contains an empty widget id"})
			break
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// IsHidden reports whether the user asked to hide the given widget.
// Required widgets are exempt from hiding; that exemption is applied by
// the resolver, not here.
func (p UserPreference) IsHidden(widgetID uuid.UUID) bool {
	for _, id := range p.HiddenWidgetIDs {
		if id == widgetID {
			return true
		}
	}
	return false
}
