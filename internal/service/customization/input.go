package customization

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// Patch is a partial preference update. Nil fields are left unchanged;
// non-nil fields replace the stored value wholesale:
//   - HiddenWidgetIDs nil = don't change, empty slice = unhide everything.
//   - CustomOrder nil = don't change, empty map = drop all reordering.
//   - CustomLayout nil = don't change, empty map = clear the layout.
//   - DefaultWorkspaceID pointing at uuid.Nil clears the stored default.
type Patch struct {
	DefaultWorkspaceID *uuid.UUID
	HiddenWidgetIDs    []uuid.UUID
	CustomOrder        map[uuid.UUID]int
	CustomLayout       map[string]any
	ShowWelcomeMessage *bool
	CompactMode        *bool
}

// Validate validates the customization patch. CustomLayout is opaque to the
// engine and only checked for serializability; its shape belongs to the
// renderer.
func (p Patch) Validate() error {
	var errs []domain.FieldError

	for _, id := range p.HiddenWidgetIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "hidden_widget_ids", Message: "contains an empty widget id"})
			break
		}
	}

	for id, pos := range p.CustomOrder {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "custom_order", Message: "contains an empty widget id"})
			break
		}
		if pos < 0 {
			errs = append(errs, domain.FieldError{Field: "custom_order", Message: "position must not be negative"})
			break
		}
	}

	if p.CustomLayout != nil {
		if _, err := json.Marshal(p.CustomLayout); err != nil {
			errs = append(errs, domain.FieldError{Field: "custom_layout", Message: "must be serializable"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
