package domain

import (
	"time"

	"github.com/google/uuid"
)

// Widget is a unit of dashboard content owned by exactly one workspace.
// Config is an opaque payload interpreted by the renderer, never by the
// engine; it is validated only for being JSON-serializable at the edges.
type Widget struct {
	ID          uuid.UUID
	WorkspaceID uuid.UUID
	Type        WidgetType
	Title       string
	Description string
	Icon        string
	Color       string
	Config      map[string]any
	Position    int
	Width       int
	Height      int
	IsVisible   bool
	IsRequired  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks structural invariants of the widget definition.
func (w Widget) Validate() error {
	var errs []FieldError

	if w.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if w.WorkspaceID == uuid.Nil {
		errs = append(errs, FieldError{Field: "workspace_id", Message: "required"})
	}
	if !w.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "unknown widget type"})
	}
	if w.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	} else if len(w.Title) > 255 {
		errs = append(errs, FieldError{Field: "title", Message: "too long"})
	}
	if w.Position < 0 {
		errs = append(errs, FieldError{Field: "position", Message: "must not be negative"})
	}
	if w.Width < 1 {
		errs = append(errs, FieldError{Field: "width", Message: "must be positive"})
	}
	if w.Height < 1 {
		errs = append(errs, FieldError{Field: "height", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
