package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is a role-scoped dashboard definition. It owns widgets,
// statistics, and quick actions; the engine treats it as read-only.
type Workspace struct {
	ID           uuid.UUID
	Role         WorkspaceRole
	Name         string
	Description  string
	Icon         string
	Color        string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks structural invariants of the workspace definition.
func (w Workspace) Validate() error {
	var errs []FieldError

	if w.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if !w.Role.IsValid() {
		errs = append(errs, FieldError{Field: "role", Message: "unknown role"})
	}
	if w.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	} else if len(w.Name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "too long"})
	}
	if w.DisplayOrder < 0 {
		errs = append(errs, FieldError{Field: "display_order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
