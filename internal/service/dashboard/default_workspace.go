package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// DefaultWorkspace resolves the workspace a user lands on: their stored
// default when one is set and still resolvable, otherwise the active
// workspace for the caller-supplied role with the lowest display order.
//
// The role comes from the caller because identity and role assignment live
// outside this engine; nothing here reads ambient session state.
func (s *Service) DefaultWorkspace(ctx context.Context, userID uuid.UUID, role domain.WorkspaceRole) (*domain.Workspace, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "unknown role")
	}

	defaultID, err := s.prefs.FindDefaultWorkspace(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("dashboard.DefaultWorkspace: find preference: %w", err)
	}

	if defaultID != nil {
		ws, err := s.workspaces.GetByID(ctx, *defaultID)
		switch {
		case err == nil && ws.IsActive:
			return ws, nil
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("dashboard.DefaultWorkspace: get workspace: %w", err)
		default:
			// Stored default was deleted or deactivated; fall back to the role default.
			s.log.WarnContext(ctx, "stored default workspace unusable, falling back",
				slog.String("user_id", userID.String()),
				slog.String("workspace_id", defaultID.String()),
			)
		}
	}

	ws, err := s.workspaces.GetActiveByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("dashboard.DefaultWorkspace: role default: %w", err)
	}
	return ws, nil
}
