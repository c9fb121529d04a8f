package customization

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// Reset deletes the user's preference row for the workspace. After a reset
// the user resolves identically to one who never customized anything.
// Resetting a user with no stored preference succeeds as a no-op, so the
// operation is idempotent and safe to retry.
func (s *Service) Reset(ctx context.Context, userID, workspaceID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	if workspaceID == uuid.Nil {
		return domain.NewValidationError("workspace_id", "required")
	}

	err := s.prefs.Delete(ctx, userID, workspaceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("customization.Reset: %w", err)
	}

	s.invalidate(userID, workspaceID)

	s.log.InfoContext(ctx, "customization reset",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.Bool("existed", err == nil),
	)

	return nil
}
