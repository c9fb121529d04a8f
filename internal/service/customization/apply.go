package customization

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// Apply merges the patch into the user's stored preference for the
// workspace, creating the preference lazily when none exists. The
// read-merge-write runs as one transaction: a failed validation or write
// leaves the stored preference exactly as it was.
func (s *Service) Apply(ctx context.Context, userID, workspaceID uuid.UUID, patch Patch) (*domain.UserPreference, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	if workspaceID == uuid.Nil {
		return nil, domain.NewValidationError("workspace_id", "required")
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var (
		saved   *domain.UserPreference
		created bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.prefs.Get(txCtx, userID, workspaceID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			pref := domain.DefaultUserPreference(userID, workspaceID)
			current = &pref
			created = true
		case err != nil:
			return fmt.Errorf("get preference: %w", err)
		}

		merged := applyPatch(*current, patch)
		if err := merged.Validate(); err != nil {
			return err
		}

		saved, err = s.prefs.Upsert(txCtx, merged)
		if err != nil {
			return fmt.Errorf("upsert preference: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("customization.Apply: %w", err)
	}

	s.invalidate(userID, workspaceID)

	s.log.InfoContext(ctx, "customization applied",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.Bool("created", created),
	)

	return saved, nil
}

// applyPatch merges the patch onto the current preference. Collections are
// copied so the returned preference never aliases caller-owned memory.
func applyPatch(current domain.UserPreference, patch Patch) domain.UserPreference {
	result := current

	if patch.DefaultWorkspaceID != nil {
		if *patch.DefaultWorkspaceID == uuid.Nil {
			result.DefaultWorkspaceID = nil
		} else {
			id := *patch.DefaultWorkspaceID
			result.DefaultWorkspaceID = &id
		}
	}
	if patch.HiddenWidgetIDs != nil {
		result.HiddenWidgetIDs = make([]uuid.UUID, len(patch.HiddenWidgetIDs))
		copy(result.HiddenWidgetIDs, patch.HiddenWidgetIDs)
	}
	if patch.CustomOrder != nil {
		result.CustomOrder = make(map[uuid.UUID]int, len(patch.CustomOrder))
		for id, pos := range patch.CustomOrder {
			result.CustomOrder[id] = pos
		}
	}
	if patch.CustomLayout != nil {
		result.CustomLayout = make(map[string]any, len(patch.CustomLayout))
		for k, v := range patch.CustomLayout {
			result.CustomLayout[k] = v
		}
	}
	if patch.ShowWelcomeMessage != nil {
		result.ShowWelcomeMessage = *patch.ShowWelcomeMessage
	}
	if patch.CompactMode != nil {
		result.CompactMode = *patch.CompactMode
	}

	return result
}
