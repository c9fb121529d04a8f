package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// LoadDashboard fetches the workspace, its widgets, statistics, and quick
// actions together with the user's preference (if any), and resolves them
// into a single dashboard view.
//
// Any collaborator failure fails the whole load; a dashboard with silently
// missing sections would be a correctness bug, not a degradation.
func (s *Service) LoadDashboard(ctx context.Context, userID, workspaceID uuid.UUID) (domain.ResolvedDashboard, error) {
	if userID == uuid.Nil {
		return domain.ResolvedDashboard{}, domain.NewValidationError("user_id", "required")
	}
	if workspaceID == uuid.Nil {
		return domain.ResolvedDashboard{}, domain.NewValidationError("workspace_id", "required")
	}

	now := s.now().UTC()

	pref, err := s.prefs.Get(ctx, userID, workspaceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.ResolvedDashboard{}, fmt.Errorf("dashboard.LoadDashboard: get preference: %w", err)
	}

	// A deleted (reset) preference and a never-created one resolve identically.
	var prefVersion time.Time
	if pref != nil {
		prefVersion = pref.UpdatedAt
	}

	if dash, ok := s.cache.get(userID, workspaceID, prefVersion, now); ok {
		return dash, nil
	}

	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return domain.ResolvedDashboard{}, fmt.Errorf("dashboard.LoadDashboard: get workspace: %w", err)
	}

	widgets, err := s.widgets.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return domain.ResolvedDashboard{}, fmt.Errorf("dashboard.LoadDashboard: list widgets: %w", err)
	}

	stats, err := s.stats.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return domain.ResolvedDashboard{}, fmt.Errorf("dashboard.LoadDashboard: list statistics: %w", err)
	}

	actions, err := s.actions.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return domain.ResolvedDashboard{}, fmt.Errorf("dashboard.LoadDashboard: list quick actions: %w", err)
	}

	dash := Resolve(*ws, widgets, stats, actions, pref, now)

	dash.QuickActions, err = s.filterQuickActions(ctx, userID, dash.QuickActions)
	if err != nil {
		return domain.ResolvedDashboard{}, fmt.Errorf("dashboard.LoadDashboard: %w", err)
	}

	s.cache.set(userID, workspaceID, prefVersion, dash, now)

	staleCount := 0
	for _, st := range dash.Statistics {
		if st.Stale {
			staleCount++
		}
	}
	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("user_id", userID.String()),
		slog.String("workspace_id", workspaceID.String()),
		slog.Int("widgets", len(dash.Widgets)),
		slog.Int("quick_actions", len(dash.QuickActions)),
		slog.Int("stale_statistics", staleCount),
		slog.Bool("customized", pref != nil),
	)

	return dash, nil
}

// filterQuickActions drops actions the user lacks permission for and
// attaches badge counts. Permission checks go to the authorizer once per
// action; badge counts are only fetched for actions that show a badge.
func (s *Service) filterQuickActions(ctx context.Context, userID uuid.UUID, actions []domain.ResolvedQuickAction) ([]domain.ResolvedQuickAction, error) {
	filtered := make([]domain.ResolvedQuickAction, 0, len(actions))
	for _, a := range actions {
		if a.RequiredPermission != nil {
			allowed, err := s.authz.HasPermission(ctx, userID, *a.RequiredPermission)
			if err != nil {
				return nil, fmt.Errorf("check permission %q: %w", *a.RequiredPermission, err)
			}
			if !allowed {
				continue
			}
		}

		if a.ShowBadge && a.BadgeSource != nil {
			count, err := s.badges.BadgeCount(ctx, *a.BadgeSource)
			if err != nil {
				return nil, fmt.Errorf("badge count %q: %w", *a.BadgeSource, err)
			}
			a.BadgeCount = count
		}

		filtered = append(filtered, a)
	}
	return filtered, nil
}
