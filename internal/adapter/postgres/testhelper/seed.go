package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWorkspace creates an active workspace for the given role.
// Returns a filled domain.Workspace.
func SeedWorkspace(t *testing.T, pool *pgxpool.Pool, role domain.WorkspaceRole) domain.Workspace {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	ws := domain.Workspace{
		ID:           uuid.New(),
		Role:         role,
		Name:         "Workspace " + suffix,
		Description:  "Seeded workspace " + suffix,
		Icon:         "layout",
		Color:        "#2563eb",
		IsActive:     true,
		DisplayOrder: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO workspaces (id, role, name, description, icon, color, is_active, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ws.ID, string(ws.Role), ws.Name, ws.Description, ws.Icon, ws.Color, ws.IsActive, ws.DisplayOrder, ws.CreatedAt, ws.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWorkspace insert: %v", err)
	}

	return ws
}

// SeedWidget creates a visible widget in the workspace at the given position.
// Returns a filled domain.Widget.
func SeedWidget(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, position int, required bool) domain.Widget {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	w := domain.Widget{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Type:        domain.WidgetTypeStat,
		Title:       "Widget " + suffix,
		Config:      map[string]any{"source": "seed-" + suffix},
		Position:    position,
		Width:       2,
		Height:      1,
		IsVisible:   true,
		IsRequired:  required,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO widgets (id, workspace_id, type, title, description, icon, color, config, position, width, height, is_visible, is_required, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		w.ID, w.WorkspaceID, string(w.Type), w.Title, w.Description, w.Icon, w.Color, w.Config, w.Position, w.Width, w.Height, w.IsVisible, w.IsRequired, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWidget insert: %v", err)
	}

	return w
}

// SeedStatistic creates a statistic with the given key and cache duration.
// Returns a filled domain.Statistic.
func SeedStatistic(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, key string, cacheSec int) domain.Statistic {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	st := domain.Statistic{
		ID:               uuid.New(),
		WorkspaceID:      workspaceID,
		Key:              key,
		Label:            "Statistic " + key,
		Value:            "0",
		Type:             domain.StatisticTypeNumber,
		CacheDurationSec: cacheSec,
		LastCalculatedAt: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO statistics (id, workspace_id, key, label, value, type, trend, trend_direction, target_value, progress, cache_duration_sec, last_calculated_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		st.ID, st.WorkspaceID, st.Key, st.Label, st.Value, string(st.Type), st.Trend, st.TrendDirection, st.TargetValue, st.Progress, st.CacheDurationSec, st.LastCalculatedAt, st.CreatedAt, st.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStatistic insert: %v", err)
	}

	return st
}

// SeedQuickAction creates a visible quick action in the workspace.
// Returns a filled domain.QuickAction.
func SeedQuickAction(t *testing.T, pool *pgxpool.Pool, workspaceID uuid.UUID, position int) domain.QuickAction {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.QuickAction{
		ID:           uuid.New(),
		WorkspaceID:  workspaceID,
		Label:        "Action " + suffix,
		ActionType:   domain.ActionTypeNavigate,
		ActionTarget: "/actions/" + suffix,
		Position:     position,
		IsVisible:    true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO quick_actions (id, workspace_id, label, description, icon, color, action_type, action_target, required_permission, position, is_visible, show_badge, badge_source, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.WorkspaceID, a.Label, a.Description, a.Icon, a.Color, string(a.ActionType), a.ActionTarget, a.RequiredPermission, a.Position, a.IsVisible, a.ShowBadge, a.BadgeSource, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuickAction insert: %v", err)
	}

	return a
}
