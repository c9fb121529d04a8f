// Package preference implements the UserPreference repository using
// PostgreSQL. A preference is one row per (user, workspace) pair; Upsert
// writes the whole row so concurrent patches serialize at row granularity.
package preference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/workboardhq/workboard-backend/internal/adapter/postgres"
	"github.com/workboardhq/workboard-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"user_id", "workspace_id", "default_workspace_id", "hidden_widget_ids",
	"custom_order", "custom_layout", "show_welcome_message", "compact_mode",
	"created_at", "updated_at",
}

// Repo provides user preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new preference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the preference for a (user, workspace) pair.
// Returns domain.ErrNotFound if the user never customized this workspace.
func (r *Repo) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.UserPreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("user_preferences").
		Where(squirrel.Eq{"user_id": userID, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	pref, err := scanPreference(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_preference", prefKey(userID, workspaceID))
	}
	return pref, nil
}

// Upsert writes the whole preference row, inserting it on first
// customization. Timestamps are managed here: created_at is kept on
// conflict, updated_at always moves forward.
func (r *Repo) Upsert(ctx context.Context, pref domain.UserPreference) (*domain.UserPreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	customOrder, err := json.Marshal(orderToJSON(pref.CustomOrder))
	if err != nil {
		return nil, fmt.Errorf("marshal custom_order: %w", err)
	}

	var customLayout []byte
	if pref.CustomLayout != nil {
		customLayout, err = json.Marshal(pref.CustomLayout)
		if err != nil {
			return nil, fmt.Errorf("marshal custom_layout: %w", err)
		}
	}

	hidden := pref.HiddenWidgetIDs
	if hidden == nil {
		hidden = []uuid.UUID{}
	}

	now := time.Now().UTC()

	sql, args, err := qb.Insert("user_preferences").
		Columns(columns...).
		Values(pref.UserID, pref.WorkspaceID, pref.DefaultWorkspaceID, hidden,
			customOrder, customLayout, pref.ShowWelcomeMessage, pref.CompactMode,
			now, now).
		Suffix(`ON CONFLICT (user_id, workspace_id) DO UPDATE SET
			default_workspace_id = EXCLUDED.default_workspace_id,
			hidden_widget_ids = EXCLUDED.hidden_widget_ids,
			custom_order = EXCLUDED.custom_order,
			custom_layout = EXCLUDED.custom_layout,
			show_welcome_message = EXCLUDED.show_welcome_message,
			compact_mode = EXCLUDED.compact_mode,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	saved, err := scanPreference(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_preference", prefKey(pref.UserID, pref.WorkspaceID))
	}
	return saved, nil
}

// Delete removes the preference row for a (user, workspace) pair.
// Returns domain.ErrNotFound if no row existed; callers that treat reset
// as idempotent ignore that error.
func (r *Repo) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("user_preferences").
		Where(squirrel.Eq{"user_id": userID, "workspace_id": workspaceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user_preference", prefKey(userID, workspaceID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_preference %s: %w", prefKey(userID, workspaceID), domain.ErrNotFound)
	}

	return nil
}

// FindDefaultWorkspace returns the user's stored default workspace ID, if
// any preference row carries one. Returns domain.ErrNotFound when the user
// has no preference with a default set.
func (r *Repo) FindDefaultWorkspace(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select("default_workspace_id").
		From("user_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		Where("default_workspace_id IS NOT NULL").
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var defaultID uuid.UUID
	if err := q.QueryRow(ctx, sql, args...).Scan(&defaultID); err != nil {
		return nil, postgres.MapError(err, "user_preference", userID.String())
	}
	return &defaultID, nil
}

func scanPreference(row pgx.Row) (*domain.UserPreference, error) {
	var (
		pref            domain.UserPreference
		rawOrder        []byte
		rawLayout       []byte
		hiddenWidgetIDs []uuid.UUID
	)
	err := row.Scan(
		&pref.UserID, &pref.WorkspaceID, &pref.DefaultWorkspaceID, &hiddenWidgetIDs,
		&rawOrder, &rawLayout, &pref.ShowWelcomeMessage, &pref.CompactMode,
		&pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	pref.HiddenWidgetIDs = hiddenWidgetIDs
	if pref.HiddenWidgetIDs == nil {
		pref.HiddenWidgetIDs = []uuid.UUID{}
	}

	pref.CustomOrder, err = orderFromJSON(rawOrder)
	if err != nil {
		return nil, fmt.Errorf("unmarshal custom_order: %w", err)
	}

	if rawLayout != nil {
		if err := json.Unmarshal(rawLayout, &pref.CustomLayout); err != nil {
			return nil, fmt.Errorf("unmarshal custom_layout: %w", err)
		}
	}

	return &pref, nil
}

// orderToJSON converts the widget order map to string keys for JSONB storage.
func orderToJSON(order map[uuid.UUID]int) map[string]int {
	out := make(map[string]int, len(order))
	for id, pos := range order {
		out[id.String()] = pos
	}
	return out
}

func orderFromJSON(raw []byte) (map[uuid.UUID]int, error) {
	decoded := map[string]int{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
	}

	order := make(map[uuid.UUID]int, len(decoded))
	for key, pos := range decoded {
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("widget id %q: %w", key, err)
		}
		order[id] = pos
	}
	return order, nil
}

func prefKey(userID, workspaceID uuid.UUID) string {
	return userID.String() + "/" + workspaceID.String()
}
