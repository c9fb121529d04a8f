// Package quickaction implements the QuickAction repository using PostgreSQL.
package quickaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/workboardhq/workboard-backend/internal/adapter/postgres"
	"github.com/workboardhq/workboard-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"id", "workspace_id", "label", "description", "icon", "color",
	"action_type", "action_target", "required_permission", "position",
	"is_visible", "show_badge", "badge_source", "created_at", "updated_at",
}

// Repo provides quick action persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quick action repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByWorkspace returns all quick actions of a workspace ordered by position.
// Returns an empty slice when the workspace has no quick actions.
func (r *Repo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.QuickAction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("quick_actions").
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list quick_actions: %w", err)
	}
	defer rows.Close()

	actions := []domain.QuickAction{}
	for rows.Next() {
		a, err := scanQuickAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quick_action: %w", err)
		}
		actions = append(actions, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list quick_actions: %w", err)
	}

	return actions, nil
}

// Create inserts a new quick action and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a domain.QuickAction) (*domain.QuickAction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("quick_actions").
		Columns(columns...).
		Values(a.ID, a.WorkspaceID, a.Label, a.Description, a.Icon, a.Color,
			string(a.ActionType), a.ActionTarget, a.RequiredPermission, a.Position,
			a.IsVisible, a.ShowBadge, a.BadgeSource, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanQuickAction(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "quick_action", a.ID.String())
	}
	return created, nil
}

func scanQuickAction(row pgx.Row) (*domain.QuickAction, error) {
	var a domain.QuickAction
	err := row.Scan(
		&a.ID, &a.WorkspaceID, &a.Label, &a.Description, &a.Icon, &a.Color,
		&a.ActionType, &a.ActionTarget, &a.RequiredPermission, &a.Position,
		&a.IsVisible, &a.ShowBadge, &a.BadgeSource, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
