// Package workspace implements the Workspace repository using PostgreSQL.
// Workspaces are administered outside the engine, so the write surface here
// is limited to what seeding and tests need.
package workspace

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
	"id", "role", "name", "description", "icon", "color",
	"is_active", "display_order", "created_at", "updated_at",
}

// Repo provides workspace persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workspace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a workspace by primary key.
// Returns domain.ErrNotFound if the workspace does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("workspaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ws, err := scanWorkspace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workspace", id.String())
	}
	return ws, nil
}

// GetActiveByRole returns the active workspace for a role with the lowest
// display order. Returns domain.ErrNotFound if the role has no active workspace.
func (r *Repo) GetActiveByRole(ctx context.Context, role domain.WorkspaceRole) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("workspaces").
		Where(squirrel.Eq{"role": string(role), "is_active": true}).
		OrderBy("display_order ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	ws, err := scanWorkspace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workspace", string(role))
	}
	return ws, nil
}

// ListActiveByRole returns all active workspaces for a role ordered by
// display order. Returns an empty slice when the role has none.
func (r *Repo) ListActiveByRole(ctx context.Context, role domain.WorkspaceRole) ([]domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("workspaces").
		Where(squirrel.Eq{"role": string(role), "is_active": true}).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	workspaces := []domain.Workspace{}
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		workspaces = append(workspaces, *ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	return workspaces, nil
}

// Create inserts a new workspace and returns the persisted row.
func (r *Repo) Create(ctx context.Context, ws domain.Workspace) (*domain.Workspace, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("workspaces").
		Columns(columns...).
		Values(ws.ID, string(ws.Role), ws.Name, ws.Description, ws.Icon, ws.Color,
			ws.IsActive, ws.DisplayOrder, ws.CreatedAt, ws.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanWorkspace(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "workspace", ws.ID.String())
	}
	return created, nil
}

// Delete removes a workspace. Child widgets, statistics, quick actions, and
// user preferences cascade at the schema level.
// Returns domain.ErrNotFound if the workspace does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("workspaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "workspace", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var ws domain.Workspace
	err := row.Scan(
		&ws.ID, &ws.Role, &ws.Name, &ws.Description, &ws.Icon, &ws.Color,
		&ws.IsActive, &ws.DisplayOrder, &ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}
