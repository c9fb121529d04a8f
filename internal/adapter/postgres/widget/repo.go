// Package widget implements the Widget repository using PostgreSQL.
package widget

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
	"id", "workspace_id", "type", "title", "description", "icon", "color",
	"config", "position", "width", "height", "is_visible", "is_required",
	"created_at", "updated_at",
}

// Repo provides widget persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new widget repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByWorkspace returns all widgets of a workspace ordered by position.
// Returns an empty slice when the workspace has no widgets.
func (r *Repo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("widgets").
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list widgets: %w", err)
	}
	defer rows.Close()

	widgets := []domain.Widget{}
	for rows.Next() {
		w, err := scanWidget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan widget: %w", err)
		}
		widgets = append(widgets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list widgets: %w", err)
	}

	return widgets, nil
}

// GetByID returns a widget by primary key.
// Returns domain.ErrNotFound if the widget does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("widgets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	w, err := scanWidget(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget", id.String())
	}
	return w, nil
}

// Create inserts a new widget and returns the persisted row.
func (r *Repo) Create(ctx context.Context, w domain.Widget) (*domain.Widget, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("widgets").
		Columns(columns...).
		Values(w.ID, w.WorkspaceID, string(w.Type), w.Title, w.Description, w.Icon, w.Color,
			w.Config, w.Position, w.Width, w.Height, w.IsVisible, w.IsRequired,
			w.CreatedAt, w.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanWidget(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "widget", w.ID.String())
	}
	return created, nil
}

func scanWidget(row pgx.Row) (*domain.Widget, error) {
	var w domain.Widget
	err := row.Scan(
		&w.ID, &w.WorkspaceID, &w.Type, &w.Title, &w.Description, &w.Icon, &w.Color,
		&w.Config, &w.Position, &w.Width, &w.Height, &w.IsVisible, &w.IsRequired,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
