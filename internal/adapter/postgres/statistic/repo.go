// Package statistic implements the Statistic repository using PostgreSQL.
package statistic

import (
	"context"
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
	"id", "workspace_id", "key", "label", "value", "type",
	"trend", "trend_direction", "target_value", "progress",
	"cache_duration_sec", "last_calculated_at", "created_at", "updated_at",
}

// Repo provides statistic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new statistic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByWorkspace returns all statistics of a workspace ordered by key.
// Returns an empty slice when the workspace has no statistics.
func (r *Repo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Statistic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("statistics").
		Where(squirrel.Eq{"workspace_id": workspaceID}).
		OrderBy("key ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryMany(ctx, q, sql, args)
}

// ListAll returns every statistic across all workspaces ordered by key.
// Used by the background refresher to sweep for stale values.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Statistic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("statistics").
		OrderBy("key ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	return r.queryMany(ctx, q, sql, args)
}

// GetByID returns a statistic by primary key.
// Returns domain.ErrNotFound if the statistic does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).
		From("statistics").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	st, err := scanStatistic(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "statistic", id.String())
	}
	return st, nil
}

// UpdateComputed persists a recomputed value together with its trend and
// calculation timestamp. Returns domain.ErrNotFound if the statistic does
// not exist.
func (r *Repo) UpdateComputed(ctx context.Context, id uuid.UUID, value string, trend *float64,
	direction *domain.TrendDirection, calculatedAt time.Time) (*domain.Statistic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("statistics").
		Set("value", value).
		Set("trend", trend).
		Set("trend_direction", (*string)(direction)).
		Set("last_calculated_at", calculatedAt).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	st, err := scanStatistic(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "statistic", id.String())
	}
	return st, nil
}

// Create inserts a new statistic and returns the persisted row.
func (r *Repo) Create(ctx context.Context, st domain.Statistic) (*domain.Statistic, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("statistics").
		Columns(columns...).
		Values(st.ID, st.WorkspaceID, st.Key, st.Label, st.Value, string(st.Type),
			st.Trend, (*string)(st.TrendDirection), st.TargetValue, st.Progress,
			st.CacheDurationSec, st.LastCalculatedAt, st.CreatedAt, st.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanStatistic(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "statistic", st.ID.String())
	}
	return created, nil
}

func (r *Repo) queryMany(ctx context.Context, q postgres.Querier, sql string, args []any) ([]domain.Statistic, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	defer rows.Close()

	stats := []domain.Statistic{}
	for rows.Next() {
		st, err := scanStatistic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan statistic: %w", err)
		}
		stats = append(stats, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}

	return stats, nil
}

func scanStatistic(row pgx.Row) (*domain.Statistic, error) {
	var (
		st        domain.Statistic
		direction *string
	)
	err := row.Scan(
		&st.ID, &st.WorkspaceID, &st.Key, &st.Label, &st.Value, &st.Type,
		&st.Trend, &direction, &st.TargetValue, &st.Progress,
		&st.CacheDurationSec, &st.LastCalculatedAt, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if direction != nil {
		d := domain.TrendDirection(*direction)
		st.TrendDirection = &d
	}
	return &st, nil
}
