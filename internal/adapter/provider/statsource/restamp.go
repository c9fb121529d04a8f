// Package statsource provides statistic recomputation backends. The real
// deployment plugs the reporting pipeline in here; Restamp is the built-in
// fallback that keeps freshness bookkeeping working without one.
package statsource

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
	"github.com/workboardhq/workboard-backend/internal/service/dashboard"
)

// statReader reads the stored statistic being recomputed.
type statReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error)
}

// Restamp re-issues the stored value with a fresh calculation timestamp.
// The value, trend and direction are carried over unchanged.
type Restamp struct {
	stats statReader
	now   func() time.Time
}

// NewRestamp creates a recomputation provider that restamps stored values.
func NewRestamp(stats statReader) *Restamp {
	return &Restamp{stats: stats, now: time.Now}
}

// Recompute returns the statistic's current stored value with CalculatedAt
// set to now.
func (r *Restamp) Recompute(ctx context.Context, statID uuid.UUID) (dashboard.ComputedStatistic, error) {
	st, err := r.stats.GetByID(ctx, statID)
	if err != nil {
		return dashboard.ComputedStatistic{}, fmt.Errorf("statsource.Restamp: %w", err)
	}

	return dashboard.ComputedStatistic{
		Value:          st.Value,
		Trend:          st.Trend,
		TrendDirection: st.TrendDirection,
		CalculatedAt:   r.now().UTC(),
	}, nil
}
