package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// RefreshStatistic asks the upstream provider to recompute one statistic
// and persists the result with its new calculation timestamp.
//
// Only the statistic's own freshness changes; cached resolved dashboards
// are left alone and pick up the new value once their TTL lapses.
func (s *Service) RefreshStatistic(ctx context.Context, statID uuid.UUID) (*domain.Statistic, error) {
	if statID == uuid.Nil {
		return nil, domain.NewValidationError("statistic_id", "required")
	}

	computed, err := s.provider.Recompute(ctx, statID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RefreshStatistic: recompute: %w", err)
	}

	updated, err := s.stats.UpdateComputed(ctx, statID,
		computed.Value, computed.Trend, computed.TrendDirection, computed.CalculatedAt)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RefreshStatistic: persist: %w", err)
	}

	s.log.InfoContext(ctx, "statistic refreshed",
		slog.String("statistic_id", statID.String()),
		slog.String("key", updated.Key),
		slog.Time("calculated_at", updated.LastCalculatedAt),
	)

	return updated, nil
}
