// Package worker runs the scheduled statistic refresh sweep. Staleness is
// decided per statistic from its cache duration, so the sweep can run on a
// tight schedule without recomputing fresh values.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/workboardhq/workboard-backend/internal/config"
	"github.com/workboardhq/workboard-backend/internal/domain"
)

// statisticLister enumerates statistics across all workspaces.
type statisticLister interface {
	ListAll(ctx context.Context) ([]domain.Statistic, error)
}

// refresher recomputes and persists one statistic.
type refresher interface {
	RefreshStatistic(ctx context.Context, statID uuid.UUID) (*domain.Statistic, error)
}

// StatRefresher periodically sweeps stored statistics and refreshes the
// stale ones through the dashboard service.
type StatRefresher struct {
	log       *slog.Logger
	stats     statisticLister
	dashboard refresher
	cfg       config.RefresherConfig
	scheduler *cron.Cron
	now       func() time.Time
}

// NewStatRefresher creates the refresh worker. Call Start to begin sweeping.
func NewStatRefresher(logger *slog.Logger, stats statisticLister, dashboard refresher, cfg config.RefresherConfig) *StatRefresher {
	return &StatRefresher{
		log:       logger.With("worker", "stat_refresher"),
		stats:     stats,
		dashboard: dashboard,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Start registers the sweep on the configured cron schedule and starts the
// scheduler. It is a no-op when the worker is disabled.
func (w *StatRefresher) Start() error {
	if !w.cfg.Enabled {
		w.log.Info("refresher disabled, not starting")
		return nil
	}

	w.scheduler = cron.New()
	if _, err := w.scheduler.AddFunc(w.cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := w.RunOnce(ctx); err != nil {
			w.log.Error("refresh sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("worker.StatRefresher: register schedule: %w", err)
	}

	w.scheduler.Start()
	w.log.Info("refresher started", "schedule", w.cfg.Schedule, "batch_limit", w.cfg.BatchLimit)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (w *StatRefresher) Stop() {
	if w.scheduler == nil {
		return
	}
	<-w.scheduler.Stop().Done()
	w.log.Info("refresher stopped")
}

// SweepResult holds the outcome of one refresh sweep.
type SweepResult struct {
	Scanned   int
	Refreshed int
	Failed    int
}

// RunOnce scans all statistics and refreshes the stale ones, up to the
// configured batch limit. Individual refresh failures are logged and
// counted but do not abort the sweep.
func (w *StatRefresher) RunOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	stats, err := w.stats.ListAll(ctx)
	if err != nil {
		return result, fmt.Errorf("worker.StatRefresher: list statistics: %w", err)
	}
	result.Scanned = len(stats)

	now := w.now()
	for _, st := range stats {
		if !st.IsStale(now) {
			continue
		}
		if result.Refreshed+result.Failed >= w.cfg.BatchLimit {
			w.log.Info("batch limit reached, deferring remainder", "limit", w.cfg.BatchLimit)
			break
		}

		if _, err := w.dashboard.RefreshStatistic(ctx, st.ID); err != nil {
			result.Failed++
			w.log.Error("statistic refresh failed",
				"statistic_id", st.ID, "key", st.Key, "error", err)
			continue
		}
		result.Refreshed++
	}

	w.log.Info("refresh sweep finished",
		"scanned", result.Scanned, "refreshed", result.Refreshed, "failed", result.Failed)
	return result, nil
}
