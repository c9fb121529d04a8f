// Package app wires configuration, storage, services, and the refresh
// worker into a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/workboardhq/workboard-backend/internal/adapter/postgres"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/preference"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/quickaction"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/statistic"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/widget"
	"github.com/workboardhq/workboard-backend/internal/adapter/postgres/workspace"
	"github.com/workboardhq/workboard-backend/internal/adapter/provider/authstatic"
	"github.com/workboardhq/workboard-backend/internal/adapter/provider/badgestub"
	"github.com/workboardhq/workboard-backend/internal/adapter/provider/statsource"
	"github.com/workboardhq/workboard-backend/internal/config"
	"github.com/workboardhq/workboard-backend/internal/service/customization"
	"github.com/workboardhq/workboard-backend/internal/service/dashboard"
	"github.com/workboardhq/workboard-backend/internal/worker"
)

// App holds the assembled application: services ready for a transport
// layer, plus the background refresher.
type App struct {
	Log           *slog.Logger
	Dashboard     *dashboard.Service
	Customization *customization.Service
	Refresher     *worker.StatRefresher

	closers []func()
}

// New builds the application from configuration: connects to PostgreSQL,
// constructs repositories, providers, services, and the refresh worker.
// Call Close when done.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	workspaces := workspace.New(pool)
	widgets := widget.New(pool)
	stats := statistic.New(pool)
	actions := quickaction.New(pool)
	prefs := preference.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Built-in providers; a real deployment swaps these for adapters to the
	// reporting pipeline and the identity service.
	statProvider := statsource.NewRestamp(stats)
	authz := authstatic.NewAllowAll()
	badges := badgestub.NewNone()

	cache := dashboard.NewCache(cfg.Dashboard.CacheTTL)

	dashboardSvc := dashboard.NewService(
		logger, workspaces, widgets, stats, actions, prefs,
		statProvider, authz, badges, cache,
	)
	customizationSvc := customization.NewService(logger, prefs, txManager, cache)

	refresherWorker := worker.NewStatRefresher(logger, stats, dashboardSvc, cfg.Refresher)

	return &App{
		Log:           logger,
		Dashboard:     dashboardSvc,
		Customization: customizationSvc,
		Refresher:     refresherWorker,
		closers:       []func(){pool.Close},
	}, nil
}

// Run assembles the application, starts the refresh worker, and blocks
// until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Refresher.Start(); err != nil {
		return err
	}
	defer a.Refresher.Stop()

	<-ctx.Done()
	a.Log.Info("shutting down")
	return nil
}

// Close releases held resources in reverse construction order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
