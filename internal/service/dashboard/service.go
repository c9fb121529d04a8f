// Package dashboard is the read side of the workspace personalization
// engine: it loads a workspace definition together with the user's
// preference, resolves them into a single dashboard view, and annotates
// statistics with cache freshness.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// workspaceRepo defines the workspace lookups needed by the dashboard service.
type workspaceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	GetActiveByRole(ctx context.Context, role domain.WorkspaceRole) (*domain.Workspace, error)
}

// widgetRepo defines the widget lookups needed by the dashboard service.
type widgetRepo interface {
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Widget, error)
}

// statisticRepo defines the statistic lookups and the computed-value write
// performed on refresh.
type statisticRepo interface {
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Statistic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error)
	UpdateComputed(ctx context.Context, id uuid.UUID, value string, trend *float64,
		direction *domain.TrendDirection, calculatedAt time.Time) (*domain.Statistic, error)
}

// quickActionRepo defines the quick action lookups needed by the dashboard service.
type quickActionRepo interface {
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.QuickAction, error)
}

// preferenceRepo defines the read-only preference lookups needed here;
// all preference writes go through the customization service.
type preferenceRepo interface {
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.UserPreference, error)
	FindDefaultWorkspace(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

// ComputedStatistic is the result of an upstream recomputation.
type ComputedStatistic struct {
	Value          string
	Trend          *float64
	TrendDirection *domain.TrendDirection
	CalculatedAt   time.Time
}

// statisticsProvider recomputes a statistic's value upstream. The engine
// never computes replacement values itself.
type statisticsProvider interface {
	Recompute(ctx context.Context, statID uuid.UUID) (ComputedStatistic, error)
}

// authorizer answers permission checks for quick action filtering. The
// result is never cached by the engine beyond the resolved-dashboard TTL.
type authorizer interface {
	HasPermission(ctx context.Context, userID uuid.UUID, permission string) (bool, error)
}

// badgeProvider supplies live badge counts for quick actions. A nil count
// means the badge renders as absent.
type badgeProvider interface {
	BadgeCount(ctx context.Context, source string) (*int, error)
}

// Service implements dashboard loading and statistic refresh.
type Service struct {
	log        *slog.Logger
	workspaces workspaceRepo
	widgets    widgetRepo
	stats      statisticRepo
	actions    quickActionRepo
	prefs      preferenceRepo
	provider   statisticsProvider
	authz      authorizer
	badges     badgeProvider
	cache      *Cache
	now        func() time.Time
}

// NewService creates a new dashboard service. cache may be nil to disable
// resolved-dashboard caching.
func NewService(
	logger *slog.Logger,
	workspaces workspaceRepo,
	widgets widgetRepo,
	stats statisticRepo,
	actions quickActionRepo,
	prefs preferenceRepo,
	provider statisticsProvider,
	authz authorizer,
	badges badgeProvider,
	cache *Cache,
) *Service {
	return &Service{
		log:        logger.With("service", "dashboard"),
		workspaces: workspaces,
		widgets:    widgets,
		stats:      stats,
		actions:    actions,
		prefs:      prefs,
		provider:   provider,
		authz:      authz,
		badges:     badges,
		cache:      cache,
		now:        time.Now,
	}
}
