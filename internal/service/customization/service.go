// Package customization is the write side of the workspace personalization
// engine: it validates a preference patch, merges it onto the stored
// preference in a single transaction, and offers a reset that deletes the
// preference row entirely.
package customization

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

// preferenceRepo defines the preference storage operations needed by the
// customization service. Upsert performs a whole-row write so two
// concurrent patches can never interleave at field granularity.
type preferenceRepo interface {
	Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.UserPreference, error)
	Upsert(ctx context.Context, pref domain.UserPreference) (*domain.UserPreference, error)
	Delete(ctx context.Context, userID, workspaceID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the
// customization service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// invalidator drops the cached resolved dashboard for a (user, workspace)
// pair after a successful write.
type invalidator interface {
	Invalidate(userID, workspaceID uuid.UUID)
}

// Service implements preference customization and reset.
type Service struct {
	log   *slog.Logger
	prefs preferenceRepo
	tx    txManager
	cache invalidator
	now   func() time.Time
}

// NewService creates a new customization service. cache may be nil when no
// dashboard cache is in use.
func NewService(
	logger *slog.Logger,
	prefs preferenceRepo,
	tx txManager,
	cache invalidator,
) *Service {
	return &Service{
		log:   logger.With("service", "customization"),
		prefs: prefs,
		tx:    tx,
		cache: cache,
		now:   time.Now,
	}
}

func (s *Service) invalidate(userID, workspaceID uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(userID, workspaceID)
	}
}
