package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

var (
	_ workspaceRepo      = &workspaceRepoMock{}
	_ widgetRepo         = &widgetRepoMock{}
	_ statisticRepo      = &statisticRepoMock{}
	_ quickActionRepo    = &quickActionRepoMock{}
	_ preferenceRepo     = &preferenceRepoMock{}
	_ statisticsProvider = &statisticsProviderMock{}
	_ authorizer         = &authorizerMock{}
	_ badgeProvider      = &badgeProviderMock{}
)

type workspaceRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	GetActiveByRoleFunc func(ctx context.Context, role domain.WorkspaceRole) (*domain.Workspace, error)

	calls struct {
		GetByID         []struct{ ID uuid.UUID }
		GetActiveByRole []struct{ Role domain.WorkspaceRole }
	}
	lock sync.RWMutex
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *workspaceRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *workspaceRepoMock) GetActiveByRole(ctx context.Context, role domain.WorkspaceRole) (*domain.Workspace, error) {
	if mock.GetActiveByRoleFunc == nil {
		panic("workspaceRepoMock.GetActiveByRoleFunc: method is nil but workspaceRepo.GetActiveByRole was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActiveByRole = append(mock.calls.GetActiveByRole, struct{ Role domain.WorkspaceRole }{Role: role})
	mock.lock.Unlock()
	return mock.GetActiveByRoleFunc(ctx, role)
}

func (mock *workspaceRepoMock) GetActiveByRoleCalls() []struct{ Role domain.WorkspaceRole } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetActiveByRole
}

type widgetRepoMock struct {
	ListByWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID) ([]domain.Widget, error)

	calls struct {
		ListByWorkspace []struct{ WorkspaceID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *widgetRepoMock) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Widget, error) {
	if mock.ListByWorkspaceFunc == nil {
		panic("widgetRepoMock.ListByWorkspaceFunc: method is nil but widgetRepo.ListByWorkspace was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByWorkspace = append(mock.calls.ListByWorkspace, struct{ WorkspaceID uuid.UUID }{WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.ListByWorkspaceFunc(ctx, workspaceID)
}

func (mock *widgetRepoMock) ListByWorkspaceCalls() []struct{ WorkspaceID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByWorkspace
}

type statisticRepoMock struct {
	ListByWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID) ([]domain.Statistic, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Statistic, error)
	UpdateComputedFunc  func(ctx context.Context, id uuid.UUID, value string, trend *float64,
		direction *domain.TrendDirection, calculatedAt time.Time) (*domain.Statistic, error)

	calls struct {
		ListByWorkspace []struct{ WorkspaceID uuid.UUID }
		GetByID         []struct{ ID uuid.UUID }
		UpdateComputed  []struct {
			ID           uuid.UUID
			Value        string
			CalculatedAt time.Time
		}
	}
	lock sync.RWMutex
}

func (mock *statisticRepoMock) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Statistic, error) {
	if mock.ListByWorkspaceFunc == nil {
		panic("statisticRepoMock.ListByWorkspaceFunc: method is nil but statisticRepo.ListByWorkspace was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByWorkspace = append(mock.calls.ListByWorkspace, struct{ WorkspaceID uuid.UUID }{WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.ListByWorkspaceFunc(ctx, workspaceID)
}

func (mock *statisticRepoMock) ListByWorkspaceCalls() []struct{ WorkspaceID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByWorkspace
}

func (mock *statisticRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statistic, error) {
	if mock.GetByIDFunc == nil {
		panic("statisticRepoMock.GetByIDFunc: method is nil but statisticRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *statisticRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *statisticRepoMock) UpdateComputed(ctx context.Context, id uuid.UUID, value string, trend *float64,
	direction *domain.TrendDirection, calculatedAt time.Time) (*domain.Statistic, error) {
	if mock.UpdateComputedFunc == nil {
		panic("statisticRepoMock.UpdateComputedFunc: method is nil but statisticRepo.UpdateComputed was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateComputed = append(mock.calls.UpdateComputed, struct {
		ID           uuid.UUID
		Value        string
		CalculatedAt time.Time
	}{ID: id, Value: value, CalculatedAt: calculatedAt})
	mock.lock.Unlock()
	return mock.UpdateComputedFunc(ctx, id, value, trend, direction, calculatedAt)
}

func (mock *statisticRepoMock) UpdateComputedCalls() []struct {
	ID           uuid.UUID
	Value        string
	CalculatedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateComputed
}

type quickActionRepoMock struct {
	ListByWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID) ([]domain.QuickAction, error)

	calls struct {
		ListByWorkspace []struct{ WorkspaceID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *quickActionRepoMock) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.QuickAction, error) {
	if mock.ListByWorkspaceFunc == nil {
		panic("quickActionRepoMock.ListByWorkspaceFunc: method is nil but quickActionRepo.ListByWorkspace was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByWorkspace = append(mock.calls.ListByWorkspace, struct{ WorkspaceID uuid.UUID }{WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.ListByWorkspaceFunc(ctx, workspaceID)
}

func (mock *quickActionRepoMock) ListByWorkspaceCalls() []struct{ WorkspaceID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByWorkspace
}

type preferenceRepoMock struct {
	GetFunc                  func(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.UserPreference, error)
	FindDefaultWorkspaceFunc func(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)

	calls struct {
		Get                  []struct{ UserID, WorkspaceID uuid.UUID }
		FindDefaultWorkspace []struct{ UserID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *preferenceRepoMock) Get(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.UserPreference, error) {
	if mock.GetFunc == nil {
		panic("preferenceRepoMock.GetFunc: method is nil but preferenceRepo.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ UserID, WorkspaceID uuid.UUID }{UserID: userID, WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.GetFunc(ctx, userID, workspaceID)
}

func (mock *preferenceRepoMock) GetCalls() []struct{ UserID, WorkspaceID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Get
}

func (mock *preferenceRepoMock) FindDefaultWorkspace(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	if mock.FindDefaultWorkspaceFunc == nil {
		panic("preferenceRepoMock.FindDefaultWorkspaceFunc: method is nil but preferenceRepo.FindDefaultWorkspace was just called")
	}
	mock.lock.Lock()
	mock.calls.FindDefaultWorkspace = append(mock.calls.FindDefaultWorkspace, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.FindDefaultWorkspaceFunc(ctx, userID)
}

func (mock *preferenceRepoMock) FindDefaultWorkspaceCalls() []struct{ UserID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindDefaultWorkspace
}

type statisticsProviderMock struct {
	RecomputeFunc func(ctx context.Context, statID uuid.UUID) (ComputedStatistic, error)

	calls struct {
		Recompute []struct{ StatID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *statisticsProviderMock) Recompute(ctx context.Context, statID uuid.UUID) (ComputedStatistic, error) {
	if mock.RecomputeFunc == nil {
		panic("statisticsProviderMock.RecomputeFunc: method is nil but statisticsProvider.Recompute was just called")
	}
	mock.lock.Lock()
	mock.calls.Recompute = append(mock.calls.Recompute, struct{ StatID uuid.UUID }{StatID: statID})
	mock.lock.Unlock()
	return mock.RecomputeFunc(ctx, statID)
}

func (mock *statisticsProviderMock) RecomputeCalls() []struct{ StatID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Recompute
}

type authorizerMock struct {
	HasPermissionFunc func(ctx context.Context, userID uuid.UUID, permission string) (bool, error)

	calls struct {
		HasPermission []struct {
			UserID     uuid.UUID
			Permission string
		}
	}
	lock sync.RWMutex
}

func (mock *authorizerMock) HasPermission(ctx context.Context, userID uuid.UUID, permission string) (bool, error) {
	if mock.HasPermissionFunc == nil {
		panic("authorizerMock.HasPermissionFunc: method is nil but authorizer.HasPermission was just called")
	}
	mock.lock.Lock()
	mock.calls.HasPermission = append(mock.calls.HasPermission, struct {
		UserID     uuid.UUID
		Permission string
	}{UserID: userID, Permission: permission})
	mock.lock.Unlock()
	return mock.HasPermissionFunc(ctx, userID, permission)
}

func (mock *authorizerMock) HasPermissionCalls() []struct {
	UserID     uuid.UUID
	Permission string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.HasPermission
}

type badgeProviderMock struct {
	BadgeCountFunc func(ctx context.Context, source string) (*int, error)

	calls struct {
		BadgeCount []struct{ Source string }
	}
	lock sync.RWMutex
}

func (mock *badgeProviderMock) BadgeCount(ctx context.Context, source string) (*int, error) {
	if mock.BadgeCountFunc == nil {
		panic("badgeProviderMock.BadgeCountFunc: method is nil but badgeProvider.BadgeCount was just called")
	}
	mock.lock.Lock()
	mock.calls.BadgeCount = append(mock.calls.BadgeCount, struct{ Source string }{Source: source})
	mock.lock.Unlock()
	return mock.BadgeCountFunc(ctx, source)
}

func (mock *badgeProviderMock) BadgeCountCalls() []struct{ Source string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BadgeCount
}
