package customization

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/workboardhq/workboard-backend/internal/domain"
)

var (
	_ preferenceRepo = &preferenceRepoMock{}
	_ txManager      = &txManagerMock{}
	_ invalidator    = &invalidatorMock{}
)

type preferenceRepoMock struct {
	GetFunc    func(ctx context.Context, userID, workspaceID uuid.UUID) (*domain.UserPreference, error)
	UpsertFunc func(ctx context.Context, pref domain.UserPreference) (*domain.UserPreference, error)
	DeleteFunc func(ctx context.Context, userID, workspaceID uuid.UUID) error

	calls struct {
		Get    []struct{ UserID, WorkspaceID uuid.UUID }
		Upsert []struct{ Pref domain.UserPreference }
		Delete []struct{ UserID, WorkspaceID uuid.UUID }
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

func (mock *preferenceRepoMock) Upsert(ctx context.Context, pref domain.UserPreference) (*domain.UserPreference, error) {
	if mock.UpsertFunc == nil {
		panic("preferenceRepoMock.UpsertFunc: method is nil but preferenceRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Pref domain.UserPreference }{Pref: pref})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, pref)
}

func (mock *preferenceRepoMock) UpsertCalls() []struct{ Pref domain.UserPreference } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

func (mock *preferenceRepoMock) Delete(ctx context.Context, userID, workspaceID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("preferenceRepoMock.DeleteFunc: method is nil but preferenceRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ UserID, WorkspaceID uuid.UUID }{UserID: userID, WorkspaceID: workspaceID})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, userID, workspaceID)
}

func (mock *preferenceRepoMock) DeleteCalls() []struct{ UserID, WorkspaceID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

// txManagerMock runs the transaction body inline, which is what the real
// manager does apart from the surrounding BEGIN/COMMIT.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}

type invalidatorMock struct {
	InvalidateFunc func(userID, workspaceID uuid.UUID)

	calls struct {
		Invalidate []struct{ UserID, WorkspaceID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *invalidatorMock) Invalidate(userID, workspaceID uuid.UUID) {
	mock.lock.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{ UserID, WorkspaceID uuid.UUID }{UserID: userID, WorkspaceID: workspaceID})
	mock.lock.Unlock()
	if mock.InvalidateFunc != nil {
		mock.InvalidateFunc(userID, workspaceID)
	}
}

func (mock *invalidatorMock) InvalidateCalls() []struct{ UserID, WorkspaceID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Invalidate
}
