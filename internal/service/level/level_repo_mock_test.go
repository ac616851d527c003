package level

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var _ levelRepo = &levelRepoMock{}

type levelRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Level, error)
	CreateFunc func(ctx context.Context, name string) (*domain.Level, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List   []struct{ Ctx context.Context }
		Create []struct {
			Ctx  context.Context
			Name string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *levelRepoMock) List(ctx context.Context) ([]domain.Level, error) {
	if mock.ListFunc == nil {
		panic("levelRepoMock.ListFunc: method is nil but levelRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Ctx context.Context }{Ctx: ctx})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *levelRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *levelRepoMock) Create(ctx context.Context, name string) (*domain.Level, error) {
	if mock.CreateFunc == nil {
		panic("levelRepoMock.CreateFunc: method is nil but levelRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name)
}

func (mock *levelRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *levelRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("levelRepoMock.DeleteFunc: method is nil but levelRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *levelRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
