package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListByLevelFunc  func(ctx context.Context, levelID uuid.UUID) ([]domain.Topic, error)
	ExistsByNameFunc func(ctx context.Context, levelID uuid.UUID, name string) (bool, error)
	CreateFunc       func(ctx context.Context, levelID uuid.UUID, name string) (*domain.Topic, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListByLevel []struct {
			Ctx     context.Context
			LevelID uuid.UUID
		}
		ExistsByName []struct {
			Ctx     context.Context
			LevelID uuid.UUID
			Name    string
		}
		Create []struct {
			Ctx     context.Context
			LevelID uuid.UUID
			Name    string
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListByLevel  sync.RWMutex
	lockExistsByName sync.RWMutex
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *topicRepoMock) ListByLevel(ctx context.Context, levelID uuid.UUID) ([]domain.Topic, error) {
	if mock.ListByLevelFunc == nil {
		panic("topicRepoMock.ListByLevelFunc: method is nil but topicRepo.ListByLevel was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LevelID uuid.UUID
	}{Ctx: ctx, LevelID: levelID}
	mock.lockListByLevel.Lock()
	mock.calls.ListByLevel = append(mock.calls.ListByLevel, callInfo)
	mock.lockListByLevel.Unlock()
	return mock.ListByLevelFunc(ctx, levelID)
}

func (mock *topicRepoMock) ListByLevelCalls() []struct {
	Ctx     context.Context
	LevelID uuid.UUID
} {
	mock.lockListByLevel.RLock()
	calls := mock.calls.ListByLevel
	mock.lockListByLevel.RUnlock()
	return calls
}

func (mock *topicRepoMock) ExistsByName(ctx context.Context, levelID uuid.UUID, name string) (bool, error) {
	if mock.ExistsByNameFunc == nil {
		panic("topicRepoMock.ExistsByNameFunc: method is nil but topicRepo.ExistsByName was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LevelID uuid.UUID
		Name    string
	}{Ctx: ctx, LevelID: levelID, Name: name}
	mock.lockExistsByName.Lock()
	mock.calls.ExistsByName = append(mock.calls.ExistsByName, callInfo)
	mock.lockExistsByName.Unlock()
	return mock.ExistsByNameFunc(ctx, levelID, name)
}

func (mock *topicRepoMock) ExistsByNameCalls() []struct {
	Ctx     context.Context
	LevelID uuid.UUID
	Name    string
} {
	mock.lockExistsByName.RLock()
	calls := mock.calls.ExistsByName
	mock.lockExistsByName.RUnlock()
	return calls
}

func (mock *topicRepoMock) Create(ctx context.Context, levelID uuid.UUID, name string) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LevelID uuid.UUID
		Name    string
	}{Ctx: ctx, LevelID: levelID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, levelID, name)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	LevelID uuid.UUID
	Name    string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
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

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ levelRepo = &levelRepoMock{}

type levelRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Level, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *levelRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Level, error) {
	if mock.GetByIDFunc == nil {
		panic("levelRepoMock.GetByIDFunc: method is nil but levelRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *levelRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
