package word

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListByTopicFunc   func(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error)
	CountByTopicFunc  func(ctx context.Context, topicID uuid.UUID) (int, error)
	ExistsInTopicFunc func(ctx context.Context, german string, levelID, topicID uuid.UUID) (bool, error)
	LockTopicFunc     func(ctx context.Context, topicID uuid.UUID) error
	CreateFunc        func(ctx context.Context, in domain.WordInput) (*domain.Word, error)

	calls struct {
		ListByTopic []struct {
			Ctx     context.Context
			LevelID uuid.UUID
			TopicID uuid.UUID
		}
		CountByTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		ExistsInTopic []struct {
			Ctx     context.Context
			German  string
			LevelID uuid.UUID
			TopicID uuid.UUID
		}
		LockTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			In  domain.WordInput
		}
	}
	lockListByTopic   sync.RWMutex
	lockCountByTopic  sync.RWMutex
	lockExistsInTopic sync.RWMutex
	lockLockTopic     sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *wordRepoMock) LockTopic(ctx context.Context, topicID uuid.UUID) error {
	if mock.LockTopicFunc == nil {
		panic("wordRepoMock.LockTopicFunc: method is nil but wordRepo.LockTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockLockTopic.Lock()
	mock.calls.LockTopic = append(mock.calls.LockTopic, callInfo)
	mock.lockLockTopic.Unlock()
	return mock.LockTopicFunc(ctx, topicID)
}

func (mock *wordRepoMock) LockTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockLockTopic.RLock()
	calls := mock.calls.LockTopic
	mock.lockLockTopic.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListByTopic(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error) {
	if mock.ListByTopicFunc == nil {
		panic("wordRepoMock.ListByTopicFunc: method is nil but wordRepo.ListByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LevelID uuid.UUID
		TopicID uuid.UUID
	}{Ctx: ctx, LevelID: levelID, TopicID: topicID}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, callInfo)
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, levelID, topicID)
}

func (mock *wordRepoMock) ListByTopicCalls() []struct {
	Ctx     context.Context
	LevelID uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}

func (mock *wordRepoMock) CountByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	if mock.CountByTopicFunc == nil {
		panic("wordRepoMock.CountByTopicFunc: method is nil but wordRepo.CountByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockCountByTopic.Lock()
	mock.calls.CountByTopic = append(mock.calls.CountByTopic, callInfo)
	mock.lockCountByTopic.Unlock()
	return mock.CountByTopicFunc(ctx, topicID)
}

func (mock *wordRepoMock) CountByTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockCountByTopic.RLock()
	calls := mock.calls.CountByTopic
	mock.lockCountByTopic.RUnlock()
	return calls
}

func (mock *wordRepoMock) ExistsInTopic(ctx context.Context, german string, levelID, topicID uuid.UUID) (bool, error) {
	if mock.ExistsInTopicFunc == nil {
		panic("wordRepoMock.ExistsInTopicFunc: method is nil but wordRepo.ExistsInTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		German  string
		LevelID uuid.UUID
		TopicID uuid.UUID
	}{Ctx: ctx, German: german, LevelID: levelID, TopicID: topicID}
	mock.lockExistsInTopic.Lock()
	mock.calls.ExistsInTopic = append(mock.calls.ExistsInTopic, callInfo)
	mock.lockExistsInTopic.Unlock()
	return mock.ExistsInTopicFunc(ctx, german, levelID, topicID)
}

func (mock *wordRepoMock) ExistsInTopicCalls() []struct {
	Ctx     context.Context
	German  string
	LevelID uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockExistsInTopic.RLock()
	calls := mock.calls.ExistsInTopic
	mock.lockExistsInTopic.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, in domain.WordInput) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.WordInput
	}{Ctx: ctx, In: in}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, in)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx context.Context
	In  domain.WordInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
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

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
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

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
