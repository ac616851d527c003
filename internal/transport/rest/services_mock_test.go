package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/level"
	"github.com/heartmarshall/wortschatz-backend/internal/service/topic"
	"github.com/heartmarshall/wortschatz-backend/internal/service/word"
)

var (
	_ levelService = &levelServiceMock{}
	_ topicService = &topicServiceMock{}
	_ wordService  = &wordServiceMock{}
)

type levelServiceMock struct {
	ListLevelsFunc  func(ctx context.Context) ([]domain.Level, error)
	CreateLevelFunc func(ctx context.Context, input level.CreateLevelInput) (*domain.Level, error)
	DeleteLevelFunc func(ctx context.Context, input level.DeleteLevelInput) error

	calls struct {
		CreateLevel []level.CreateLevelInput
		DeleteLevel []level.DeleteLevelInput
	}
	lock sync.RWMutex
}

func (mock *levelServiceMock) ListLevels(ctx context.Context) ([]domain.Level, error) {
	if mock.ListLevelsFunc == nil {
		panic("levelServiceMock.ListLevelsFunc: method is nil but levelService.ListLevels was just called")
	}
	return mock.ListLevelsFunc(ctx)
}

func (mock *levelServiceMock) CreateLevel(ctx context.Context, input level.CreateLevelInput) (*domain.Level, error) {
	if mock.CreateLevelFunc == nil {
		panic("levelServiceMock.CreateLevelFunc: method is nil but levelService.CreateLevel was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateLevel = append(mock.calls.CreateLevel, input)
	mock.lock.Unlock()
	return mock.CreateLevelFunc(ctx, input)
}

func (mock *levelServiceMock) DeleteLevel(ctx context.Context, input level.DeleteLevelInput) error {
	if mock.DeleteLevelFunc == nil {
		panic("levelServiceMock.DeleteLevelFunc: method is nil but levelService.DeleteLevel was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteLevel = append(mock.calls.DeleteLevel, input)
	mock.lock.Unlock()
	return mock.DeleteLevelFunc(ctx, input)
}

func (mock *levelServiceMock) CreateLevelCalls() []level.CreateLevelInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateLevel
}

func (mock *levelServiceMock) DeleteLevelCalls() []level.DeleteLevelInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DeleteLevel
}

type topicServiceMock struct {
	ListTopicsFunc  func(ctx context.Context, input topic.ListTopicsInput) ([]domain.Topic, error)
	CreateTopicFunc func(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	DeleteTopicFunc func(ctx context.Context, input topic.DeleteTopicInput) error

	calls struct {
		ListTopics  []topic.ListTopicsInput
		CreateTopic []topic.CreateTopicInput
	}
	lock sync.RWMutex
}

func (mock *topicServiceMock) ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("topicServiceMock.ListTopicsFunc: method is nil but topicService.ListTopics was just called")
	}
	mock.lock.Lock()
	mock.calls.ListTopics = append(mock.calls.ListTopics, input)
	mock.lock.Unlock()
	return mock.ListTopicsFunc(ctx, input)
}

func (mock *topicServiceMock) CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("topicServiceMock.CreateTopicFunc: method is nil but topicService.CreateTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, input)
	mock.lock.Unlock()
	return mock.CreateTopicFunc(ctx, input)
}

func (mock *topicServiceMock) DeleteTopic(ctx context.Context, input topic.DeleteTopicInput) error {
	if mock.DeleteTopicFunc == nil {
		panic("topicServiceMock.DeleteTopicFunc: method is nil but topicService.DeleteTopic was just called")
	}
	return mock.DeleteTopicFunc(ctx, input)
}

func (mock *topicServiceMock) ListTopicsCalls() []topic.ListTopicsInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListTopics
}

func (mock *topicServiceMock) CreateTopicCalls() []topic.CreateTopicInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateTopic
}

type wordServiceMock struct {
	ListWordsFunc   func(ctx context.Context, input word.ListWordsInput) ([]domain.Word, error)
	CountWordsFunc  func(ctx context.Context, input word.CountWordsInput) (int, error)
	ImportWordsFunc func(ctx context.Context, input word.ImportWordsInput) (*word.ImportResult, error)

	calls struct {
		ListWords   []word.ListWordsInput
		ImportWords []word.ImportWordsInput
	}
	lock sync.RWMutex
}

func (mock *wordServiceMock) ListWords(ctx context.Context, input word.ListWordsInput) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("wordServiceMock.ListWordsFunc: method is nil but wordService.ListWords was just called")
	}
	mock.lock.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, input)
	mock.lock.Unlock()
	return mock.ListWordsFunc(ctx, input)
}

func (mock *wordServiceMock) CountWords(ctx context.Context, input word.CountWordsInput) (int, error) {
	if mock.CountWordsFunc == nil {
		panic("wordServiceMock.CountWordsFunc: method is nil but wordService.CountWords was just called")
	}
	return mock.CountWordsFunc(ctx, input)
}

func (mock *wordServiceMock) ImportWords(ctx context.Context, input word.ImportWordsInput) (*word.ImportResult, error) {
	if mock.ImportWordsFunc == nil {
		panic("wordServiceMock.ImportWordsFunc: method is nil but wordService.ImportWords was just called")
	}
	mock.lock.Lock()
	mock.calls.ImportWords = append(mock.calls.ImportWords, input)
	mock.lock.Unlock()
	return mock.ImportWordsFunc(ctx, input)
}

func (mock *wordServiceMock) ListWordsCalls() []word.ListWordsInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListWords
}

func (mock *wordServiceMock) ImportWordsCalls() []word.ImportWordsInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ImportWords
}
