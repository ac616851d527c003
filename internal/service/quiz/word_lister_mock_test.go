package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var _ wordLister = &wordListerMock{}

type wordListerMock struct {
	ListByTopicFunc func(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error)

	calls struct {
		ListByTopic []struct {
			Ctx     context.Context
			LevelID uuid.UUID
			TopicID uuid.UUID
		}
	}
	lockListByTopic sync.RWMutex
}

func (mock *wordListerMock) ListByTopic(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error) {
	if mock.ListByTopicFunc == nil {
		panic("wordListerMock.ListByTopicFunc: method is nil but wordLister.ListByTopic was just called")
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

func (mock *wordListerMock) ListByTopicCalls() []struct {
	Ctx     context.Context
	LevelID uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}
