package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/topic"
)

type levelLister interface {
	ListLevels(ctx context.Context) ([]domain.Level, error)
}

type topicCatalog interface {
	ListTopics(ctx context.Context, input topic.ListTopicsInput) ([]domain.Topic, error)
	CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
}

// Scope is a level and one of its topics, resolved by name for the CLIs.
type Scope struct {
	Level domain.Level
	Topic domain.Topic
}

// ResolveScope finds a level and topic by name (case-insensitive). With
// createTopic a missing topic is created under the level.
func ResolveScope(
	ctx context.Context,
	levels levelLister,
	topics topicCatalog,
	levelName, topicName string,
	createTopic bool,
) (*Scope, error) {
	levelName, topicName = strings.TrimSpace(levelName), strings.TrimSpace(topicName)

	all, err := levels.ListLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}

	var sc Scope
	found := false
	for _, l := range all {
		if strings.EqualFold(l.Name, levelName) {
			sc.Level, found = l, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("level %q: %w", levelName, domain.ErrNotFound)
	}

	list, err := topics.ListTopics(ctx, topic.ListTopicsInput{LevelID: sc.Level.ID})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	for _, t := range list {
		if strings.EqualFold(t.Name, topicName) {
			sc.Topic = t
			return &sc, nil
		}
	}

	if !createTopic {
		return nil, fmt.Errorf("topic %q in level %q: %w", topicName, sc.Level.Name, domain.ErrNotFound)
	}

	created, err := topics.CreateTopic(ctx, topic.CreateTopicInput{Name: topicName, LevelID: sc.Level.ID})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	sc.Topic = *created
	return &sc, nil
}
