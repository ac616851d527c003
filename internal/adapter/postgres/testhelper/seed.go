package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLevel creates a level with a unique name and returns it.
func SeedLevel(t *testing.T, pool *pgxpool.Pool) domain.Level {
	t.Helper()

	l := domain.Level{Name: "L-" + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO levels (name) VALUES ($1) RETURNING id, created_at`,
		l.Name,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLevel: %v", err)
	}

	return l
}

// SeedTopic creates a topic under levelID with a unique name and returns it.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, levelID uuid.UUID) domain.Topic {
	t.Helper()

	tp := domain.Topic{Name: "T-" + UniqueSuffix(), LevelID: levelID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO topics (name, level_id) VALUES ($1, $2) RETURNING id, created_at`,
		tp.Name, tp.LevelID,
	).Scan(&tp.ID, &tp.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return tp
}

// SeedWord inserts a word into the given topic and returns it.
func SeedWord(t *testing.T, pool *pgxpool.Pool, topic domain.Topic, german, chinese string) domain.Word {
	t.Helper()

	w := domain.Word{German: german, Chinese: chinese, LevelID: topic.LevelID, TopicID: topic.ID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO words (german, chinese, level_id, topic_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		w.German, w.Chinese, w.LevelID, w.TopicID,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}

	return w
}
