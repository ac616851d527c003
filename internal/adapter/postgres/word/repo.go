// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const table = "words"

var columns = []string{"id", "german", "chinese", "level_id", "topic_id", "created_at"}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new word repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ListByTopic returns the words of a (level, topic) pair in insertion order.
// Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByTopic(ctx context.Context, levelID, topicID uuid.UUID) ([]domain.Word, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"level_id": levelID, "topic_id": topicID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list words: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", postgres.Classify(err))
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.German, &w.Chinese, &w.LevelID, &w.TopicID, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list words: %w", postgres.Classify(err))
	}

	return words, nil
}

// CountByTopic returns the number of words in a topic.
func (r *Repo) CountByTopic(ctx context.Context, topicID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"topic_id": topicID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count words: %w", err)
	}

	var count int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words: %w", postgres.Classify(err))
	}

	return int(count), nil
}

// ExistsInTopic reports whether a word with exactly this German text is
// already stored for the (level, topic) pair.
func (r *Repo) ExistsInTopic(ctx context.Context, german string, levelID, topicID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"german": german, "level_id": levelID, "topic_id": topicID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build word exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("word exists: %w", postgres.Classify(err))
	}

	return exists, nil
}

// LockTopic takes a transaction-scoped advisory lock on the topic so that
// concurrent imports into it run one after another. It only holds inside a
// transaction started by RunInTx.
func (r *Repo) LockTopic(ctx context.Context, topicID uuid.UUID) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, topicID.String()); err != nil {
		return fmt.Errorf("lock topic: %w", postgres.Classify(err))
	}
	return nil
}

// Create inserts a word and returns it.
// Returns domain.ErrNotFound if the level or topic does not exist.
func (r *Repo) Create(ctx context.Context, in domain.WordInput) (*domain.Word, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("german", "chinese", "level_id", "topic_id").
		Values(in.German, in.Chinese, in.LevelID, in.TopicID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create word: %w", err)
	}

	w := domain.Word{
		German:  in.German,
		Chinese: in.Chinese,
		LevelID: in.LevelID,
		TopicID: in.TopicID,
	}
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}

	return &w, nil
}
