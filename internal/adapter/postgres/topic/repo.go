// Package topic implements the Topic repository using PostgreSQL.
// Topics belong to exactly one level; list queries carry a computed word count.
package topic

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const table = "topics"

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new topic repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByLevel returns the topics of a level ordered by name, each with the
// number of words it holds. Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByLevel(ctx context.Context, levelID uuid.UUID) ([]domain.Topic, error) {
	query, args, err := postgres.Builder().
		Select("t.id", "t.name", "t.level_id", "t.created_at", "COUNT(w.id) AS word_count").
		From(table + " t").
		LeftJoin("words w ON w.topic_id = t.id").
		Where(squirrel.Eq{"t.level_id": levelID}).
		GroupBy("t.id").
		OrderBy("t.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", postgres.Classify(err))
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		t, err := scanTopicWithCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", postgres.Classify(err))
	}

	return topics, nil
}

// GetByID returns a topic by primary key. WordCount is left at zero.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "level_id", "created_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get topic: %w", err)
	}

	var t domain.Topic
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.Name, &t.LevelID, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return &t, nil
}

// ExistsByName reports whether a topic with the given name exists in a level.
func (r *Repo) ExistsByName(ctx context.Context, levelID uuid.UUID, name string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"level_id": levelID, "name": name}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build topic exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("topic exists: %w", postgres.Classify(err))
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a topic under a level and returns it.
// Returns domain.ErrNotFound if the level does not exist and
// domain.ErrAlreadyExists if the level already has a topic with that name.
func (r *Repo) Create(ctx context.Context, levelID uuid.UUID, name string) (*domain.Topic, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "level_id").
		Values(name, levelID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create topic: %w", err)
	}

	t := domain.Topic{Name: name, LevelID: levelID}
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return &t, nil
}

// Delete removes a topic. CASCADE deletes its words.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "topic", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func scanTopicWithCount(rows pgx.Rows) (domain.Topic, error) {
	var (
		t     domain.Topic
		count int64
	)
	if err := rows.Scan(&t.ID, &t.Name, &t.LevelID, &t.CreatedAt, &count); err != nil {
		return domain.Topic{}, err
	}
	t.WordCount = int(count)
	return t, nil
}
