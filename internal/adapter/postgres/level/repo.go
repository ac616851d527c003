// Package level implements the Level repository using PostgreSQL.
package level

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const (
	table = "levels"
)

var columns = []string{"id", "name", "created_at"}

// Repo provides level persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new level repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// List returns all levels ordered by name.
// Returns an empty slice (not nil) when there are no levels.
func (r *Repo) List(ctx context.Context) ([]domain.Level, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list levels: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", postgres.Classify(err))
	}
	defer rows.Close()

	levels := []domain.Level{}
	for rows.Next() {
		var l domain.Level
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list levels: %w", postgres.Classify(err))
	}

	return levels, nil
}

// GetByID returns a level by primary key.
// Returns domain.ErrNotFound if the level does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Level, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get level: %w", err)
	}

	var l domain.Level
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&l.ID, &l.Name, &l.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "level", id)
	}

	return &l, nil
}

// Create inserts a new level and returns it.
// Returns domain.ErrAlreadyExists if a level with the same name exists.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Level, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create level: %w", err)
	}

	l := domain.Level{Name: name}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&l.ID, &l.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "level", uuid.Nil)
	}

	return &l, nil
}

// Delete removes a level. CASCADE deletes its topics and words.
// Returns domain.ErrNotFound if the level does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete level: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "level", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("level %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
