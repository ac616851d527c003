package domain

import (
	"time"

	"github.com/google/uuid"
)

// Level is a proficiency tier (A1, B2, ...) grouping topics.
type Level struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Topic is a named unit of vocabulary within a Level.
type Topic struct {
	ID        uuid.UUID
	Name      string
	LevelID   uuid.UUID
	CreatedAt time.Time
	WordCount int // computed field, not stored in DB
}

// Word is a German–Chinese translation pair scoped to a Level and Topic.
type Word struct {
	ID        uuid.UUID
	German    string
	Chinese   string
	LevelID   uuid.UUID
	TopicID   uuid.UUID
	CreatedAt time.Time
}

// WordInput is one tuple of a bulk import.
type WordInput struct {
	German  string
	Chinese string
	LevelID uuid.UUID
	TopicID uuid.UUID
}
