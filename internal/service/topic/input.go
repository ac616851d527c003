package topic

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ListTopicsInput holds the parameters for listing the topics of a level.
type ListTopicsInput struct {
	LevelID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListTopicsInput) Validate() error {
	if i.LevelID == uuid.Nil {
		return domain.NewValidationError("level_id", "required")
	}
	return nil
}

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Name    string
	LevelID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max " + strconv.Itoa(MaxNameLength) + " characters"})
	}
	if i.LevelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "level_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}
