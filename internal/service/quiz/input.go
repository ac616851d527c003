package quiz

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// StartSessionInput selects the word set of a new session.
type StartSessionInput struct {
	LevelID uuid.UUID
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i StartSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.LevelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "level_id", Message: "required"})
	}
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnswerInput selects an option of the pending question.
type AnswerInput struct {
	SessionID uuid.UUID
	Option    int
}

// Validate checks all fields and collects all errors.
func (i AnswerInput) Validate() error {
	if i.SessionID == uuid.Nil {
		return domain.NewValidationError("session_id", "required")
	}
	return nil
}
