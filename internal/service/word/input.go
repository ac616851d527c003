package word

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ListWordsInput holds the parameters for listing the words of a topic.
type ListWordsInput struct {
	LevelID uuid.UUID
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListWordsInput) Validate() error {
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

// CountWordsInput holds the parameters for counting the words of a topic.
type CountWordsInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CountWordsInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

// ImportWordsInput holds one bulk import batch.
type ImportWordsInput struct {
	Words []domain.WordInput
}

// Validate checks all tuples and collects all errors. maxBatch <= 0 disables
// the size check.
func (i ImportWordsInput) Validate(maxBatch int) error {
	var errs []domain.FieldError

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "required (at least 1)"})
	} else if maxBatch > 0 && len(i.Words) > maxBatch {
		errs = append(errs, domain.FieldError{Field: "words", Message: "too many (max " + strconv.Itoa(maxBatch) + ")"})
	}

	for idx, w := range i.Words {
		if strings.TrimSpace(w.German) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIdx("words", idx, "german"), Message: "required"})
		}
		if strings.TrimSpace(w.Chinese) == "" {
			errs = append(errs, domain.FieldError{Field: fieldIdx("words", idx, "chinese"), Message: "required"})
		}
		if w.LevelID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fieldIdx("words", idx, "level_id"), Message: "required"})
		}
		if w.TopicID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: fieldIdx("words", idx, "topic_id"), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func fieldIdx(parent string, idx int, field string) string {
	return parent + "[" + strconv.Itoa(idx) + "]." + field
}
