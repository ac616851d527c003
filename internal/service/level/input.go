package level

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// CreateLevelInput holds the parameters for creating a level.
type CreateLevelInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateLevelInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max " + strconv.Itoa(MaxNameLength) + " characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeleteLevelInput holds the parameters for deleting a level.
type DeleteLevelInput struct {
	LevelID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteLevelInput) Validate() error {
	if i.LevelID == uuid.Nil {
		return domain.NewValidationError("level_id", "required")
	}
	return nil
}
