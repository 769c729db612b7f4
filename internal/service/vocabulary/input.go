package vocabulary

import (
	"strings"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// GenerateInput selects what to generate.
type GenerateInput struct {
	Category   string
	Difficulty domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !domain.IsValidCategory(i.Category) {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be EASY, MIDDLE or HARD"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
