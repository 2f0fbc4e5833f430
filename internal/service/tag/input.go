package tag

import (
	"strings"

	"github.com/localehub/catalog-backend/internal/domain"
)

// Input holds the parameters for creating or updating a tag.
type Input struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i *Input) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > domain.MaxTagNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}
	if i.Description != nil && len(*i.Description) > domain.MaxTagDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
