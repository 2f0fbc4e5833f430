package domain

import (
	"strings"
	"time"
)

const (
	MaxTagNameLen        = 100
	MaxTagDescriptionLen = 500
)

// Tag is a reusable label attachable to many translations. Name is globally
// unique with exact-match (case-sensitive) semantics; lookups may be
// case-insensitive but the uniqueness constraint is not.
type Tag struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}

// TagUsage pairs a tag with the number of translations referencing it.
type TagUsage struct {
	Tag
	TranslationCount int
}

// Validate checks field constraints for a create or rename request.
func (t *Tag) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "must not be empty"})
	} else if len(t.Name) > MaxTagNameLen {
		errs = append(errs, FieldError{Field: "name", Message: "must be at most 100 characters"})
	}
	if t.Description != nil && len(*t.Description) > MaxTagDescriptionLen {
		errs = append(errs, FieldError{Field: "description", Message: "must be at most 500 characters"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
