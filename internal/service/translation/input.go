package translation

import (
	"strings"

	"github.com/localehub/catalog-backend/internal/domain"
)

const maxTagsPerTranslation = 20

// CreateInput holds the parameters for creating a translation.
type CreateInput struct {
	Key     string
	Content string
	Locale  string
	Tags    []string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Key) == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	locale := strings.TrimSpace(i.Locale)
	if locale == "" {
		errs = append(errs, domain.FieldError{Field: "locale", Message: "required"})
	} else if len(locale) > domain.MaxLocaleLen {
		errs = append(errs, domain.FieldError{Field: "locale", Message: "too long (max 10)"})
	}

	errs = append(errs, validateTagNames(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a translation.
// A nil Tags slice leaves the tag set untouched; an empty slice clears it.
type UpdateInput struct {
	Content string
	Tags    []string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	errs = append(errs, validateTagNames(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTagNames(names []string) []domain.FieldError {
	var errs []domain.FieldError

	if len(names) > maxTagsPerTranslation {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many (max 20)"})
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "blank tag name"})
			break
		}
		if len(name) > domain.MaxTagNameLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag name too long (max 100)"})
			break
		}
	}

	return errs
}

// dedupeTagNames returns the trimmed tag names with duplicates removed,
// preserving first-seen order.
func dedupeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
