// Package domain holds the catalog's core entities and the errors shared by
// every layer. Nothing here depends on storage, transport, or caching.
package domain

import (
	"strings"
	"time"
)

const (
	// MaxLocaleLen mirrors the column width of translations.locale.
	MaxLocaleLen = 10
)

// Translation is a single localized text value, uniquely identified by
// (Key, Locale). Tags is the authoritative side of the tag association;
// the reverse view (tag → translations) is always a query-time join.
type Translation struct {
	ID        int64
	Key       string
	Content   string
	Locale    string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tags      []Tag
}

// TagNames returns the names of the attached tags in attachment order.
func (t *Translation) TagNames() []string {
	names := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		names[i] = tag.Name
	}
	return names
}

// Validate checks field constraints for a create request.
func (t *Translation) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(t.Key) == "" {
		errs = append(errs, FieldError{Field: "key", Message: "must not be empty"})
	}
	locale := strings.TrimSpace(t.Locale)
	if locale == "" {
		errs = append(errs, FieldError{Field: "locale", Message: "must not be empty"})
	} else if len(locale) > MaxLocaleLen {
		errs = append(errs, FieldError{Field: "locale", Message: "must be at most 10 characters"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
