package domain

import "strings"

const (
	DefaultPageSize = 50
	MaxPageSize     = 500

	SortByID        = "id"
	SortByKey       = "key"
	SortByLocale    = "locale"
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"

	SortOrderASC  = "ASC"
	SortOrderDESC = "DESC"
)

// TranslationFilter contains the sparse search parameters for translations.
// A nil or blank field contributes no constraint; present fields compose as
// a logical AND. An empty filter matches everything.
type TranslationFilter struct {
	// Locale filters by exact locale match.
	Locale *string

	// Key filters by case-insensitive key substring.
	Key *string

	// Content filters by case-insensitive content substring.
	Content *string

	// TagName requires at least one attached tag with this exact name.
	TagName *string

	// Page is the zero-indexed page number.
	Page int

	// Size is the page size. Default 50, max 500.
	Size int

	// SortBy is one of: id, key, locale, created_at, updated_at. Default: id.
	SortBy string

	// SortOrder is "ASC" or "DESC", case-insensitive. Default: ASC.
	SortOrder string
}

// Validate rejects parameters the caller got outright wrong. Blank filter
// fields are fine; a negative page or size is not. A zero size means
// absent here, so transports must reject an explicit non-positive size
// themselves before it becomes indistinguishable from a default.
func (f *TranslationFilter) Validate() error {
	var errs []FieldError

	if f.Page < 0 {
		errs = append(errs, FieldError{Field: "page", Message: "must not be negative"})
	}
	if f.Size < 0 {
		errs = append(errs, FieldError{Field: "size", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Normalize applies defaults and clamps values.
func (f *TranslationFilter) Normalize() {
	switch f.SortBy {
	case SortByID, SortByKey, SortByLocale, SortByCreatedAt, SortByUpdatedAt:
		// valid
	default:
		f.SortBy = SortByID
	}

	switch strings.ToUpper(f.SortOrder) {
	case SortOrderDESC:
		f.SortOrder = SortOrderDESC
	default:
		f.SortOrder = SortOrderASC
	}

	if f.Size <= 0 {
		f.Size = DefaultPageSize
	}
	if f.Size > MaxPageSize {
		f.Size = MaxPageSize
	}
	if f.Page < 0 {
		f.Page = 0
	}
}

// HasValue reports whether an optional string parameter is present and
// non-blank. Blank parameters are pass-through in the query composer.
func HasValue(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// Page is a single page of search results with the total match count.
type Page struct {
	Items      []Translation
	TotalCount int
	PageIndex  int
	PageSize   int
}
