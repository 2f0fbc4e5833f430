package domain

import "time"

// ExportLocaleAll is the sentinel locale reported by a cross-locale export.
// Keys in such an export are prefixed "locale." to stay unique in the flat map.
const ExportLocaleAll = "all"

// Export is a flattened snapshot of the catalog for one locale (or all).
type Export struct {
	Locale       string            `json:"locale"`
	Translations map[string]string `json:"translations"`
	Tags         []string          `json:"tags"`
	TotalCount   int               `json:"totalCount"`
	ExportedAt   time.Time         `json:"exportedAt"`
}
