package cache

import "strconv"

// Key builders for the result cache. Every cached read derives its key
// through one of these so that the write paths can invalidate the exact
// same entries.

const (
	prefixTranslation  = "translation:"
	prefixTranslations = "translations:"
	prefixTag          = "tag:"
	prefixTags         = "tags:"
	prefixExport       = "export:"
)

// TranslationByID keys a single translation looked up by primary key.
func TranslationByID(id int64) string {
	return prefixTranslation + "id:" + strconv.FormatInt(id, 10)
}

// TranslationByKey keys a single translation looked up by (key, locale).
func TranslationByKey(locale, key string) string {
	return prefixTranslation + "key:" + locale + ":" + key
}

// TranslationsByLocale keys the full listing of one locale.
func TranslationsByLocale(locale string) string {
	return prefixTranslations + "locale:" + locale
}

// TagByID keys a single tag looked up by primary key.
func TagByID(id int64) string {
	return prefixTag + "id:" + strconv.FormatInt(id, 10)
}

// TagByName keys a single tag looked up by exact name.
func TagByName(name string) string {
	return prefixTag + "name:" + name
}

// TagsAll keys the complete tag listing.
func TagsAll() string {
	return prefixTags + "all"
}

// ExportByLocale keys a per-locale export document.
func ExportByLocale(locale string) string {
	return prefixExport + "locale:" + locale
}

// ExportAll keys the cross-locale export document.
func ExportAll() string {
	return prefixExport + "all"
}

// TranslationPrefix is the invalidation prefix covering every cached
// single-translation entry.
func TranslationPrefix() string { return prefixTranslation }

// TranslationsPrefix covers every cached locale listing.
func TranslationsPrefix() string { return prefixTranslations }

// TagPrefix covers every cached single-tag entry.
func TagPrefix() string { return prefixTag }

// TagsPrefix covers every cached tag listing.
func TagsPrefix() string { return prefixTags }

// ExportPrefix covers every cached export document.
func ExportPrefix() string { return prefixExport }
