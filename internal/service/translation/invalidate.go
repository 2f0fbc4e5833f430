package translation

import "github.com/localehub/catalog-backend/internal/cache"

// Cache coherence rules. Every mutating operation calls one of these
// before returning, so a read issued after the mutation never sees a
// stale entry from this process's cache.

// invalidateTranslation drops the cached views touched by a single
// translation's mutation: both single-entry lookups, the locale listing,
// and the exports derived from that locale.
func (s *Service) invalidateTranslation(id int64, key, locale string) {
	s.cache.Delete(cache.TranslationByID(id))
	s.cache.Delete(cache.TranslationByKey(locale, key))
	s.cache.Delete(cache.TranslationsByLocale(locale))
	s.cache.Delete(cache.ExportByLocale(locale))
	s.cache.Delete(cache.ExportAll())
}

// invalidateResolvedTags drops the tag views a find-or-create pass may
// have changed. GetOrCreate does not report whether it inserted a row,
// so every referenced name purges its own entry plus the full listing.
func (s *Service) invalidateResolvedTags(names []string) {
	for _, name := range names {
		s.cache.Delete(cache.TagByName(name))
	}
	s.cache.Delete(cache.TagsAll())
}

// invalidateLocale drops everything a locale-wide mutation may have
// touched. Single-entry keys embed the id, which a bulk delete does not
// enumerate, so the whole translation prefix goes.
func (s *Service) invalidateLocale(locale string) {
	s.cache.DeleteByPrefix(cache.TranslationPrefix())
	s.cache.Delete(cache.TranslationsByLocale(locale))
	s.cache.Delete(cache.ExportByLocale(locale))
	s.cache.Delete(cache.ExportAll())
}
