package tag

import "github.com/localehub/catalog-backend/internal/cache"

// invalidateTag drops the cached views a tag mutation may have touched.
// Translations embed their tags, so cached translation entries and the
// exports built from them go stale together with the tag's own entries.
func (s *Service) invalidateTag(id int64, oldName, newName string) {
	s.cache.Delete(cache.TagByID(id))
	s.cache.Delete(cache.TagByName(oldName))
	if newName != oldName {
		s.cache.Delete(cache.TagByName(newName))
	}
	s.cache.Delete(cache.TagsAll())
	s.cache.DeleteByPrefix(cache.TranslationPrefix())
	s.cache.DeleteByPrefix(cache.TranslationsPrefix())
	s.cache.DeleteByPrefix(cache.ExportPrefix())
}

// invalidateTagListings drops only the listing views. A create cannot be
// embedded in any translation yet, so single-entry keys stay valid.
func (s *Service) invalidateTagListings() {
	s.cache.Delete(cache.TagsAll())
}
