package translation

import (
	"context"
	"fmt"
)

// Delete removes a translation by id. The association rows go with it.
// Returns domain.ErrNotFound when nothing matched.
func (s *Service) Delete(ctx context.Context, id int64) error {
	// Read first: invalidation needs the key and locale the row carried.
	tr, err := s.translations.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.translations.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateTranslation(tr.ID, tr.Key, tr.Locale)
	s.log.InfoContext(ctx, "translation deleted", "id", id)

	return nil
}

// DeleteByLocale removes every translation of one locale and reports how
// many went. Zero matches is a successful no-op, never an error.
func (s *Service) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	n, err := s.translations.DeleteByLocale(ctx, locale)
	if err != nil {
		return 0, fmt.Errorf("delete by locale: %w", err)
	}

	s.invalidateLocale(locale)
	s.log.InfoContext(ctx, "locale wiped", "locale", locale, "deleted", n)

	return n, nil
}
