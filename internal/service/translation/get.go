package translation

import (
	"context"
	"fmt"

	"github.com/localehub/catalog-backend/internal/cache"
	"github.com/localehub/catalog-backend/internal/domain"
)

// Get returns a translation by id, read-through cached.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Translation, error) {
	key := cache.TranslationByID(id)
	if v, ok := s.cache.Get(key); ok {
		return v.(*domain.Translation), nil
	}

	tr, err := s.translations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, tr)
	return tr, nil
}

// GetByKeyAndLocale returns a translation by its natural key, read-through
// cached.
func (s *Service) GetByKeyAndLocale(ctx context.Context, translationKey, locale string) (*domain.Translation, error) {
	key := cache.TranslationByKey(locale, translationKey)
	if v, ok := s.cache.Get(key); ok {
		return v.(*domain.Translation), nil
	}

	tr, err := s.translations.GetByKeyAndLocale(ctx, translationKey, locale)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, tr)
	return tr, nil
}

// ListByLocale returns every translation of one locale, read-through cached.
func (s *Service) ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error) {
	key := cache.TranslationsByLocale(locale)
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.Translation), nil
	}

	items, err := s.translations.ListByLocale(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("list by locale: %w", err)
	}

	s.cache.Set(key, items)
	return items, nil
}

// ListByTag returns every translation carrying the named tag. Not cached;
// the tag view changes with every tag mutation and is rarely hot.
func (s *Service) ListByTag(ctx context.Context, tagName string) ([]domain.Translation, error) {
	items, err := s.translations.ListByTag(ctx, tagName)
	if err != nil {
		return nil, fmt.Errorf("list by tag: %w", err)
	}
	return items, nil
}

// CountByLocale reports how many translations a locale holds.
func (s *Service) CountByLocale(ctx context.Context, locale string) (int, error) {
	n, err := s.translations.CountByLocale(ctx, locale)
	if err != nil {
		return 0, fmt.Errorf("count by locale: %w", err)
	}
	return n, nil
}
