// Package export builds flattened catalog snapshots for download or
// hand-off to localization tooling.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/localehub/catalog-backend/internal/cache"
	"github.com/localehub/catalog-backend/internal/domain"
)

type translationLister interface {
	ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error)
	ListAll(ctx context.Context) ([]domain.Translation, error)
}

type resultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Service builds export documents. Results are cached; invalidation is
// owned by the translation and tag services, which purge export keys on
// every mutation.
type Service struct {
	log          *slog.Logger
	translations translationLister
	cache        resultCache
}

// NewService creates a new export service.
func NewService(logger *slog.Logger, translations translationLister, cache resultCache) *Service {
	return &Service{
		log:          logger.With("service", "export"),
		translations: translations,
		cache:        cache,
	}
}

// ByLocale flattens one locale into a key-to-content map plus the sorted
// distinct tag names seen across its translations.
func (s *Service) ByLocale(ctx context.Context, locale string) (*domain.Export, error) {
	cacheKey := cache.ExportByLocale(locale)
	if v, ok := s.cache.Get(cacheKey); ok {
		return v.(*domain.Export), nil
	}

	items, err := s.translations.ListByLocale(ctx, locale)
	if err != nil {
		return nil, fmt.Errorf("list locale %s: %w", locale, err)
	}

	doc := build(locale, items, func(tr *domain.Translation) string {
		return tr.Key
	})

	s.cache.Set(cacheKey, doc)
	s.log.InfoContext(ctx, "export built", "locale", locale, "count", doc.TotalCount)

	return doc, nil
}

// All flattens the entire catalog. Keys are prefixed with their locale
// ("en.home.title") so the flat map stays collision-free, and the
// document reports the sentinel locale "all".
func (s *Service) All(ctx context.Context) (*domain.Export, error) {
	cacheKey := cache.ExportAll()
	if v, ok := s.cache.Get(cacheKey); ok {
		return v.(*domain.Export), nil
	}

	items, err := s.translations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}

	doc := build(domain.ExportLocaleAll, items, func(tr *domain.Translation) string {
		return tr.Locale + "." + tr.Key
	})

	s.cache.Set(cacheKey, doc)
	s.log.InfoContext(ctx, "export built", "locale", domain.ExportLocaleAll, "count", doc.TotalCount)

	return doc, nil
}

func build(locale string, items []domain.Translation, mapKey func(*domain.Translation) string) *domain.Export {
	translations := make(map[string]string, len(items))
	tagSet := make(map[string]struct{})

	for i := range items {
		tr := &items[i]
		translations[mapKey(tr)] = tr.Content
		for _, tg := range tr.Tags {
			tagSet[tg.Name] = struct{}{}
		}
	}

	tags := make([]string, 0, len(tagSet))
	for name := range tagSet {
		tags = append(tags, name)
	}
	sort.Strings(tags)

	return &domain.Export{
		Locale:       locale,
		Translations: translations,
		Tags:         tags,
		TotalCount:   len(translations),
		ExportedAt:   time.Now().UTC(),
	}
}
