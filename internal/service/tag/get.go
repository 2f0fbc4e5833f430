package tag

import (
	"context"
	"fmt"

	"github.com/localehub/catalog-backend/internal/cache"
	"github.com/localehub/catalog-backend/internal/domain"
)

// Get returns a tag by id, read-through cached.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	key := cache.TagByID(id)
	if v, ok := s.cache.Get(key); ok {
		return v.(*domain.Tag), nil
	}

	tg, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, tg)
	return tg, nil
}

// GetByName returns a tag by exact name, read-through cached.
func (s *Service) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	key := cache.TagByName(name)
	if v, ok := s.cache.Get(key); ok {
		return v.(*domain.Tag), nil
	}

	tg, err := s.tags.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, tg)
	return tg, nil
}

// List returns every tag ordered by name, read-through cached.
func (s *Service) List(ctx context.Context) ([]domain.Tag, error) {
	key := cache.TagsAll()
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.Tag), nil
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	s.cache.Set(key, tags)
	return tags, nil
}

// SearchByName returns tags whose name contains the term,
// case-insensitively. Not cached.
func (s *Service) SearchByName(ctx context.Context, term string) ([]domain.Tag, error) {
	tags, err := s.tags.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}
	return tags, nil
}

// MostUsed returns tags ranked by how many translations carry them.
// A non-positive limit falls back to the default.
func (s *Service) MostUsed(ctx context.Context, limit int) ([]domain.TagUsage, error) {
	if limit <= 0 {
		limit = defaultMostUsedLimit
	}

	usages, err := s.tags.MostUsed(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("most used tags: %w", err)
	}
	return usages, nil
}
