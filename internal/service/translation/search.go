package translation

import (
	"context"
	"fmt"

	"github.com/localehub/catalog-backend/internal/domain"
)

// Search runs a sparse multi-criteria query. Results are never cached:
// the filter space is unbounded and pages would go stale wholesale.
func (s *Service) Search(ctx context.Context, f domain.TranslationFilter) (*domain.Page, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	page, err := s.translations.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search translations: %w", err)
	}
	return page, nil
}

// SearchContent returns translations whose content contains the term,
// case-insensitively.
func (s *Service) SearchContent(ctx context.Context, term string) ([]domain.Translation, error) {
	items, err := s.translations.SearchContent(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	return items, nil
}
