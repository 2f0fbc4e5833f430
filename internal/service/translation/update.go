package translation

import (
	"context"
	"fmt"

	"github.com/localehub/catalog-backend/internal/domain"
)

// Update changes a translation's content and, when input.Tags is non-nil,
// replaces its tag set. Content and tags move in one transaction.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (*domain.Translation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var tagNames []string
	if input.Tags != nil {
		tagNames = dedupeTagNames(input.Tags)
	}

	var updated *domain.Translation
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updErr error
		updated, updErr = s.translations.UpdateContent(txCtx, id, input.Content)
		if updErr != nil {
			return fmt.Errorf("update content: %w", updErr)
		}

		if input.Tags == nil {
			return nil
		}

		tagIDs, tagsErr := s.resolveTagIDs(txCtx, tagNames)
		if tagsErr != nil {
			return tagsErr
		}
		if err := s.translations.SetTags(txCtx, id, tagIDs); err != nil {
			return fmt.Errorf("replace tags: %w", err)
		}
		reloaded, getErr := s.translations.GetByID(txCtx, id)
		if getErr != nil {
			return fmt.Errorf("reload translation: %w", getErr)
		}
		updated = reloaded

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidateTranslation(updated.ID, updated.Key, updated.Locale)
	if len(tagNames) > 0 {
		s.invalidateResolvedTags(tagNames)
	}
	s.log.InfoContext(ctx, "translation updated", "id", updated.ID)

	return updated, nil
}
