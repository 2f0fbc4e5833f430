package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/localehub/catalog-backend/internal/domain"
)

// Create adds a new translation, attaching tags by name. Tag names that
// do not exist yet are created on the fly inside the same transaction.
// Returns domain.ErrAlreadyExists when (key, locale) is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Translation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := strings.TrimSpace(input.Key)
	locale := strings.TrimSpace(input.Locale)

	// Pre-check for a friendly conflict error. The unique constraint is
	// the real guard against concurrent creators.
	exists, err := s.translations.ExistsByKeyAndLocale(ctx, key, locale)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	tagNames := dedupeTagNames(input.Tags)

	var created *domain.Translation
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.translations.Create(txCtx, &domain.Translation{
			Key:     key,
			Content: input.Content,
			Locale:  locale,
		})
		if createErr != nil {
			return fmt.Errorf("create translation: %w", createErr)
		}

		tagIDs, tagsErr := s.resolveTagIDs(txCtx, tagNames)
		if tagsErr != nil {
			return tagsErr
		}
		if len(tagIDs) > 0 {
			if err := s.translations.SetTags(txCtx, created.ID, tagIDs); err != nil {
				return fmt.Errorf("attach tags: %w", err)
			}
			reloaded, getErr := s.translations.GetByID(txCtx, created.ID)
			if getErr != nil {
				return fmt.Errorf("reload translation: %w", getErr)
			}
			created = reloaded
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.invalidateTranslation(created.ID, created.Key, created.Locale)
	if len(tagNames) > 0 {
		s.invalidateResolvedTags(tagNames)
	}
	s.log.InfoContext(ctx, "translation created",
		"id", created.ID, "key", created.Key, "locale", created.Locale)

	return created, nil
}

// resolveTagIDs turns deduped tag names into ids, creating missing tags.
func (s *Service) resolveTagIDs(ctx context.Context, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		tg, err := s.tags.GetOrCreate(ctx, name, nil)
		if err != nil {
			return nil, fmt.Errorf("resolve tag %q: %w", name, err)
		}
		ids = append(ids, tg.ID)
	}
	return ids, nil
}
