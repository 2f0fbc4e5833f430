package tag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localehub/catalog-backend/internal/domain"
)

// Update renames a tag and replaces its description. The new name must
// be unused, except by the tag itself.
func (s *Service) Update(ctx context.Context, id int64, input Input) (*domain.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name != current.Name {
		holder, err := s.tags.GetByName(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check name holder: %w", err)
		}
		if holder != nil && holder.ID != id {
			return nil, domain.ErrAlreadyExists
		}
	}

	updated, err := s.tags.Update(ctx, id, name, input.Description)
	if err != nil {
		return nil, err
	}

	s.invalidateTag(id, current.Name, updated.Name)
	s.log.InfoContext(ctx, "tag updated", "id", id, "name", updated.Name)

	return updated, nil
}

// Delete removes a tag. Association rows go with it; translations stay.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateTag(id, current.Name, current.Name)
	s.log.InfoContext(ctx, "tag deleted", "id", id, "name", current.Name)

	return nil
}
