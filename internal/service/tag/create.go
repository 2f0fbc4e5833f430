package tag

import (
	"context"
	"fmt"
	"strings"

	"github.com/localehub/catalog-backend/internal/domain"
)

// Create adds a new tag. Returns domain.ErrAlreadyExists when the name
// is taken.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Tag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	exists, err := s.tags.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	created, err := s.tags.Create(ctx, &domain.Tag{Name: name, Description: input.Description})
	if err != nil {
		return nil, err
	}

	s.invalidateTagListings()
	s.log.InfoContext(ctx, "tag created", "id", created.ID, "name", created.Name)

	return created, nil
}
