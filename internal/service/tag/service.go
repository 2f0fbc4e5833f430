// Package tag implements the tag catalog business logic.
package tag

import (
	"context"
	"log/slog"

	"github.com/localehub/catalog-backend/internal/domain"
)

type tagRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	SearchByName(ctx context.Context, name string) ([]domain.Tag, error)
	MostUsed(ctx context.Context, limit int) ([]domain.TagUsage, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, id int64, name string, description *string) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

type resultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	DeleteByPrefix(prefix string)
}

// Service implements the tag catalog business logic.
type Service struct {
	log   *slog.Logger
	tags  tagRepo
	cache resultCache
}

// NewService creates a new tag service.
func NewService(logger *slog.Logger, tags tagRepo, cache resultCache) *Service {
	return &Service{
		log:   logger.With("service", "tag"),
		tags:  tags,
		cache: cache,
	}
}

const defaultMostUsedLimit = 20
