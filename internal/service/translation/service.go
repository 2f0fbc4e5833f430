// Package translation implements the catalog business logic for
// translations: creation, lookup, search, mutation, and the cache
// coherence rules around them.
package translation

import (
	"context"
	"log/slog"

	"github.com/localehub/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type translationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Translation, error)
	GetByKeyAndLocale(ctx context.Context, key, locale string) (*domain.Translation, error)
	ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error)
	ListByTag(ctx context.Context, tagName string) ([]domain.Translation, error)
	SearchContent(ctx context.Context, term string) ([]domain.Translation, error)
	Search(ctx context.Context, f domain.TranslationFilter) (*domain.Page, error)
	CountByLocale(ctx context.Context, locale string) (int, error)
	ExistsByKeyAndLocale(ctx context.Context, key, locale string) (bool, error)
	Create(ctx context.Context, tr *domain.Translation) (*domain.Translation, error)
	UpdateContent(ctx context.Context, id int64, content string) (*domain.Translation, error)
	SetTags(ctx context.Context, id int64, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
	DeleteByLocale(ctx context.Context, locale string) (int, error)
}

type tagRepo interface {
	GetOrCreate(ctx context.Context, name string, description *string) (*domain.Tag, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type resultCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	DeleteByPrefix(prefix string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the translation catalog business logic.
type Service struct {
	log          *slog.Logger
	translations translationRepo
	tags         tagRepo
	tx           txManager
	cache        resultCache
}

// NewService creates a new translation service.
func NewService(
	logger *slog.Logger,
	translations translationRepo,
	tags tagRepo,
	tx txManager,
	cache resultCache,
) *Service {
	return &Service{
		log:          logger.With("service", "translation"),
		translations: translations,
		tags:         tags,
		tx:           tx,
		cache:        cache,
	}
}
