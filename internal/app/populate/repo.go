// Package populate fills the catalog with synthetic translations in
// batched transactions. It exists for demo environments and load tests.
package populate

import (
	"context"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/adapter/postgres/translation"
	"github.com/localehub/catalog-backend/internal/domain"
)

// TranslationBulkRepo is the batch write contract consumed by the
// pipeline. Implemented by translation.Repo.
type TranslationBulkRepo interface {
	BulkInsert(ctx context.Context, txm *postgres.TxManager, records []translation.BulkRecord) (int, error)
}

// TagCatalogRepo resolves the fixed tag taxonomy. Implemented by tag.Repo.
type TagCatalogRepo interface {
	GetOrCreate(ctx context.Context, name string, description *string) (*domain.Tag, error)
}
