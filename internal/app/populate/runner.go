package populate

import (
	"context"
	"log/slog"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
)

// resultCache is the serving process's result cache. A populate run writes
// translations and tags straight through the repos, so every cached region
// is suspect afterwards.
type resultCache interface {
	Purge()
}

// Runner executes pipeline runs with per-run parameters. It carries the
// wiring a Pipeline needs so callers only supply a Config, and it purges
// the result cache once records have landed.
type Runner struct {
	log          *slog.Logger
	translations TranslationBulkRepo
	tags         TagCatalogRepo
	txm          *postgres.TxManager
	cache        resultCache
}

// NewRunner creates a Runner.
func NewRunner(
	log *slog.Logger,
	translations TranslationBulkRepo,
	tags TagCatalogRepo,
	txm *postgres.TxManager,
	cache resultCache,
) *Runner {
	return &Runner{
		log:          log,
		translations: translations,
		tags:         tags,
		txm:          txm,
		cache:        cache,
	}
}

// Run builds a Pipeline for cfg and executes it. The cache is purged
// after any run that got past validation, including a run that failed
// partway: the tag catalog and every committed batch are live data, so
// any cached listing or export may already be stale.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	defer r.cache.Purge()
	return NewPipeline(r.log, r.translations, r.tags, r.txm, cfg).Run(ctx)
}
