package populate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/domain"
)

// Result holds the outcome of one pipeline run.
type Result struct {
	Inserted int
	Batches  int
	Duration time.Duration
}

// Pipeline orchestrates the batched ingestion of synthetic translations.
type Pipeline struct {
	log          *slog.Logger
	translations TranslationBulkRepo
	tags         TagCatalogRepo
	txm          *postgres.TxManager
	cfg          Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	log *slog.Logger,
	translations TranslationBulkRepo,
	tags TagCatalogRepo,
	txm *postgres.TxManager,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		log:          log.With("component", "populate"),
		translations: translations,
		tags:         tags,
		txm:          txm,
		cfg:          cfg,
	}
}

// Run executes the pipeline: ensure the tag taxonomy exists, then write
// TargetCount records in BatchSize transactions. Each batch is its own
// transaction, so a mid-run failure loses at most the failing batch and
// leaves everything before it committed. Cancellation is honored between
// batches, never inside one.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	p.cfg.Normalize()

	start := time.Now()

	tags, err := p.ensureTagCatalog(ctx)
	if err != nil {
		return nil, err
	}

	gen := newGenerator(p.cfg.Seed, p.cfg.StartAt, tags)
	result := &Result{}

	p.log.InfoContext(ctx, "pipeline starting",
		"target", p.cfg.TargetCount,
		"batch_size", p.cfg.BatchSize,
		"start_at", p.cfg.StartAt,
		"seed", p.cfg.Seed)

	for result.Inserted < p.cfg.TargetCount {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("pipeline canceled after %d batches: %w", result.Batches, err)
		}

		size := p.cfg.BatchSize
		if remaining := p.cfg.TargetCount - result.Inserted; remaining < size {
			size = remaining
		}

		inserted, err := p.translations.BulkInsert(ctx, p.txm, gen.batch(size))
		if err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("batch %d: %w", result.Batches+1, err)
		}

		result.Inserted += inserted
		result.Batches++

		if result.Batches%p.cfg.ProgressEvery == 0 {
			p.log.InfoContext(ctx, "pipeline progress",
				"batches", result.Batches,
				"inserted", result.Inserted,
				"target", p.cfg.TargetCount)
		}
	}

	result.Duration = time.Since(start)
	p.log.InfoContext(ctx, "pipeline finished",
		"inserted", result.Inserted,
		"batches", result.Batches,
		"duration", result.Duration.String())

	return result, nil
}

// ensureTagCatalog resolves the fixed taxonomy, creating missing tags.
// Idempotent across runs.
func (p *Pipeline) ensureTagCatalog(ctx context.Context) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(tagCatalog))
	for _, entry := range tagCatalog {
		desc := entry.Description
		tg, err := p.tags.GetOrCreate(ctx, entry.Name, &desc)
		if err != nil {
			return nil, fmt.Errorf("ensure tag %q: %w", entry.Name, err)
		}
		tags = append(tags, *tg)
	}
	return tags, nil
}
