package translation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
)

// BulkRecord is one synthetic translation plus the pre-resolved tag ids to
// attach. Keys carry a running sequence number, so within a pipeline run the
// (key, locale) pairs never collide.
type BulkRecord struct {
	Key     string
	Content string
	Locale  string
	TagIDs  []int64
}

// BulkInsert writes one batch of records atomically: every translation row is
// queued on a single pgx.Batch (INSERT ... RETURNING id), then the tag join
// rows go out on a second batch, all inside one transaction. A failure
// anywhere rolls back the whole batch; no partial batch is ever committed.
// The txManager is passed by the caller because batches must not piggyback on
// an outer transaction (one tx per batch is the pipeline's failure unit).
func (r *Repo) BulkInsert(ctx context.Context, txm *postgres.TxManager, records []BulkRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var inserted int
	err := txm.RunInTx(ctx, func(txCtx context.Context) error {
		querier := postgres.QuerierFromCtx(txCtx, r.pool)

		rowBatch := &pgx.Batch{}
		for _, rec := range records {
			rowBatch.Queue(
				`INSERT INTO translations (translation_key, content, locale)
				 VALUES ($1, $2, $3)
				 RETURNING id`,
				rec.Key, rec.Content, rec.Locale,
			)
		}

		ids := make([]int64, len(records))
		results := querier.SendBatch(txCtx, rowBatch)
		for i := range records {
			if err := results.QueryRow().Scan(&ids[i]); err != nil {
				_ = results.Close()
				return postgres.MapError(err, "translation", records[i].Key+"/"+records[i].Locale)
			}
		}
		if err := results.Close(); err != nil {
			return postgres.MapError(err, "translations", "bulk insert")
		}

		tagBatch := &pgx.Batch{}
		for i, rec := range records {
			for _, tagID := range rec.TagIDs {
				tagBatch.Queue(
					`INSERT INTO translation_tags (translation_id, tag_id) VALUES ($1, $2)
					 ON CONFLICT DO NOTHING`,
					ids[i], tagID,
				)
			}
		}
		if tagBatch.Len() > 0 {
			if err := querier.SendBatch(txCtx, tagBatch).Close(); err != nil {
				return postgres.MapError(err, "translation tags", "bulk insert")
			}
		}

		inserted = len(records)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("bulk insert batch: %w", err)
	}

	return inserted, nil
}
