// Package translation implements the Translation repository using PostgreSQL.
// Read queries join translation_tags/tags so callers always receive the tag
// set eagerly attached. The (translation_key, locale) unique constraint is the
// authority for conflict detection under concurrent creates.
package translation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/domain"
)

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const translationColumns = "t.id, t.translation_key, t.content, t.locale, t.created_at, t.updated_at"

const getByIDSQL = `
SELECT ` + translationColumns + `
FROM translations t
WHERE t.id = $1`

const getByKeyAndLocaleSQL = `
SELECT ` + translationColumns + `
FROM translations t
WHERE t.translation_key = $1 AND t.locale = $2`

const listByLocaleSQL = `
SELECT ` + translationColumns + `
FROM translations t
WHERE t.locale = $1
ORDER BY t.translation_key`

const listAllSQL = `
SELECT ` + translationColumns + `
FROM translations t
ORDER BY t.locale, t.translation_key`

const listByTagSQL = `
SELECT ` + translationColumns + `
FROM translations t
JOIN translation_tags tt ON tt.translation_id = t.id
JOIN tags tg ON tg.id = tt.tag_id
WHERE tg.name = $1
ORDER BY t.locale, t.translation_key`

const searchContentSQL = `
SELECT ` + translationColumns + `
FROM translations t
WHERE t.content ILIKE '%' || $1 || '%'
ORDER BY t.locale, t.translation_key`

const tagsForTranslationsSQL = `
SELECT tt.translation_id, tg.id, tg.name, tg.description, tg.created_at
FROM translation_tags tt
JOIN tags tg ON tg.id = tt.tag_id
WHERE tt.translation_id = ANY($1::bigint[])
ORDER BY tt.translation_id, tg.name`

const updateContentSQL = `
UPDATE translations
SET content = $2, updated_at = now()
WHERE id = $1
RETURNING id, translation_key, content, locale, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a translation with its tag set attached.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Translation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tr, err := scanTranslationRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "translation", id)
	}

	if err := r.attachTags(ctx, []*domain.Translation{&tr}); err != nil {
		return nil, err
	}

	return &tr, nil
}

// GetByKeyAndLocale returns the single translation identified by the
// (key, locale) pair, with tags attached.
func (r *Repo) GetByKeyAndLocale(ctx context.Context, key, locale string) (*domain.Translation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ref := key + "/" + locale
	tr, err := scanTranslationRow(querier.QueryRow(ctx, getByKeyAndLocaleSQL, key, locale))
	if err != nil {
		return nil, postgres.MapError(err, "translation", ref)
	}

	if err := r.attachTags(ctx, []*domain.Translation{&tr}); err != nil {
		return nil, err
	}

	return &tr, nil
}

// ListByLocale returns all translations for a locale ordered by key,
// with tags eagerly attached. Returns an empty slice (not nil) for an
// unknown locale.
func (r *Repo) ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error) {
	return r.list(ctx, listByLocaleSQL, locale)
}

// ListAll returns every translation in the catalog with tags attached,
// ordered by locale then key. Used by the cross-locale export.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Translation, error) {
	return r.list(ctx, listAllSQL)
}

// ListByTag returns translations carrying the exact tag name.
func (r *Repo) ListByTag(ctx context.Context, tagName string) ([]domain.Translation, error) {
	return r.list(ctx, listByTagSQL, tagName)
}

// SearchContent returns translations whose content contains the term,
// case-insensitively.
func (r *Repo) SearchContent(ctx context.Context, term string) ([]domain.Translation, error) {
	return r.list(ctx, searchContentSQL, term)
}

// CountByLocale returns the number of translations in a locale.
func (r *Repo) CountByLocale(ctx context.Context, locale string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, `SELECT COUNT(*) FROM translations WHERE locale = $1`, locale).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "translations", locale)
	}

	return count, nil
}

// Count returns the total number of translations.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, `SELECT COUNT(*) FROM translations`).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "translations", "count")
	}

	return count, nil
}

// ExistsByKeyAndLocale reports whether the (key, locale) pair is taken.
func (r *Repo) ExistsByKeyAndLocale(ctx context.Context, key, locale string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM translations WHERE translation_key = $1 AND locale = $2)`,
		key, locale,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "translation", key+"/"+locale)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a translation row. Tags are attached separately via SetTags
// inside the same transaction. Returns domain.ErrAlreadyExists when the
// (key, locale) pair is taken; under a concurrent create of the same pair
// the unique constraint guarantees exactly one winner.
func (r *Repo) Create(ctx context.Context, tr *domain.Translation) (*domain.Translation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTranslationRow(querier.QueryRow(ctx,
		`INSERT INTO translations (translation_key, content, locale)
		 VALUES ($1, $2, $3)
		 RETURNING id, translation_key, content, locale, created_at, updated_at`,
		tr.Key, tr.Content, tr.Locale,
	))
	if err != nil {
		return nil, postgres.MapError(err, "translation", tr.Key+"/"+tr.Locale)
	}

	created.Tags = []domain.Tag{}
	return &created, nil
}

// UpdateContent replaces the content and refreshes updated_at.
// Returns domain.ErrNotFound for a missing id. Tags are left untouched.
func (r *Repo) UpdateContent(ctx context.Context, id int64, content string) (*domain.Translation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTranslationRow(querier.QueryRow(ctx, updateContentSQL, id, content))
	if err != nil {
		return nil, postgres.MapError(err, "translation", id)
	}

	if err := r.attachTags(ctx, []*domain.Translation{&updated}); err != nil {
		return nil, err
	}

	return &updated, nil
}

// SetTags replaces the translation's tag set (clear-then-reattach) and
// refreshes updated_at. An empty tagIDs slice clears all associations.
func (r *Repo) SetTags(ctx context.Context, id int64, tagIDs []int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, `DELETE FROM translation_tags WHERE translation_id = $1`, id); err != nil {
		return postgres.MapError(err, "translation", id)
	}

	for _, tagID := range tagIDs {
		_, err := querier.Exec(ctx,
			`INSERT INTO translation_tags (translation_id, tag_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			id, tagID,
		)
		if err != nil {
			return postgres.MapError(err, "translation", id)
		}
	}

	if _, err := querier.Exec(ctx, `UPDATE translations SET updated_at = now() WHERE id = $1`, id); err != nil {
		return postgres.MapError(err, "translation", id)
	}

	return nil
}

// Delete removes a translation by ID. Its tag associations go with it via
// ON DELETE CASCADE; the tags themselves survive.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, `DELETE FROM translations WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "translation", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("translation %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByLocale removes every translation in a locale and returns the number
// of rows removed. Deleting an empty locale is not an error.
func (r *Repo) DeleteByLocale(ctx context.Context, locale string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, `DELETE FROM translations WHERE locale = $1`, locale)
	if err != nil {
		return 0, postgres.MapError(err, "translations", locale)
	}

	return int(ct.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// list runs a multi-row translation query and attaches tag sets in one
// follow-up batch query (two round trips total, regardless of result size).
func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.Translation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "translations", "list")
	}
	defer rows.Close()

	translations, err := scanTranslations(rows)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*domain.Translation, len(translations))
	for i := range translations {
		ptrs[i] = &translations[i]
	}
	if err := r.attachTags(ctx, ptrs); err != nil {
		return nil, err
	}

	return translations, nil
}

// attachTags loads tag sets for the given translations in a single query and
// distributes them. Translations without tags end up with an empty slice.
func (r *Repo) attachTags(ctx context.Context, translations []*domain.Translation) error {
	if len(translations) == 0 {
		return nil
	}

	ids := make([]int64, len(translations))
	byID := make(map[int64]*domain.Translation, len(translations))
	for i, tr := range translations {
		ids[i] = tr.ID
		byID[tr.ID] = tr
		tr.Tags = []domain.Tag{}
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, tagsForTranslationsSQL, ids)
	if err != nil {
		return postgres.MapError(err, "translation tags", "attach")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			translationID int64
			tag           domain.Tag
		)
		if err := rows.Scan(&translationID, &tag.ID, &tag.Name, &tag.Description, &tag.CreatedAt); err != nil {
			return postgres.MapError(err, "translation tags", "attach")
		}
		if tr, ok := byID[translationID]; ok {
			tr.Tags = append(tr.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return postgres.MapError(err, "translation tags", "attach")
	}

	return nil
}

func scanTranslationRow(row pgx.Row) (domain.Translation, error) {
	var tr domain.Translation
	if err := row.Scan(&tr.ID, &tr.Key, &tr.Content, &tr.Locale, &tr.CreatedAt, &tr.UpdatedAt); err != nil {
		return domain.Translation{}, err
	}
	return tr, nil
}

func scanTranslations(rows pgx.Rows) ([]domain.Translation, error) {
	translations := []domain.Translation{}
	for rows.Next() {
		tr, err := scanTranslationRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "translations", "scan")
		}
		translations = append(translations, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "translations", "scan")
	}
	return translations, nil
}
