// Package tag implements the Tag repository using PostgreSQL.
// Tag names are unique with exact-match semantics; GetOrCreate relies on the
// unique constraint (INSERT ... ON CONFLICT DO NOTHING + re-read) so that a
// concurrent find-or-create of the same name resolves to a single row.
package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tagColumns = "id, name, description, created_at"

const getByIDSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE id = $1`

const getByNameSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE name = $1`

const listSQL = `
SELECT ` + tagColumns + `
FROM tags
ORDER BY name`

const searchByNameSQL = `
SELECT ` + tagColumns + `
FROM tags
WHERE name ILIKE '%' || $1 || '%'
ORDER BY name`

const mostUsedSQL = `
SELECT t.id, t.name, t.description, t.created_at, COUNT(tt.translation_id) AS usage_count
FROM tags t
LEFT JOIN translation_tags tt ON tt.tag_id = t.id
GROUP BY t.id
ORDER BY usage_count DESC, t.name
LIMIT $1`

const insertSQL = `
INSERT INTO tags (name, description)
VALUES ($1, $2)
RETURNING ` + tagColumns

const insertOrSkipSQL = `
INSERT INTO tags (name, description)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING
RETURNING ` + tagColumns

const updateSQL = `
UPDATE tags
SET name = $2, description = $3
WHERE id = $1
RETURNING ` + tagColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tag by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := scanTagRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}

	return &tag, nil
}

// GetByName returns a tag by exact (case-sensitive) name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := scanTagRow(querier.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "tag", name)
	}

	return &tag, nil
}

// List returns all tags ordered by name.
// Returns an empty slice (not nil) when no tags exist.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "tags", "list")
	}
	defer rows.Close()

	return scanTags(rows)
}

// SearchByName returns tags whose name contains the given substring,
// case-insensitively, ordered by name.
func (r *Repo) SearchByName(ctx context.Context, name string) ([]domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, searchByNameSQL, name)
	if err != nil {
		return nil, postgres.MapError(err, "tags", name)
	}
	defer rows.Close()

	return scanTags(rows)
}

// MostUsed returns up to limit tags ranked by how many translations use them.
func (r *Repo) MostUsed(ctx context.Context, limit int) ([]domain.TagUsage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, mostUsedSQL, limit)
	if err != nil {
		return nil, postgres.MapError(err, "tags", "most-used")
	}
	defer rows.Close()

	usages := []domain.TagUsage{}
	for rows.Next() {
		var u domain.TagUsage
		if err := rows.Scan(&u.ID, &u.Name, &u.Description, &u.CreatedAt, &u.TranslationCount); err != nil {
			return nil, postgres.MapError(err, "tags", "most-used")
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "tags", "most-used")
	}

	return usages, nil
}

// Count returns the total number of tags.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, `SELECT COUNT(*) FROM tags`).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "tags", "count")
	}

	return count, nil
}

// ExistsByName reports whether a tag with the exact name exists.
func (r *Repo) ExistsByName(ctx context.Context, name string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tags WHERE name = $1)`, name).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "tag", name)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new tag.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, t *domain.Tag) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTagRow(querier.QueryRow(ctx, insertSQL, t.Name, t.Description))
	if err != nil {
		return nil, postgres.MapError(err, "tag", t.Name)
	}

	return &created, nil
}

// GetOrCreate resolves a tag name to an existing or freshly inserted row.
// The insert uses ON CONFLICT DO NOTHING; when another writer wins the race
// the conflicting insert returns no row and the existing one is re-read, so
// exactly one row per name survives concurrent resolution.
func (r *Repo) GetOrCreate(ctx context.Context, name string, description *string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTagRow(querier.QueryRow(ctx, insertOrSkipSQL, name, description))
	if err == nil {
		return &created, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "tag", name)
	}

	// Insert was skipped: the row already exists (possibly created a moment
	// ago by a concurrent caller). Adopt it.
	return r.GetByName(ctx, name)
}

// Update renames a tag and replaces its description.
// Returns domain.ErrNotFound for a missing id and domain.ErrAlreadyExists
// when the new name collides with another tag.
func (r *Repo) Update(ctx context.Context, id int64, name string, description *string) (*domain.Tag, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTagRow(querier.QueryRow(ctx, updateSQL, id, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "tag", id)
	}

	return &updated, nil
}

// Delete removes a tag by ID. Join rows in translation_tags are removed by
// the ON DELETE CASCADE constraint; translations themselves are untouched.
// Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "tag", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("tag %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTagRow(row pgx.Row) (domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.CreatedAt); err != nil {
		return domain.Tag{}, err
	}
	return t, nil
}

func scanTags(rows pgx.Rows) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	for rows.Next() {
		t, err := scanTagRow(rows)
		if err != nil {
			return nil, postgres.MapError(err, "tags", "scan")
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "tags", "scan")
	}
	return tags, nil
}
