package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/localehub/catalog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueKey returns a translation key that will not collide across parallel tests.
func UniqueKey(prefix string) string {
	return prefix + "." + uniqueSuffix()
}

// SeedTag inserts a tag with a unique name and returns it.
func SeedTag(t *testing.T, pool *pgxpool.Pool, namePrefix string) domain.Tag {
	t.Helper()
	ctx := context.Background()

	tag := domain.Tag{Name: namePrefix + "-" + uniqueSuffix()}
	err := pool.QueryRow(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id, created_at`,
		tag.Name,
	).Scan(&tag.ID, &tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert: %v", err)
	}

	return tag
}

// SeedTranslation inserts a translation (no tags) and returns it.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, key, content, locale string) domain.Translation {
	t.Helper()
	ctx := context.Background()

	tr := domain.Translation{Key: key, Content: content, Locale: locale, Tags: []domain.Tag{}}
	err := pool.QueryRow(ctx,
		`INSERT INTO translations (translation_key, content, locale)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		key, content, locale,
	).Scan(&tr.ID, &tr.CreatedAt, &tr.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation insert: %v", err)
	}

	return tr
}

// LinkTag attaches an existing tag to an existing translation.
func LinkTag(t *testing.T, pool *pgxpool.Pool, translationID, tagID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO translation_tags (translation_id, tag_id) VALUES ($1, $2)`,
		translationID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: LinkTag insert: %v", err)
	}
}
