package translation_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/adapter/postgres/testhelper"
	"github.com/localehub/catalog-backend/internal/adapter/postgres/translation"
	"github.com/localehub/catalog-backend/internal/domain"
)

func newRepo(t *testing.T) (*translation.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return translation.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	key := testhelper.UniqueKey("home.title")
	created, err := repo.Create(ctx, &domain.Translation{Key: key, Content: "Welcome", Locale: "en"})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Key != key || got.Content != "Welcome" || got.Locale != "en" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Errorf("expected empty tag slice, got %v", got.Tags)
	}
}

func TestRepo_Create_DuplicateKeyLocaleConflicts(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	key := testhelper.UniqueKey("dup.key")
	if _, err := repo.Create(ctx, &domain.Translation{Key: key, Content: "a", Locale: "en"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, &domain.Translation{Key: key, Content: "b", Locale: "en"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}

	// Same key under another locale is a different identity.
	if _, err := repo.Create(ctx, &domain.Translation{Key: key, Content: "c", Locale: "fr"}); err != nil {
		t.Errorf("same key other locale: %v", err)
	}
}

// Concurrent creates of one (key, locale) pair: exactly one success.
func TestRepo_Create_ConcurrentOneWinner(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	key := testhelper.UniqueKey("race.key")
	const workers = 8

	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = repo.Create(ctx, &domain.Translation{Key: key, Content: "x", Locale: "en"})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrAlreadyExists):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successes: got %d, want exactly 1", successes)
	}
	if conflicts != workers-1 {
		t.Errorf("conflicts: got %d, want %d", conflicts, workers-1)
	}
}

func TestRepo_GetByKeyAndLocale(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	key := testhelper.UniqueKey("lookup.key")
	seeded := testhelper.SeedTranslation(t, pool, key, "Bonjour", "fr")
	tg := testhelper.SeedTag(t, pool, "web")
	testhelper.LinkTag(t, pool, seeded.ID, tg.ID)

	got, err := repo.GetByKeyAndLocale(ctx, key, "fr")
	if err != nil {
		t.Fatalf("GetByKeyAndLocale: %v", err)
	}
	if got.ID != seeded.ID || got.Content != "Bonjour" {
		t.Errorf("mismatch: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != tg.Name {
		t.Errorf("tags not attached: %v", got.Tags)
	}

	_, err = repo.GetByKeyAndLocale(ctx, key, "de")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for wrong locale, got %v", err)
	}
}

func TestRepo_UpdateContent_RefreshesUpdatedAt(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedTranslation(t, pool, testhelper.UniqueKey("upd.key"), "old", "en")

	updated, err := repo.UpdateContent(ctx, seeded.ID, "new")
	if err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	if updated.Content != "new" {
		t.Errorf("content: got %q", updated.Content)
	}
	if !updated.UpdatedAt.After(seeded.UpdatedAt) {
		t.Errorf("updated_at not refreshed: %v vs %v", updated.UpdatedAt, seeded.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(seeded.CreatedAt) {
		t.Errorf("created_at must be immutable: %v vs %v", updated.CreatedAt, seeded.CreatedAt)
	}

	_, err = repo.UpdateContent(ctx, -1, "x")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_SetTags_ReplacesSet(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	tr := testhelper.SeedTranslation(t, pool, testhelper.UniqueKey("tags.key"), "x", "en")
	a := testhelper.SeedTag(t, pool, "a")
	b := testhelper.SeedTag(t, pool, "b")
	c := testhelper.SeedTag(t, pool, "c")

	if err := repo.SetTags(ctx, tr.ID, []int64{a.ID, b.ID}); err != nil {
		t.Fatalf("SetTags: %v", err)
	}
	got, err := repo.GetByID(ctx, tr.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("tags after first set: got %d, want 2", len(got.Tags))
	}

	// Full replacement, not a merge.
	if err := repo.SetTags(ctx, tr.ID, []int64{c.ID}); err != nil {
		t.Fatalf("SetTags replace: %v", err)
	}
	got, err = repo.GetByID(ctx, tr.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].ID != c.ID {
		t.Errorf("tags after replace: %v", got.Tags)
	}

	// Empty set clears all associations.
	if err := repo.SetTags(ctx, tr.ID, nil); err != nil {
		t.Fatalf("SetTags clear: %v", err)
	}
	got, err = repo.GetByID(ctx, tr.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Errorf("tags after clear: %v", got.Tags)
	}
}

func TestRepo_DeleteByLocale_Idempotent(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	// A locale name unique to this test keeps parallel tests out of the blast radius.
	locale := "zz"
	testhelper.SeedTranslation(t, pool, testhelper.UniqueKey("wipe.key"), "x", locale)
	testhelper.SeedTranslation(t, pool, testhelper.UniqueKey("wipe.key"), "y", locale)

	n, err := repo.DeleteByLocale(ctx, locale)
	if err != nil {
		t.Fatalf("DeleteByLocale: %v", err)
	}
	if n < 2 {
		t.Errorf("deleted: got %d, want >= 2", n)
	}

	// Zero matches is a no-op, not an error.
	n, err = repo.DeleteByLocale(ctx, "zx")
	if err != nil {
		t.Fatalf("DeleteByLocale empty: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted from empty locale: got %d, want 0", n)
	}
}

func TestRepo_Search_FiltersCompose(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	tg := testhelper.SeedTag(t, pool, "searchtag")
	key := testhelper.UniqueKey("search.button.save")
	match := testhelper.SeedTranslation(t, pool, key, "Save changes", "eo")
	testhelper.LinkTag(t, pool, match.ID, tg.ID)
	testhelper.SeedTranslation(t, pool, testhelper.UniqueKey("search.other"), "Save changes", "eo")

	locale := "eo"
	content := "save"
	tagName := tg.Name

	// {locale} alone and {locale, content, tag} combined: the combined result
	// is the intersection.
	broad, err := repo.Search(ctx, domain.TranslationFilter{Locale: &locale})
	if err != nil {
		t.Fatalf("Search broad: %v", err)
	}
	narrow, err := repo.Search(ctx, domain.TranslationFilter{
		Locale:  &locale,
		Content: &content,
		TagName: &tagName,
	})
	if err != nil {
		t.Fatalf("Search narrow: %v", err)
	}

	if broad.TotalCount < 2 {
		t.Errorf("broad total: got %d, want >= 2", broad.TotalCount)
	}
	if narrow.TotalCount != 1 {
		t.Fatalf("narrow total: got %d, want 1", narrow.TotalCount)
	}
	if narrow.Items[0].ID != match.ID {
		t.Errorf("narrow hit: got %d, want %d", narrow.Items[0].ID, match.ID)
	}
	if len(narrow.Items[0].Tags) != 1 {
		t.Errorf("search results must carry tags: %v", narrow.Items[0].Tags)
	}
}

func TestRepo_BulkInsert_AtomicPerBatch(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	txm := postgres.NewTxManager(pool)

	tg := testhelper.SeedTag(t, pool, "bulk")

	records := []translation.BulkRecord{
		{Key: testhelper.UniqueKey("bulk.a"), Content: "A", Locale: "en", TagIDs: []int64{tg.ID}},
		{Key: testhelper.UniqueKey("bulk.b"), Content: "B", Locale: "fr", TagIDs: []int64{tg.ID}},
		{Key: testhelper.UniqueKey("bulk.c"), Content: "C", Locale: "de"},
	}

	n, err := repo.BulkInsert(ctx, txm, records)
	if err != nil {
		t.Fatalf("BulkInsert: %v", err)
	}
	if n != 3 {
		t.Errorf("inserted: got %d, want 3", n)
	}

	got, err := repo.GetByKeyAndLocale(ctx, records[0].Key, "en")
	if err != nil {
		t.Fatalf("GetByKeyAndLocale: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].ID != tg.ID {
		t.Errorf("bulk tags not attached: %v", got.Tags)
	}

	// A duplicate inside the batch fails the whole batch.
	dupKey := testhelper.UniqueKey("bulk.dup")
	bad := []translation.BulkRecord{
		{Key: dupKey, Content: "X", Locale: "en"},
		{Key: dupKey, Content: "Y", Locale: "en"},
	}
	if _, err := repo.BulkInsert(ctx, txm, bad); err == nil {
		t.Fatal("expected batch failure on duplicate keys")
	}

	exists, err := repo.ExistsByKeyAndLocale(ctx, dupKey, "en")
	if err != nil {
		t.Fatalf("ExistsByKeyAndLocale: %v", err)
	}
	if exists {
		t.Error("failed batch must not leave partial rows")
	}
}
