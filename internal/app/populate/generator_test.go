package populate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/localehub/catalog-backend/internal/domain"
)

func catalogTags() []domain.Tag {
	tags := make([]domain.Tag, len(tagCatalog))
	for i, entry := range tagCatalog {
		tags[i] = domain.Tag{ID: int64(i + 1), Name: entry.Name}
	}
	return tags
}

var keyPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+\.\d{6}$`)

func TestGenerator_KeyShapeAndSequence(t *testing.T) {
	t.Parallel()

	gen := newGenerator(1, 100, catalogTags())
	records := gen.batch(5)

	for i, rec := range records {
		if !keyPattern.MatchString(rec.Key) {
			t.Errorf("key %q does not match category.word.NNNNNN", rec.Key)
		}
		wantSuffix := fmt.Sprintf(".%06d", 100+i)
		if !strings.HasSuffix(rec.Key, wantSuffix) {
			t.Errorf("key %q should carry sequence %s", rec.Key, wantSuffix)
		}
	}

	// Sequence numbers are strictly increasing, so keys never collide.
	seen := map[string]bool{}
	for _, rec := range gen.batch(1000) {
		if seen[rec.Key] {
			t.Fatalf("duplicate key generated: %q", rec.Key)
		}
		seen[rec.Key] = true
	}
}

func TestGenerator_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := newGenerator(42, 0, catalogTags()).batch(50)
	b := newGenerator(42, 0, catalogTags()).batch(50)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and offset must reproduce the same records")
	}

	c := newGenerator(43, 0, catalogTags()).batch(50)
	if reflect.DeepEqual(a, c) {
		t.Error("a different seed should shuffle the output")
	}
}

func TestGenerator_LocalesAndContent(t *testing.T) {
	t.Parallel()

	known := map[string]bool{}
	for _, l := range locales {
		known[l] = true
	}

	gen := newGenerator(7, 0, catalogTags())
	for _, rec := range gen.batch(500) {
		if !known[rec.Locale] {
			t.Fatalf("record locale %q outside the fixed set", rec.Locale)
		}
		if rec.Content == "" {
			t.Fatalf("record %q has empty content", rec.Key)
		}
	}
}

func TestGenerator_TagsBetweenOneAndThree(t *testing.T) {
	t.Parallel()

	gen := newGenerator(7, 0, catalogTags())
	for _, rec := range gen.batch(500) {
		if len(rec.TagIDs) < 1 || len(rec.TagIDs) > 3 {
			t.Fatalf("record %q carries %d tags, want 1..3", rec.Key, len(rec.TagIDs))
		}
		seen := map[int64]bool{}
		for _, id := range rec.TagIDs {
			if seen[id] {
				t.Fatalf("record %q carries duplicate tag %d", rec.Key, id)
			}
			seen[id] = true
		}
	}
}

func TestPhraseFor_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	for _, cat := range categories {
		// Locale without a phrase table.
		got := phraseFor(cat, "ja", 0)
		want := cat.phrases["en"][0]
		if got != want {
			t.Errorf("category %s: fallback got %q, want %q", cat.name, got, want)
		}

		// Locale with one.
		if fr := phraseFor(cat, "fr", 0); fr != cat.phrases["fr"][0] {
			t.Errorf("category %s: fr variant got %q", cat.name, fr)
		}
	}
}

// Every phrase table must cover every word, or the generator would panic
// on an index it rolled.
func TestCategories_PhraseTablesCoverAllWords(t *testing.T) {
	t.Parallel()

	for _, cat := range categories {
		if _, ok := cat.phrases["en"]; !ok {
			t.Fatalf("category %s lacks the English table", cat.name)
		}
		for locale, variants := range cat.phrases {
			if len(variants) != len(cat.words) {
				t.Errorf("category %s, locale %s: %d variants for %d words",
					cat.name, locale, len(variants), len(cat.words))
			}
		}
	}
}
