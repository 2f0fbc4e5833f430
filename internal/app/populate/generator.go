package populate

import (
	"fmt"
	"math/rand"

	"github.com/localehub/catalog-backend/internal/adapter/postgres/translation"
	"github.com/localehub/catalog-backend/internal/domain"
)

// generator produces synthetic translation records. Keys carry a running
// sequence number, so one run never collides with itself; a seeded rand
// makes runs reproducible.
type generator struct {
	rnd    *rand.Rand
	seq    int
	tagIDs []int64
}

func newGenerator(seed int64, startAt int, tags []domain.Tag) *generator {
	ids := make([]int64, len(tags))
	for i, tg := range tags {
		ids[i] = tg.ID
	}
	return &generator{
		rnd:    rand.New(rand.NewSource(seed)),
		seq:    startAt,
		tagIDs: ids,
	}
}

// next produces one record and advances the sequence.
func (g *generator) next() translation.BulkRecord {
	cat := categories[g.rnd.Intn(len(categories))]
	wordIdx := g.rnd.Intn(len(cat.words))
	locale := locales[g.rnd.Intn(len(locales))]

	key := fmt.Sprintf("%s.%s.%06d", cat.name, cat.words[wordIdx], g.seq)
	g.seq++

	return translation.BulkRecord{
		Key:     key,
		Content: phraseFor(cat, locale, wordIdx),
		Locale:  locale,
		TagIDs:  g.pickTags(),
	}
}

// batch produces n records.
func (g *generator) batch(n int) []translation.BulkRecord {
	records := make([]translation.BulkRecord, n)
	for i := range records {
		records[i] = g.next()
	}
	return records
}

// phraseFor returns the locale's phrase variant, falling back to English.
func phraseFor(cat category, locale string, wordIdx int) string {
	if variants, ok := cat.phrases[locale]; ok {
		return variants[wordIdx]
	}
	return cat.phrases["en"][wordIdx]
}

// pickTags draws 1 to 3 distinct tags from the catalog.
func (g *generator) pickTags() []int64 {
	if len(g.tagIDs) == 0 {
		return nil
	}

	n := 1 + g.rnd.Intn(3)
	if n > len(g.tagIDs) {
		n = len(g.tagIDs)
	}

	picked := make([]int64, 0, n)
	seen := make(map[int64]struct{}, n)
	for len(picked) < n {
		id := g.tagIDs[g.rnd.Intn(len(g.tagIDs))]
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		picked = append(picked, id)
	}
	return picked
}
