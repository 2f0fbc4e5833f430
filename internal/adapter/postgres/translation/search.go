package translation

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/localehub/catalog-backend/internal/adapter/postgres"
	"github.com/localehub/catalog-backend/internal/domain"
)

// The search composer builds one SELECT from a sparse filter. Each predicate
// below is an independent unit: it returns nil when its parameter is blank
// (pass-through) and a squirrel condition otherwise. Present predicates
// compose as a logical AND in any subset or order, so an empty filter
// matches the whole catalog.

// localeEq matches the exact locale.
func localeEq(locale *string) sq.Sqlizer {
	if !domain.HasValue(locale) {
		return nil
	}
	return sq.Eq{"t.locale": strings.TrimSpace(*locale)}
}

// keyLike matches a case-insensitive key substring.
func keyLike(key *string) sq.Sqlizer {
	if !domain.HasValue(key) {
		return nil
	}
	return sq.ILike{"t.translation_key": "%" + strings.TrimSpace(*key) + "%"}
}

// contentLike matches a case-insensitive content substring.
func contentLike(content *string) sq.Sqlizer {
	if !domain.HasValue(content) {
		return nil
	}
	return sq.ILike{"t.content": "%" + strings.TrimSpace(*content) + "%"}
}

// hasTag requires at least one attached tag with the exact name
// (inner-join semantics, expressed as EXISTS to keep result rows unique).
func hasTag(tagName *string) sq.Sqlizer {
	if !domain.HasValue(tagName) {
		return nil
	}
	return sq.Expr(
		`EXISTS (SELECT 1 FROM translation_tags tt JOIN tags tg ON tg.id = tt.tag_id
		 WHERE tt.translation_id = t.id AND tg.name = ?)`,
		strings.TrimSpace(*tagName),
	)
}

// compose ANDs together the non-nil predicates for a filter.
func compose(f *domain.TranslationFilter) sq.And {
	var conds sq.And
	for _, cond := range []sq.Sqlizer{
		localeEq(f.Locale),
		keyLike(f.Key),
		contentLike(f.Content),
		hasTag(f.TagName),
	} {
		if cond != nil {
			conds = append(conds, cond)
		}
	}
	return conds
}

// sortColumn maps the whitelisted filter sort field to a column. The filter
// is normalized before this point, so the default arm is unreachable in
// practice but keeps the mapping total.
func sortColumn(sortBy string) string {
	switch sortBy {
	case domain.SortByKey:
		return "t.translation_key"
	case domain.SortByLocale:
		return "t.locale"
	case domain.SortByCreatedAt:
		return "t.created_at"
	case domain.SortByUpdatedAt:
		return "t.updated_at"
	default:
		return "t.id"
	}
}

// buildSearchQuery renders the filter into the page SELECT.
// The filter must already be normalized.
func buildSearchQuery(f *domain.TranslationFilter) sq.SelectBuilder {
	q := sq.Select("t.id", "t.translation_key", "t.content", "t.locale", "t.created_at", "t.updated_at").
		From("translations t").
		PlaceholderFormat(sq.Dollar)

	if conds := compose(f); len(conds) > 0 {
		q = q.Where(conds)
	}

	return q.
		OrderBy(sortColumn(f.SortBy) + " " + f.SortOrder).
		Limit(uint64(f.Size)).
		Offset(uint64(f.Page) * uint64(f.Size))
}

// buildCountQuery renders the filter into the total-count SELECT.
func buildCountQuery(f *domain.TranslationFilter) sq.SelectBuilder {
	q := sq.Select("COUNT(*)").
		From("translations t").
		PlaceholderFormat(sq.Dollar)

	if conds := compose(f); len(conds) > 0 {
		q = q.Where(conds)
	}

	return q
}

// Search runs the composed filter and returns one page of matches plus the
// total match count. Tags are attached eagerly to the page items.
func (r *Repo) Search(ctx context.Context, f domain.TranslationFilter) (*domain.Page, error) {
	f.Normalize()

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := buildCountQuery(&f).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "translations", "search")
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, postgres.MapError(err, "translations", "search")
	}

	pageSQL, pageArgs, err := buildSearchQuery(&f).ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "translations", "search")
	}

	rows, err := querier.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, postgres.MapError(err, "translations", "search")
	}
	defer rows.Close()

	items, err := scanTranslations(rows)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*domain.Translation, len(items))
	for i := range items {
		ptrs[i] = &items[i]
	}
	if err := r.attachTags(ctx, ptrs); err != nil {
		return nil, err
	}

	return &domain.Page{
		Items:      items,
		TotalCount: total,
		PageIndex:  f.Page,
		PageSize:   f.Size,
	}, nil
}
