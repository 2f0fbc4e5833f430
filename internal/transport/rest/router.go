package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Translations *TranslationHandler
	Tags         *TagHandler
	Exports      *ExportHandler
	Admin        *AdminHandler
}

// NewRouter mounts all REST endpoints on a ServeMux. Method and path
// wildcards follow the net/http pattern syntax; the most specific
// pattern wins, so literal segments like "key" shadow "{id}".
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/auth/me", h.Auth.Me)

	mux.HandleFunc("POST /api/v1/translations", h.Translations.Create)
	mux.HandleFunc("GET /api/v1/translations", h.Translations.Search)
	mux.HandleFunc("GET /api/v1/translations/{id}", h.Translations.Get)
	mux.HandleFunc("PUT /api/v1/translations/{id}", h.Translations.Update)
	mux.HandleFunc("DELETE /api/v1/translations/{id}", h.Translations.Delete)
	mux.HandleFunc("GET /api/v1/translations/key/{key}", h.Translations.GetByKey)
	mux.HandleFunc("GET /api/v1/translations/by-tag/{tag}", h.Translations.ListByTag)
	mux.HandleFunc("GET /api/v1/translations/content-search", h.Translations.SearchContent)

	mux.HandleFunc("GET /api/v1/locales/{locale}/translations", h.Translations.ListByLocale)
	mux.HandleFunc("DELETE /api/v1/locales/{locale}/translations", h.Translations.DeleteByLocale)
	mux.HandleFunc("GET /api/v1/locales/{locale}/count", h.Translations.CountByLocale)

	mux.HandleFunc("POST /api/v1/tags", h.Tags.Create)
	mux.HandleFunc("GET /api/v1/tags", h.Tags.List)
	mux.HandleFunc("GET /api/v1/tags/{id}", h.Tags.Get)
	mux.HandleFunc("PUT /api/v1/tags/{id}", h.Tags.Update)
	mux.HandleFunc("DELETE /api/v1/tags/{id}", h.Tags.Delete)
	mux.HandleFunc("GET /api/v1/tags/name/{name}", h.Tags.GetByName)
	mux.HandleFunc("GET /api/v1/tags/search", h.Tags.Search)
	mux.HandleFunc("GET /api/v1/tags/most-used", h.Tags.MostUsed)

	mux.HandleFunc("GET /api/v1/exports", h.Exports.All)
	mux.HandleFunc("GET /api/v1/exports/{locale}", h.Exports.ByLocale)
	mux.HandleFunc("GET /api/v1/exports/{locale}/flat", h.Exports.Flat)

	mux.HandleFunc("POST /api/v1/admin/populate", h.Admin.Populate)

	return mux
}
