package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/localehub/catalog-backend/internal/domain"
	"github.com/localehub/catalog-backend/internal/service/translation"
	"github.com/localehub/catalog-backend/internal/transport/middleware"
)

// translationService defines the minimal interface needed by TranslationHandler.
type translationService interface {
	Create(ctx context.Context, input translation.CreateInput) (*domain.Translation, error)
	Get(ctx context.Context, id int64) (*domain.Translation, error)
	GetByKeyAndLocale(ctx context.Context, key, locale string) (*domain.Translation, error)
	ListByLocale(ctx context.Context, locale string) ([]domain.Translation, error)
	ListByTag(ctx context.Context, tagName string) ([]domain.Translation, error)
	SearchContent(ctx context.Context, term string) ([]domain.Translation, error)
	Search(ctx context.Context, f domain.TranslationFilter) (*domain.Page, error)
	Update(ctx context.Context, id int64, input translation.UpdateInput) (*domain.Translation, error)
	Delete(ctx context.Context, id int64) error
	DeleteByLocale(ctx context.Context, locale string) (int, error)
	CountByLocale(ctx context.Context, locale string) (int, error)
}

// TranslationHandler serves translation REST endpoints.
type TranslationHandler struct {
	svc translationService
	log *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler.
func NewTranslationHandler(svc translationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{svc: svc, log: logger.With("handler", "translations")}
}

type createTranslationRequest struct {
	Key     string   `json:"key"`
	Content string   `json:"content"`
	Locale  string   `json:"locale"`
	Tags    []string `json:"tags"`
}

type updateTranslationRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"` // null keeps the current set
}

type translationResponse struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Content   string    `json:"content"`
	Locale    string    `json:"locale"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type pageResponse struct {
	Items      []translationResponse `json:"items"`
	TotalCount int                   `json:"totalCount"`
	Page       int                   `json:"page"`
	Size       int                   `json:"size"`
}

// Create handles POST /api/v1/translations.
func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), translation.CreateInput{
		Key:     req.Key,
		Content: req.Content,
		Locale:  req.Locale,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTranslationResponse(created))
}

// Get handles GET /api/v1/translations/{id}.
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tr, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponse(tr))
}

// GetByKey handles GET /api/v1/translations/key/{key}?locale=en.
func (h *TranslationHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		writeError(w, http.StatusBadRequest, "locale query parameter is required")
		return
	}

	tr, err := h.svc.GetByKeyAndLocale(r.Context(), key, locale)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponse(tr))
}

// Search handles GET /api/v1/translations with sparse query parameters.
func (h *TranslationHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.TranslationFilter{
		Locale:    queryParam(q.Get("locale")),
		Key:       queryParam(q.Get("key")),
		Content:   queryParam(q.Get("content")),
		TagName:   queryParam(q.Get("tag")),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	// Absent parameters fall back to defaults downstream; present ones
	// must parse and be in range, so size=0 is a client error rather
	// than a silent default.
	if raw := q.Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		filter.Page = p
	}
	if raw := q.Get("size"); raw != "" {
		s, err := strconv.Atoi(raw)
		if err != nil || s <= 0 {
			writeError(w, http.StatusBadRequest, "invalid size")
			return
		}
		filter.Size = s
	}

	page, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// ListByLocale handles GET /api/v1/locales/{locale}/translations.
func (h *TranslationHandler) ListByLocale(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListByLocale(r.Context(), r.PathValue("locale"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponses(items))
}

// CountByLocale handles GET /api/v1/locales/{locale}/count.
func (h *TranslationHandler) CountByLocale(w http.ResponseWriter, r *http.Request) {
	locale := r.PathValue("locale")
	n, err := h.svc.CountByLocale(r.Context(), locale)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"locale": locale, "count": n})
}

// DeleteByLocale handles DELETE /api/v1/locales/{locale}/translations.
func (h *TranslationHandler) DeleteByLocale(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	locale := r.PathValue("locale")
	n, err := h.svc.DeleteByLocale(r.Context(), locale)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"locale": locale, "deleted": n})
}

// ListByTag handles GET /api/v1/translations/by-tag/{tag}.
func (h *TranslationHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListByTag(r.Context(), r.PathValue("tag"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponses(items))
}

// SearchContent handles GET /api/v1/translations/content-search?q=term.
func (h *TranslationHandler) SearchContent(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	items, err := h.svc.SearchContent(r.Context(), term)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponses(items))
}

// Update handles PUT /api/v1/translations/{id}.
func (h *TranslationHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateTranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, translation.UpdateInput{
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTranslationResponse(updated))
}

// Delete handles DELETE /api/v1/translations/{id}.
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTranslationResponse(tr *domain.Translation) translationResponse {
	return translationResponse{
		ID:        tr.ID,
		Key:       tr.Key,
		Content:   tr.Content,
		Locale:    tr.Locale,
		Tags:      tr.TagNames(),
		CreatedAt: tr.CreatedAt,
		UpdatedAt: tr.UpdatedAt,
	}
}

func toTranslationResponses(items []domain.Translation) []translationResponse {
	out := make([]translationResponse, len(items))
	for i := range items {
		out[i] = toTranslationResponse(&items[i])
	}
	return out
}

func toPageResponse(page *domain.Page) pageResponse {
	return pageResponse{
		Items:      toTranslationResponses(page.Items),
		TotalCount: page.TotalCount,
		Page:       page.PageIndex,
		Size:       page.PageSize,
	}
}

// pathID parses the {id} path segment, answering 400 itself on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func queryParam(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(v string, fallback int) (int, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
