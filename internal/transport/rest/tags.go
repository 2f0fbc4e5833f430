package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/localehub/catalog-backend/internal/domain"
	"github.com/localehub/catalog-backend/internal/service/tag"
	"github.com/localehub/catalog-backend/internal/transport/middleware"
)

// tagService defines the minimal interface needed by TagHandler.
type tagService interface {
	Create(ctx context.Context, input tag.Input) (*domain.Tag, error)
	Get(ctx context.Context, id int64) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	SearchByName(ctx context.Context, term string) ([]domain.Tag, error)
	MostUsed(ctx context.Context, limit int) ([]domain.TagUsage, error)
	Update(ctx context.Context, id int64, input tag.Input) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}

// TagHandler serves tag REST endpoints.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tags")}
}

type tagRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type tagResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type tagUsageResponse struct {
	tagResponse
	TranslationCount int `json:"translationCount"`
}

// Create handles POST /api/v1/tags.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), tag.Input{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(created))
}

// Get handles GET /api/v1/tags/{id}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	tg, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(tg))
}

// GetByName handles GET /api/v1/tags/name/{name}.
func (h *TagHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	tg, err := h.svc.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(tg))
}

// List handles GET /api/v1/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// Search handles GET /api/v1/tags/search?q=term.
func (h *TagHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	tags, err := h.svc.SearchByName(r.Context(), term)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponses(tags))
}

// MostUsed handles GET /api/v1/tags/most-used?limit=20.
func (h *TagHandler) MostUsed(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r.URL.Query().Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	usages, err := h.svc.MostUsed(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]tagUsageResponse, len(usages))
	for i, u := range usages {
		out[i] = tagUsageResponse{
			tagResponse:      toTagResponse(&u.Tag),
			TranslationCount: u.TranslationCount,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /api/v1/tags/{id}.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tag.Input{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagResponse(updated))
}

// Delete handles DELETE /api/v1/tags/{id}.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func toTagResponse(tg *domain.Tag) tagResponse {
	return tagResponse{
		ID:          tg.ID,
		Name:        tg.Name,
		Description: tg.Description,
		CreatedAt:   tg.CreatedAt,
	}
}

func toTagResponses(tags []domain.Tag) []tagResponse {
	out := make([]tagResponse, len(tags))
	for i := range tags {
		out[i] = toTagResponse(&tags[i])
	}
	return out
}
