package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/localehub/catalog-backend/internal/domain"
)

// exportService defines the minimal interface needed by ExportHandler.
type exportService interface {
	ByLocale(ctx context.Context, locale string) (*domain.Export, error)
	All(ctx context.Context) (*domain.Export, error)
}

// ExportHandler serves catalog export endpoints.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "exports")}
}

// ByLocale handles GET /api/v1/exports/{locale}.
func (h *ExportHandler) ByLocale(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.ByLocale(r.Context(), r.PathValue("locale"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// All handles GET /api/v1/exports.
func (h *ExportHandler) All(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.All(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Flat handles GET /api/v1/exports/{locale}/flat. It serves only the
// key-to-content map, the shape localization clients load directly.
func (h *ExportHandler) Flat(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.ByLocale(r.Context(), r.PathValue("locale"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc.Translations)
}
