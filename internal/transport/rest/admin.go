package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/localehub/catalog-backend/internal/app/populate"
	"github.com/localehub/catalog-backend/internal/config"
	"github.com/localehub/catalog-backend/internal/domain"
	"github.com/localehub/catalog-backend/internal/transport/middleware"
)

// populateRunner defines the minimal interface needed by AdminHandler.
type populateRunner interface {
	Run(ctx context.Context, cfg populate.Config) (*populate.Result, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	runner populateRunner
	cfg    config.PopulateConfig
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(runner populateRunner, cfg config.PopulateConfig, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		runner: runner,
		cfg:    cfg,
		log:    logger.With("handler", "admin"),
	}
}

type populateRequest struct {
	TargetCount int   `json:"targetCount"`
	BatchSize   int   `json:"batchSize"`
	StartAt     int   `json:"startAt"`
	Seed        int64 `json:"seed"`
}

type populateResponse struct {
	Inserted int    `json:"inserted"`
	Batches  int    `json:"batches"`
	Duration string `json:"duration"`
}

// Populate handles POST /api/v1/admin/populate. The run happens inline;
// the request returns once the last batch commits.
func (h *AdminHandler) Populate(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req populateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.cfg.MaxRecords > 0 && req.TargetCount > h.cfg.MaxRecords {
		handleError(h.log, w, r, domain.NewValidationError("targetCount",
			fmt.Sprintf("exceeds the configured maximum of %d", h.cfg.MaxRecords)))
		return
	}

	cfg := populate.Config{
		TargetCount:   req.TargetCount,
		BatchSize:     req.BatchSize,
		StartAt:       req.StartAt,
		ProgressEvery: h.cfg.ProgressEvery,
		Seed:          req.Seed,
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = h.cfg.BatchSize
	}

	result, err := h.runner.Run(r.Context(), cfg)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, populateResponse{
		Inserted: result.Inserted,
		Batches:  result.Batches,
		Duration: result.Duration.String(),
	})
}
