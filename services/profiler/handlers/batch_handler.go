package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sitelens/website-profiler/pkg/interfaces"
	"github.com/sitelens/website-profiler/pkg/models"
)

// BatchHandler serves multi-URL profile requests. Results come back in
// input order, one profile per URL, with failed fetches folded into
// empty profiles rather than errors.
type BatchHandler struct {
	batch        interfaces.BatchProfiler
	logger       interfaces.Logger
	maxBatchSize int
}

func NewBatchHandler(batch interfaces.BatchProfiler, logger interfaces.Logger, maxBatchSize int) *BatchHandler {
	return &BatchHandler{
		batch:        batch,
		logger:       logger,
		maxBatchSize: maxBatchSize,
	}
}

func (h *BatchHandler) BatchAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse request
	var req models.BatchProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to parse batch request", "error", err)
		writeError(w, h.logger, "Invalid request format", http.StatusBadRequest)
		return
	}

	if len(req.URLs) == 0 {
		writeError(w, h.logger, "At least one URL is required", http.StatusBadRequest)
		return
	}

	if len(req.URLs) > h.maxBatchSize {
		writeError(w, h.logger, fmt.Sprintf("Maximum %d URLs allowed per batch", h.maxBatchSize), http.StatusBadRequest)
		return
	}

	h.logger.Info("Processing batch request", "url_count", len(req.URLs))

	start := time.Now()
	results := h.batch.ProfileAll(ctx, req.URLs)

	response := models.BatchProfileResult{
		Results:   results,
		TotalTime: time.Since(start),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode batch response", "error", err)
	}
}
