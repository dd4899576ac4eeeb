package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sitelens/website-profiler/pkg/interfaces"
	"github.com/sitelens/website-profiler/pkg/models"
	"github.com/sitelens/website-profiler/services/profiler/core"
)

// ProfileHandler serves single-URL profile requests. Responses are
// always a complete WebsiteProfile: pages that cannot be fetched come
// back as the neutral empty profile with status 200, and only a bad
// request body produces an error status.
type ProfileHandler struct {
	engine   interfaces.ProfileBuilder
	cache    interfaces.Cache
	logger   interfaces.Logger
	metrics  interfaces.MetricsCollector
	cacheTTL time.Duration
}

func NewProfileHandler(engine interfaces.ProfileBuilder, cache interfaces.Cache, logger interfaces.Logger, metrics interfaces.MetricsCollector, cacheTTL time.Duration) *ProfileHandler {
	return &ProfileHandler{
		engine:   engine,
		cache:    cache,
		logger:   logger,
		metrics:  metrics,
		cacheTTL: cacheTTL,
	}
}

func (h *ProfileHandler) AnalyzeURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Parse request
	var req models.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to parse request", "error", err)
		writeError(w, h.logger, "Invalid request format", http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		writeError(w, h.logger, "URL is required", http.StatusBadRequest)
		return
	}

	h.logger.Info("Processing profile request", "url", req.URL)

	// Check cache first
	if cached, err := h.cache.Get(ctx, req.URL); err == nil {
		h.metrics.RecordCacheLookup(true)
		h.logger.Debug("Serving profile from cache", "url", req.URL)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}
	h.metrics.RecordCacheLookup(false)

	profile := h.engine.AnalyzeURL(ctx, req.URL)

	data, err := json.Marshal(profile)
	if err != nil {
		h.logger.Error("Failed to encode profile", "url", req.URL, "error", err)
		writeError(w, h.logger, "Failed to encode profile", http.StatusInternalServerError)
		return
	}

	// Fetch failures may be transient, so empty profiles are not cached
	if profile.Summary != core.EmptyProfileSummary {
		if err := h.cache.Set(ctx, req.URL, data, int(h.cacheTTL.Seconds())); err != nil {
			h.logger.Warn("Failed to cache profile", "url", req.URL, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeError sends an error response
func writeError(w http.ResponseWriter, logger interfaces.Logger, message string, statusCode int) {
	response := models.ErrorResponse{
		Error:      message,
		StatusCode: statusCode,
		Timestamp:  time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}
