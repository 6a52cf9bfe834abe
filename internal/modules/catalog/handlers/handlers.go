// Package handlers provides HTTP handlers for asset catalog operations.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/catalog"
	"github.com/rs/zerolog"
)

// Handler handles asset catalog HTTP requests
type Handler struct {
	service *catalog.Service
	log     zerolog.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(service *catalog.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "catalog").Logger(),
	}
}

// HandleListAssets handles GET /api/assets
func (h *Handler) HandleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.Assets()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load assets")
		http.Error(w, "Failed to load assets", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"assets": assets,
			"count":  len(assets),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleRefresh handles POST /api/assets/refresh
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(); err != nil {
		h.log.Error().Err(err).Msg("Failed to refresh catalog")
		http.Error(w, "Failed to refresh catalog", http.StatusInternalServerError)
		return
	}

	assets, err := h.service.Assets()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load assets after refresh")
		http.Error(w, "Failed to load assets", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"refreshed": true,
			"count":     len(assets),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
