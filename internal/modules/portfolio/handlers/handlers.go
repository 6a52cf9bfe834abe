// Package handlers provides HTTP handlers for portfolio recommendations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/selection"
	"github.com/rs/zerolog"
)

// Handler handles portfolio recommendation HTTP requests
type Handler struct {
	service *portfolio.Service
	log     zerolog.Logger
}

// NewHandler creates a new portfolio handler
func NewHandler(service *portfolio.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "portfolio").Logger(),
	}
}

// HandleRecommend handles POST /api/portfolio/recommend
func (h *Handler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	var req portfolio.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SeedMoney <= 0 {
		http.Error(w, "seed_money must be positive", http.StatusBadRequest)
		return
	}

	result, err := h.service.Recommend(req)
	if err != nil {
		if errors.Is(err, selection.ErrInsufficientCandidates) {
			http.Error(w, "Fewer than 3 valid candidate assets", http.StatusUnprocessableEntity)
			return
		}
		h.log.Error().Err(err).Msg("Failed to build recommendation")
		http.Error(w, "Failed to build recommendation", http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data": result,
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
