// Package handlers provides HTTP handlers for Monte Carlo simulations.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/simulation"
	"github.com/rs/zerolog"
)

// Handler handles simulation HTTP requests
type Handler struct {
	simulator *simulation.Simulator
	log       zerolog.Logger
}

// NewHandler creates a new simulation handler
func NewHandler(simulator *simulation.Simulator, log zerolog.Logger) *Handler {
	return &Handler{
		simulator: simulator,
		log:       log.With().Str("handler", "simulation").Logger(),
	}
}

type runRequest struct {
	Portfolio   portfolio.Portfolio `json:"portfolio"`
	Simulations int                 `json:"simulations"`
	Years       int                 `json:"years"`
	Alpha       float64             `json:"alpha"`
}

// HandleRun handles POST /api/simulation
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Simulations <= 0 {
		req.Simulations = 1000
	}
	if req.Years <= 0 {
		req.Years = 10
	}

	result := h.simulator.Run(req.Portfolio, req.Simulations, req.Years, req.Alpha)
	if result == nil {
		http.Error(w, "Portfolio has no invested capital", http.StatusBadRequest)
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
