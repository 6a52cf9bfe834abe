// Package handlers provides HTTP handlers for stress testing.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/stress"
	"github.com/rs/zerolog"
)

// Handler handles stress test HTTP requests
type Handler struct {
	tester *stress.Tester
	log    zerolog.Logger
}

// NewHandler creates a new stress test handler
func NewHandler(tester *stress.Tester, log zerolog.Logger) *Handler {
	return &Handler{
		tester: tester,
		log:    log.With().Str("handler", "stress").Logger(),
	}
}

// HandleListScenarios handles GET /api/stress/scenarios
func (h *Handler) HandleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := make([]stress.Scenario, 0, len(stress.ScenarioNames()))
	for _, name := range stress.ScenarioNames() {
		scenarios = append(scenarios, stress.Scenarios[name])
	}

	response := map[string]interface{}{
		"data": map[string]interface{}{
			"scenarios": scenarios,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
	h.writeJSON(w, http.StatusOK, response)
}

// HandleRun handles POST /api/stress/{scenario}
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request, scenario string) {
	var req struct {
		Portfolio portfolio.Portfolio `json:"portfolio"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.tester.Run(req.Portfolio, scenario)
	if err != nil {
		if errors.Is(err, stress.ErrUnknownScenario) {
			http.Error(w, "Unknown scenario: "+scenario, http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("scenario", scenario).Msg("Stress test failed")
		http.Error(w, "Stress test failed", http.StatusInternalServerError)
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

// RegisterRoutes registers all stress test routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stress", func(r chi.Router) {
		r.Get("/scenarios", h.HandleListScenarios)
		r.Post("/{scenario}", func(w http.ResponseWriter, r *http.Request) {
			scenario := chi.URLParam(r, "scenario")
			h.HandleRun(w, r, scenario)
		})
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
