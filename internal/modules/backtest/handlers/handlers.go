// Package handlers provides HTTP handlers for backtest runs.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jungdo-lee/etf-optimizer/internal/modules/backtest"
	"github.com/jungdo-lee/etf-optimizer/internal/modules/portfolio"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

// Handler handles backtest HTTP requests
type Handler struct {
	engine *backtest.Engine
	log    zerolog.Logger
}

// NewHandler creates a new backtest handler
func NewHandler(engine *backtest.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("handler", "backtest").Logger(),
	}
}

type runRequest struct {
	Portfolio portfolio.Portfolio `json:"portfolio"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
}

// HandleRun handles POST /api/backtest
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		http.Error(w, "Invalid start_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	end := time.Now().UTC()
	if req.EndDate != "" {
		end, err = time.Parse(dateLayout, req.EndDate)
		if err != nil {
			http.Error(w, "Invalid end_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	result, err := h.engine.Run(req.Portfolio, start, end)
	if err != nil {
		if errors.Is(err, backtest.ErrEmptyPortfolio) {
			http.Error(w, "Empty portfolio or empty date range", http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Backtest failed")
		http.Error(w, "Backtest failed", http.StatusInternalServerError)
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
