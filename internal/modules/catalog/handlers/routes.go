package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all asset catalog routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assets", func(r chi.Router) {
		r.Get("/", h.HandleListAssets)
		r.Post("/refresh", h.HandleRefresh)
	})
}
