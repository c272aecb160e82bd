package market

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/market-intelligence", func(r chi.Router) {
		r.Post("/", h.Analyze)
		r.Get("/crops", h.ListCrops)
		r.Get("/{crop}/report", h.Report)
	})
}
