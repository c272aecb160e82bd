package weather

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/weather", func(r chi.Router) {
		r.Get("/", h.Current)
	})
}
