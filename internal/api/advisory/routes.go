package advisory

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/advisory", func(r chi.Router) {
		r.Post("/", h.Recommend)
	})
}
