package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes mounts every endpoint. Paths match with or without a trailing slash.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Get("/health", h.Health)

	r.Get("/products", h.ListProducts)
	r.Post("/save-cart", h.SaveCart)

	r.Route("/carts", func(r chi.Router) {
		r.Get("/", h.ListCarts)
		r.Get("/{id}", h.GetCart)
		r.Delete("/{id}", h.DeleteCart)
	})

	return r
}
