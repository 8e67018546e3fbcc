package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/api/user/signup", h.signUp)
		r.Post("/api/user/login", h.login)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/viewer/users", h.listUsers)
		r.Get("/api/viewer/purchases", h.listPurchases)

		r.Post("/api/purchases", h.createPurchase)
		r.Patch("/api/purchases/{id}", h.updatePurchase)
		r.Delete("/api/purchases/{id}", h.deletePurchase)
	})

	return router
}
