package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/users", h.createUser)
	})

	// signin: credential check runs as a guard before the handler
	router.Group(func(r chi.Router) {
		r.Use(h.localAuth)
		r.Post("/api/auth/signin", h.signin)
	})

	// routes behind the bearer-token guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/profile", h.profile)
		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/users", h.listUsers)
		r.Get("/api/users/profile", h.profile)
		r.Get("/api/users/{id}", h.getUser)
		r.Patch("/api/users/{id}", h.updateUser)
		r.Delete("/api/users/{id}", h.deleteUser)
	})

	return router
}
