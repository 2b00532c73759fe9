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

	router.Get("/", h.root)
	router.Get("/hello/{name}", h.hello)

	router.Get("/users", h.getAllUsers)
	router.Post("/users", h.createUser)
	router.Get("/users/{login}", h.getUser)
	router.Put("/users/{login}", h.updateUser)
	router.Delete("/users/{login}", h.deleteUser)

	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
