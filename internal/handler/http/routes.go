package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Heartbeat("/ping"))

	router.Get("/", h.index)
	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// auth
	router.Post("/register", h.register)
	router.Post("/login", h.login)
	router.Get("/protected", h.auth(h.protected))

	// users
	router.Get("/users", h.getAllUsers)
	router.Get("/users/{id}", h.getUserByID)

	// projects
	router.Post("/projects", h.createProject)
	router.Get("/projects/{userId}", h.getProjectsByOwner)
	router.Get("/projectsById/{id}", h.getProjectsByID)
	router.Put("/projects/{id}/{userId}", h.updateProject)
	router.Delete("/projects/{id}/{userId}", h.deleteProject)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
