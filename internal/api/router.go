package api

import (
	"net/http"

	"collection-route-service/internal/api/handlers"
	"collection-route-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	schedules ports.ScheduleRepository,
	cache ports.ScheduleCache,
	materials ports.MaterialRepository,
	db handlers.Pinger,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	healthHandler := &handlers.HealthHandler{DB: db}
	scheduleHandler := &handlers.ScheduleHandler{Repo: schedules, Cache: cache}
	materialHandler := &handlers.MaterialHandler{Repo: materials}

	r.Get("/health", healthHandler.Health)

	r.Route("/api/schedules", func(r chi.Router) {
		r.Post("/", scheduleHandler.Create)
		r.Get("/", scheduleHandler.List)
		r.Get("/{id}", scheduleHandler.Get)
		r.Delete("/{id}", scheduleHandler.Archive)
		r.Post("/{id}/optimize", scheduleHandler.Optimize)
		r.Patch("/{id}/points/{index}", scheduleHandler.UpdatePoint)
	})

	r.Route("/api/materials", func(r chi.Router) {
		r.Post("/", materialHandler.Create)
		r.Get("/", materialHandler.List)
	})

	return r
}
