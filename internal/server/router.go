package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BuzzLyutic/choretle/internal/handler"
	"github.com/BuzzLyutic/choretle/pkg/respond"
)

// HealthChecker reports the last known state of the task store.
type HealthChecker interface {
	Healthy() bool
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	return r
}

// NewOverseerRouter exposes the task API.
func NewOverseerRouter(tasks *handler.TaskHandler, health HealthChecker) http.Handler {
	r := newRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if !health.Healthy() {
			respond.JSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", tasks.Create)
		r.Get("/", tasks.List)
		r.Get("/{id}", tasks.Get)
		r.Put("/{id}", tasks.Update)
		r.Delete("/{id}", tasks.Delete)
	})

	return r
}

func NewGuardianRouter() http.Handler {
	r := newRouter()
	r.Get("/login", handler.LoginHandler{}.Login)
	return r
}

func NewPioneerRouter(directory *handler.DirectoryHandler) http.Handler {
	r := newRouter()
	r.Get("/services", directory.Services)
	return r
}
