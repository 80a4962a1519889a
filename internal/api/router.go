// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"birthday-blog/internal/api/handler"
)

// requestTimeout is the platform-style cutoff for one invocation.
const requestTimeout = 30 * time.Second

// NewRouter sets up and returns a new HTTP router. Routing is a flat table of
// (method, path) pairs; sub-actions like register/login are distinct routes,
// not substring checks inside a shared handler.
func NewRouter(blogHandler *handler.BlogHandler, userHandler *handler.UserHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(corsMiddleware)

	// The original API answers every unrouted combination with 405.
	r.NotFound(methodNotAllowed)
	r.MethodNotAllowed(methodNotAllowed)

	// Health check endpoint; storage-free by design.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Blog API routes
	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", blogHandler.List)
		r.Post("/", blogHandler.Create)
		r.Put("/", blogHandler.Update)
		r.Delete("/", blogHandler.Delete)
	})

	// User API routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Post("/reset-password", userHandler.ResetPassword)
		r.Get("/check-username", userHandler.CheckUsername)
	})

	return r
}

// corsMiddleware sets the CORS headers on every response and answers OPTIONS
// preflights immediately with an empty 200 body. Preflights never reach a
// handler, so no store handle is acquired for them.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// methodNotAllowed answers any unroutable method+path combination.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_, _ = w.Write([]byte(`{"message":"Method not allowed"}`))
}
