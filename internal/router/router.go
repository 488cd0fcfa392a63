// Package router sets up the HTTP routes and middleware chains for the
// blog API. Routes fall into three groups: the login endpoints, the
// authenticated admin API, and the public memo feed.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"myblog/internal/handlers"
	"myblog/internal/middleware"
	"myblog/internal/session"
)

// loginRateLimit caps login attempts per client IP within loginRateWindow.
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, auth *handlers.Auth, posts *handlers.Posts, memos *handlers.Memos) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Login endpoints. POST is rate limited to slow down password
		// guessing against the shared admin secret.
		r.Route("/admin/login", func(r chi.Router) {
			limiter := middleware.NewRateLimiter(loginRateLimit, loginRateWindow)
			r.With(limiter.Middleware).Post("/", auth.Login)
			r.Delete("/", auth.Logout)
		})

		// Post CRUD and editor helpers. Listing includes drafts, so every
		// operation requires a session.
		r.Route("/posts", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", posts.Get)
			r.Post("/", posts.Create)
			r.Put("/", posts.Update)
			r.Delete("/", posts.Delete)
			r.Post("/preview", posts.Preview)
			r.Post("/suggest-category", posts.SuggestCategory)
		})

		// Quick memos. The feed itself is public; mutations need a session.
		r.Route("/quick-memos", func(r chi.Router) {
			r.Get("/", memos.List)
			r.With(middleware.RequireAuth).Post("/", memos.Create)
			r.With(middleware.RequireAuth).Delete("/", memos.Delete)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
