// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"myblog/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// AuthKey is the context key for the authentication state.
	AuthKey contextKey = "authenticated"
)

// LoadSession checks the session cookie against Valkey and records the
// result in the request context. Downstream handlers read it via
// IsAuthenticated(). This middleware does NOT enforce authentication;
// it only resolves the caller's state.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := store.Valid(r.Context(), r)
			if err != nil {
				// Session store unreachable: treat the caller as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			if ok {
				ctx := context.WithValue(r.Context(), AuthKey, true)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects unauthenticated callers with a generic 401 body.
// Must be applied after LoadSession in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r.Context()) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// IsAuthenticated reports whether the request context carries a verified
// admin session.
func IsAuthenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(AuthKey).(bool)
	return ok
}
