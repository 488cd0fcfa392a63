package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoverer(t *testing.T) {
	t.Run("passes normal responses through", func(t *testing.T) {
		next, called := okHandler()
		rec := httptest.NewRecorder()

		Recoverer(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		if !*called {
			t.Error("next handler was not invoked")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("converts a panic into a 500 JSON response", func(t *testing.T) {
		panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})
		rec := httptest.NewRecorder()

		Recoverer(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if body := rec.Body.String(); strings.Contains(body, "boom") {
			t.Errorf("panic detail leaked to the client: %q", body)
		}
	})
}
