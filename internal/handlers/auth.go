package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"myblog/internal/session"
)

// Auth handles login and logout for the single admin operator.
type Auth struct {
	sessions     *session.Store
	password     string
	passwordHash string
}

// NewAuth creates an Auth handler group. When passwordHash (bcrypt) is
// non-empty it takes precedence over the plain password.
func NewAuth(sessions *session.Store, password, passwordHash string) *Auth {
	return &Auth{
		sessions:     sessions,
		password:     password,
		passwordHash: passwordHash,
	}
}

// Login handles POST /api/admin/login. On success it issues a session
// cookie; the failure message never says more than "wrong password".
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decodeInto(w, r, &req) {
		return
	}

	if !a.checkPassword(req.Password) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "비밀번호가 틀렸습니다.",
		})
		return
	}

	if _, err := a.sessions.Create(r.Context(), w); err != nil {
		slog.Error("session create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Logout handles DELETE /api/admin/login. Destroying a non-existent
// session succeeds.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// checkPassword verifies the submitted password against the configured
// credential: bcrypt when a hash is configured, constant-time equality
// otherwise.
func (a *Auth) checkPassword(submitted string) bool {
	if a.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(submitted)) == nil
	}
	if a.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(submitted)) == 1
}
