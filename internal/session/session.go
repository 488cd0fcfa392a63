// Package session provides Valkey-backed admin session management.
// Sessions are identified by a secure cookie and stored as an
// authenticated-state sentinel in Valkey with automatic TTL expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "admin_session"

	// DefaultTTL is how long a session lives before automatic expiry.
	// The cookie MaxAge and the Valkey key TTL always match.
	DefaultTTL = 7 * 24 * time.Hour

	// sentinel is the value stored for a live session. A key holding
	// anything else is treated as unauthenticated.
	sentinel = "authenticated"

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Store manages the admin session lifecycle in Valkey. There is a single
// operator identity, so a session carries no user data beyond its validity.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store backed by the given Valkey client.
// When secure is true, session cookies are marked Secure (HTTPS-only).
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
		secure: secure,
	}
}

// Create generates a new session, stores the sentinel in Valkey, and sets
// the session cookie on the response. Returns the session ID.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter) (string, error) {
	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+id, sentinel, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// Valid reports whether the request carries a session cookie whose Valkey
// record exists and still holds the authenticated sentinel. Expired sessions
// disappear from Valkey on their own, so expiry needs no separate check.
func (s *Store) Valid(ctx context.Context, r *http.Request) (bool, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false, nil // No cookie = no session (not an error)
	}

	val, err := s.client.Get(ctx, keyPrefix+cookie.Value).Result()
	if err == redis.Nil {
		return false, nil // Session expired or doesn't exist
	}
	if err != nil {
		return false, fmt.Errorf("session get: %w", err)
	}

	return val == sentinel, nil
}

// Destroy removes the session from Valkey and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	s.client.Del(ctx, keyPrefix+cookie.Value)

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
