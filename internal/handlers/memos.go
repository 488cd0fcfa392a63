package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"myblog/internal/cache"
	"myblog/internal/store"
)

// Quick-memo feed limits. Out-of-range values are clamped, not rejected.
const (
	memoLimitDefault = 10
	memoLimitMin     = 1
	memoLimitMax     = 50
)

// Memos groups the quick-memo handlers. The feed cache is optional; when
// nil, every listing hits the database.
type Memos struct {
	store *store.MemoStore
	feed  *cache.FeedCache
}

// NewMemos creates a Memos handler group.
func NewMemos(memoStore *store.MemoStore, feed *cache.FeedCache) *Memos {
	return &Memos{store: memoStore, feed: feed}
}

// List handles GET /api/quick-memos?limit=. This is the one public read:
// the memo feed is embedded on the public site.
func (h *Memos) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"))

	key := cache.MemoKey(limit)
	if h.feed != nil {
		if body, ok := h.feed.Get(r.Context(), key); ok {
			writeRawJSON(w, http.StatusOK, body)
			return
		}
	}

	memos, err := h.store.List(limit)
	if err != nil {
		slog.Error("list memos failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to load memos"))
		return
	}

	body, err := json.Marshal(memos)
	if err != nil {
		slog.Error("encode memos failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to load memos"))
		return
	}

	if h.feed != nil {
		h.feed.Set(r.Context(), key, body)
	}
	writeRawJSON(w, http.StatusOK, body)
}

// Create handles POST /api/quick-memos.
func (h *Memos) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if msg := validateMemoContent(payload); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorBody(msg))
		return
	}

	content := strings.TrimSpace(payloadString(payload, "content"))
	memo, err := h.store.Create(content)
	if err != nil {
		slog.Error("create memo failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to create memo"))
		return
	}

	if h.feed != nil {
		h.feed.InvalidateAll(r.Context())
	}
	writeJSON(w, http.StatusOK, memo)
}

// Delete handles DELETE /api/quick-memos?id=.
func (h *Memos) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("Memo ID required"))
		return
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("Memo not found"))
		return
	}

	ok, err := h.store.Delete(uid)
	if err != nil {
		slog.Error("delete memo failed", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to delete memo"))
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Memo not found"))
		return
	}

	if h.feed != nil {
		h.feed.InvalidateAll(r.Context())
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// parseLimit applies the feed's limit policy: non-numeric or zero falls
// back to the default, anything else is clamped into [min, max].
func parseLimit(raw string) int {
	limit := memoLimitDefault
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n != 0 {
			limit = n
		}
	}
	if limit < memoLimitMin {
		limit = memoLimitMin
	}
	if limit > memoLimitMax {
		limit = memoLimitMax
	}
	return limit
}
