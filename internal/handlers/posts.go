// Package handlers implements the JSON API surface of the admin blog:
// authentication, post CRUD, quick memos, and editor helpers. Handlers run
// behind the session middleware; payload validation happens here, before
// anything reaches a store.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"myblog/internal/category"
	"myblog/internal/markdown"
	"myblog/internal/models"
	"myblog/internal/store"
)

// Posts groups the post CRUD and editor helper handlers.
type Posts struct {
	store *store.PostStore
}

// NewPosts creates a Posts handler group.
func NewPosts(postStore *store.PostStore) *Posts {
	return &Posts{store: postStore}
}

// Get handles GET /api/posts. With an id query parameter it returns a
// single post (404 when unknown); without one it returns the full admin
// listing, drafts included.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		uid, err := uuid.Parse(id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorBody("Post not found"))
			return
		}

		post, err := h.store.FindByID(uid)
		if err != nil {
			slog.Error("find post failed", "id", id, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to load post"))
			return
		}
		if post == nil {
			writeJSON(w, http.StatusNotFound, errorBody("Post not found"))
			return
		}
		writeJSON(w, http.StatusOK, post)
		return
	}

	posts, err := h.store.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to load posts"))
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// Create handles POST /api/posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if msg := validateCreatePost(payload); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorBody(msg))
		return
	}

	post := &models.Post{
		Title:             payloadString(payload, "title"),
		Slug:              payloadString(payload, "slug"),
		Content:           payloadString(payload, "content"),
		Description:       payloadString(payload, "description"),
		Category:          payloadString(payload, "category"),
		Tags:              payloadTags(payload),
		Status:            models.PostStatus(payloadString(payload, "status")),
		SuggestedCategory: payloadOptString(payload, "suggested_category"),
	}

	created, err := h.store.Create(post)
	if err != nil {
		slog.Error("create post failed", "slug", post.Slug, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to create post"))
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// Update handles PUT /api/posts. Only the supplied fields change; absent
// fields keep their stored values.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if msg := validateUpdatePost(payload); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorBody(msg))
		return
	}

	uid, err := uuid.Parse(payloadString(payload, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("Post not found"))
		return
	}

	patch := models.PostPatch{
		Title:             payloadOptString(payload, "title"),
		Slug:              payloadOptString(payload, "slug"),
		Content:           payloadOptString(payload, "content"),
		Description:       payloadOptString(payload, "description"),
		Category:          payloadOptString(payload, "category"),
		SuggestedCategory: payloadOptString(payload, "suggested_category"),
	}
	if s := payloadOptString(payload, "status"); s != nil {
		status := models.PostStatus(*s)
		patch.Status = &status
	}
	if _, present := payload["tags"]; present && payload["tags"] != nil {
		tags := payloadTags(payload)
		patch.Tags = &tags
	}

	updated, err := h.store.Update(uid, patch)
	if err != nil {
		slog.Error("update post failed", "id", uid, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to update post"))
		return
	}
	if updated == nil {
		writeJSON(w, http.StatusNotFound, errorBody("Post not found"))
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/posts?id=.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("Post ID required"))
		return
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("Post not found"))
		return
	}

	ok, err := h.store.Delete(uid)
	if err != nil {
		slog.Error("delete post failed", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to delete post"))
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("Post not found"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Preview handles POST /api/posts/preview: renders Markdown for the editor.
func (h *Posts) Preview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeInto(w, r, &req) {
		return
	}

	html, err := markdown.ToHTML(req.Content)
	if err != nil {
		slog.Error("markdown render failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to render preview"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"html": html})
}

// SuggestCategory handles POST /api/posts/suggest-category: runs the
// keyword classifier over the draft content. It always produces a category,
// falling back to the default when nothing matches.
func (h *Posts) SuggestCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if !decodeInto(w, r, &req) {
		return
	}

	suggestion := category.SuggestWithMinLength(req.Content, category.MinSuggestLength)
	writeJSON(w, http.StatusOK, map[string]any{"category": suggestion})
}

// payloadString returns the string at key, or "" when absent. Call only
// after validation has established the type.
func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}

// payloadOptString distinguishes absent keys from supplied values.
func payloadOptString(payload map[string]any, key string) *string {
	v, present := payload[key]
	if !present || v == nil {
		return nil
	}
	s, _ := v.(string)
	return &s
}

// payloadTags converts the validated tags array, preserving order.
func payloadTags(payload map[string]any) []string {
	items, _ := payload["tags"].([]any)
	tags := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}
