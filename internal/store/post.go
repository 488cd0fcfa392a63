// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for posts and quick memos.
// Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"myblog/internal/category"
	"myblog/internal/models"
)

const postColumns = `id, title, slug, content, description, category, tags,
	       status, suggested_category, created_at, updated_at`

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// scanPost reads one post row. Tags are stored as a JSONB array.
func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	var tags []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Description, &p.Category,
		&tags, &p.Status, &p.SuggestedCategory, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}

// List returns every post, drafts included, ordered by last update
// descending. This is the admin-facing listing.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + `
		FROM posts
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT `+postColumns+`
		FROM posts WHERE id = $1
	`, id)

	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Create inserts a new post and returns it with the generated ID and
// timestamps. Empty status and category fall back to their defaults.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
	if p.Category == "" {
		p.Category = category.Fallback
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO posts (title, slug, content, description, category, tags,
		                   status, suggested_category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Description, p.Category, tags,
		p.Status, p.SuggestedCategory,
	)

	created, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update applies a partial update: only non-nil patch fields change, every
// other column keeps its stored value. Returns the updated post, or nil if
// no post has the given id.
func (s *PostStore) Update(id uuid.UUID, patch models.PostPatch) (*models.Post, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Title != nil {
		set = append(set, "title = "+arg(*patch.Title))
	}
	if patch.Slug != nil {
		set = append(set, "slug = "+arg(*patch.Slug))
	}
	if patch.Content != nil {
		set = append(set, "content = "+arg(*patch.Content))
	}
	if patch.Description != nil {
		set = append(set, "description = "+arg(*patch.Description))
	}
	if patch.Category != nil {
		set = append(set, "category = "+arg(*patch.Category))
	}
	if patch.Tags != nil {
		tags, err := json.Marshal(*patch.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}
		set = append(set, "tags = "+arg(tags))
	}
	if patch.Status != nil {
		set = append(set, "status = "+arg(*patch.Status))
	}
	if patch.SuggestedCategory != nil {
		set = append(set, "suggested_category = "+arg(*patch.SuggestedCategory))
	}

	query := fmt.Sprintf(`
		UPDATE posts SET %s
		WHERE id = %s
		RETURNING %s`, strings.Join(set, ", "), arg(id), postColumns)

	p, err := scanPost(s.db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return p, nil
}

// Delete removes a post by ID. Returns false if no post had the given id.
func (s *PostStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return n > 0, nil
}
