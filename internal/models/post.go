// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// Post is a blog post managed through the admin API. Content is Markdown
// source; rendering happens at display time.
type Post struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	Content           string     `json:"content"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Tags              []string   `json:"tags"`
	Status            PostStatus `json:"status"`
	SuggestedCategory *string    `json:"suggested_category,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// PostPatch describes a partial update to a post. Nil fields are left
// unchanged by the store.
type PostPatch struct {
	Title             *string
	Slug              *string
	Content           *string
	Description       *string
	Category          *string
	Tags              *[]string
	Status            *PostStatus
	SuggestedCategory *string
}
