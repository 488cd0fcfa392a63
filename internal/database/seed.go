package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"myblog/internal/slug"
)

// Seed populates the database with initial development data: one published
// post, one draft, and a quick memo. It is a no-op when posts already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	posts := []struct {
		title    string
		content  string
		category string
		status   string
		tags     string
	}{
		{
			title:    "Hello World",
			content:  "# 첫 글\n\n블로그를 시작합니다. Next.js에서 Go로 옮겨온 첫 포스트.",
			category: "dev",
			status:   "published",
			tags:     `["blog", "intro"]`,
		},
		{
			title:    "Draft Ideas",
			content:  "아직 작성 중인 메모.",
			category: "daily",
			status:   "draft",
			tags:     `[]`,
		},
	}

	for _, p := range posts {
		_, err := db.Exec(`
			INSERT INTO posts (title, slug, content, category, tags, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.title, slug.Generate(p.title), p.content, p.category, p.tags, p.status)
		if err != nil {
			return fmt.Errorf("seed insert post: %w", err)
		}
	}

	if _, err := db.Exec(`
		INSERT INTO quick_memos (content) VALUES ($1)
	`, "첫 번째 퀵메모"); err != nil {
		return fmt.Errorf("seed insert memo: %w", err)
	}

	slog.Info("database seeded with sample posts and memo")
	return nil
}
