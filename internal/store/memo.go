// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"myblog/internal/models"
)

// MemoStore handles all quick-memo database operations.
type MemoStore struct {
	db *sql.DB
}

// NewMemoStore creates a new MemoStore with the given database connection.
func NewMemoStore(db *sql.DB) *MemoStore {
	return &MemoStore{db: db}
}

// List returns the most recent memos, newest first, up to limit.
func (s *MemoStore) List(limit int) ([]models.QuickMemo, error) {
	rows, err := s.db.Query(`
		SELECT id, content, created_at
		FROM quick_memos
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list memos: %w", err)
	}
	defer rows.Close()

	memos := []models.QuickMemo{}
	for rows.Next() {
		var m models.QuickMemo
		if err := rows.Scan(&m.ID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan memo: %w", err)
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}

// Create inserts a new memo and returns it with the generated ID and timestamp.
func (s *MemoStore) Create(content string) (*models.QuickMemo, error) {
	m := &models.QuickMemo{}
	err := s.db.QueryRow(`
		INSERT INTO quick_memos (content)
		VALUES ($1)
		RETURNING id, content, created_at
	`, content).Scan(&m.ID, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create memo: %w", err)
	}
	return m, nil
}

// Delete removes a memo by ID. Returns false if no memo had the given id.
func (s *MemoStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM quick_memos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete memo: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete memo rows affected: %w", err)
	}
	return n > 0, nil
}
