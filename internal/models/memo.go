// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data types shared between the stores and the
// HTTP handlers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// QuickMemo is a short uncategorized note. Unlike posts, memos have no
// status or category and cannot be edited after creation.
type QuickMemo struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
