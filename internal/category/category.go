// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package category defines the fixed category catalog and the keyword-based
// category suggester used by the post editor.
package category

// Category is one entry of the fixed catalog, identified by a short id and
// carrying a display name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Fallback is the category suggested when no keyword matches. It is part of
// the catalog but intentionally has no keyword list of its own.
const Fallback = "daily"

// Catalog is the ordered list of post categories. It is built once at
// package init and never mutated.
var Catalog = []Category{
	{ID: "daily", Name: "일상"},
	{ID: "dev", Name: "개발"},
	{ID: "cooking", Name: "요리"},
	{ID: "study", Name: "공부"},
	{ID: "exercise", Name: "운동"},
}

// ids is the membership set derived from Catalog.
var ids = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Catalog))
	for _, c := range Catalog {
		m[c.ID] = struct{}{}
	}
	return m
}()

// IsValid reports whether id names a category in the catalog.
func IsValid(id string) bool {
	_, ok := ids[id]
	return ok
}

// Name returns the display name for a category id, or the id itself when it
// is not in the catalog.
func Name(id string) string {
	for _, c := range Catalog {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
