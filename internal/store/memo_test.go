package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestMemoCreateAndList(t *testing.T) {
	db := testDB(t)
	s := NewMemoStore(db)
	t.Cleanup(func() { cleanMemos(t, db, "memo-one", "memo-two") })

	first, err := s.Create("memo-one")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.ID == uuid.Nil || first.CreatedAt.IsZero() {
		t.Error("created memo missing id or timestamp")
	}

	if _, err := s.Create("memo-two"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	memos, err := s.List(50)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(memos) < 2 {
		t.Fatalf("List returned %d memos, want at least 2", len(memos))
	}

	// Newest first.
	for i := 1; i < len(memos); i++ {
		if memos[i].CreatedAt.After(memos[i-1].CreatedAt) {
			t.Errorf("memos out of order at index %d", i)
		}
	}
}

func TestMemoListLimit(t *testing.T) {
	db := testDB(t)
	s := NewMemoStore(db)
	t.Cleanup(func() { cleanMemos(t, db, "memo-limit") })

	for i := 0; i < 3; i++ {
		if _, err := s.Create("memo-limit"); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	memos, err := s.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(memos) != 1 {
		t.Errorf("List(1) returned %d memos, want 1", len(memos))
	}
}

func TestMemoDelete(t *testing.T) {
	db := testDB(t)
	s := NewMemoStore(db)
	t.Cleanup(func() { cleanMemos(t, db, "memo-delete") })

	m, err := s.Create("memo-delete")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ok, err := s.Delete(m.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !ok {
		t.Error("Delete of existing memo returned false")
	}

	ok, err = s.Delete(m.ID)
	if err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if ok {
		t.Error("Delete of missing memo returned true")
	}
}
