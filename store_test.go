package sitemeta

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "site.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestLoadEmptyStore(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store = %v, want ErrNotFound", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := setupTestStore(t)
	m := Default()
	if err := s.Save(m); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != m {
		t.Errorf("Load() = %+v, want %+v", got, m)
	}
}

func TestSaveReplaces(t *testing.T) {
	s := setupTestStore(t)
	if err := s.Save(Default()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m := Default()
	m.Title = "Renamed"
	m.PaginationSize = 12
	if err := s.Save(m); err != nil {
		t.Fatalf("Save update failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Title != "Renamed" || got.PaginationSize != 12 {
		t.Errorf("Load() = %+v, want updated record", got)
	}
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM site_metadata`).Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("row count = %d, want 1", n)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := setupTestStore(t)
	m := Default()
	m.PaginationSize = 0
	if err := s.Save(m); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Save invalid = %v, want ErrInvalidConfig", err)
	}
	if _, err := s.Load(); !errors.Is(err, ErrNotFound) {
		t.Errorf("invalid metadata should not be stored, Load = %v", err)
	}
}
