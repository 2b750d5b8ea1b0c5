package sitemeta

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Store.Load when no metadata has been saved.
var ErrNotFound = errors.New("sitemeta: no stored metadata")

// Store persists one Metadata record in SQLite, so a deployment can keep
// its site metadata next to its content database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sitemeta: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sitemeta: open store: %w", err)
	}
	// WAL lets readers proceed while a save is in flight; writers wait on
	// busy_timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("sitemeta: configure store: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sitemeta: ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS site_metadata (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    author TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    lang TEXT NOT NULL,
    og_locale TEXT NOT NULL,
    share_message TEXT NOT NULL,
    pagination_size INTEGER NOT NULL
);
`)
	return err
}

// Save validates m and replaces the stored record with it.
func (s *Store) Save(m Metadata) error {
	if err := m.Validate(); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO site_metadata (id, author, title, description, lang, og_locale, share_message, pagination_size) VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		m.Author, m.Title, m.Description, m.Lang, m.OGLocale, m.ShareMessage, m.PaginationSize)
	if err != nil {
		return fmt.Errorf("sitemeta: save metadata: %w", err)
	}
	return nil
}

// Load returns the stored record, or ErrNotFound.
func (s *Store) Load() (Metadata, error) {
	var m Metadata
	err := s.db.QueryRow(`SELECT author, title, description, lang, og_locale, share_message, pagination_size FROM site_metadata WHERE id = 1`).
		Scan(&m.Author, &m.Title, &m.Description, &m.Lang, &m.OGLocale, &m.ShareMessage, &m.PaginationSize)
	if errors.Is(err, sql.ErrNoRows) {
		return Metadata{}, ErrNotFound
	}
	if err != nil {
		return Metadata{}, fmt.Errorf("sitemeta: load metadata: %w", err)
	}
	return m, nil
}
