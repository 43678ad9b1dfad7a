// Package storage provides SQLite-based persistence for the link visit log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the visit log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Visit is a single link activation record.
type Visit struct {
	ID        string
	Tag       string
	URL       string
	Session   string // Empty for local play
	Host      string // "terminal", "window" or "ssh"
	CreatedAt time.Time
}

// VisitCount aggregates activations per tag.
type VisitCount struct {
	Tag       string
	Count     int
	LastVisit time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			tag TEXT NOT NULL,
			url TEXT NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			host TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_visits_tag ON visits(tag);
		CREATE INDEX IF NOT EXISTS idx_visits_created ON visits(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordVisit stores one link activation and returns its ID.
func (s *Store) RecordVisit(tag, url, session, host string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO visits (id, tag, url, session, host, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, tag, url, session, host, s.now().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record visit: %w", err)
	}
	return id, nil
}

// RecentVisits retrieves the latest activations, newest first.
func (s *Store) RecentVisits(limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, tag, url, session, host, created_at
		 FROM visits
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var created int64
		if err := rows.Scan(&v.ID, &v.Tag, &v.URL, &v.Session, &v.Host, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		v.CreatedAt = time.Unix(0, created)
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return visits, nil
}

// VisitCounts returns activation totals per tag, most visited first.
func (s *Store) VisitCounts() ([]VisitCount, error) {
	rows, err := s.db.Query(
		`SELECT tag, COUNT(*), MAX(created_at)
		 FROM visits
		 GROUP BY tag
		 ORDER BY COUNT(*) DESC, tag ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count visits: %w", err)
	}
	defer rows.Close()

	var counts []VisitCount
	for rows.Next() {
		var c VisitCount
		var last int64
		if err := rows.Scan(&c.Tag, &c.Count, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan count row: %w", err)
		}
		c.LastVisit = time.Unix(0, last)
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearVisits deletes the whole visit log.
func (s *Store) ClearVisits() error {
	if _, err := s.db.Exec("DELETE FROM visits"); err != nil {
		return fmt.Errorf("storage: cannot clear visits: %w", err)
	}
	return nil
}
