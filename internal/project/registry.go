package project

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// registryFileName is the per-root database recording project registrations
// and their creation order.
const registryFileName = ".hdlbench.db"

type registry struct {
	db   *sql.DB
	path string
}

type registryRow struct {
	Name      string
	Path      string
	CreatedAt time.Time
}

func openRegistry(root string) (*registry, error) {
	path := filepath.Join(root, registryFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrateRegistry(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &registry{db: db, path: path}, nil
}

func migrateRegistry(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			path TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("registry migration failed: %w", err)
		}
	}
	return nil
}

func (r *registry) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// List returns registered projects in creation order (rowid sequence).
func (r *registry) List() ([]registryRow, error) {
	rows, err := r.db.Query(`SELECT name, path, created_at FROM projects ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []registryRow
	for rows.Next() {
		var (
			row     registryRow
			created string
		)
		if err := rows.Scan(&row.Name, &row.Path, &created); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			row.CreatedAt = t
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add registers a project. Re-registering an existing name updates its path
// and keeps the original creation order.
func (r *registry) Add(name, path string, createdAt time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	_, err := r.db.Exec(
		`INSERT INTO projects (name, path, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET path = excluded.path`,
		name, filepath.Clean(path), createdAt.UTC().Format(time.RFC3339Nano))
	return err
}

// Remove drops a registration.
func (r *registry) Remove(name string) error {
	_, err := r.db.Exec(`DELETE FROM projects WHERE name = ?`, name)
	return err
}
