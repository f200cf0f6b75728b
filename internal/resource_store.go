package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// ResourceStore persists the full resource set to a single SQLite file.
// Save replaces the complete prior contents; Load returns an empty set when
// the file does not exist yet.
type ResourceStore struct {
	path string
}

// NewResourceStore creates a store backed by the file at path
func NewResourceStore(path string) *ResourceStore {
	return &ResourceStore{path: path}
}

// Path returns the backing file path
func (s *ResourceStore) Path() string {
	return s.path
}

// Save writes the full resource set, overwriting any prior content
func (s *ResourceStore) Save(resources []Resource) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}

	db, err := openDatabase(s.path)
	if err != nil {
		return &StorageError{Path: s.path, Op: "open", Err: err}
	}
	defer db.Close()

	if err := ensureMeta(db); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS resources (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		owner_name TEXT NOT NULL,
		owner_contact TEXT NOT NULL,
		owner_email TEXT,
		available INTEGER NOT NULL
	)`)
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: fmt.Errorf("failed to create resources table: %w", err)}
	}

	tx, err := db.Begin()
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM resources`); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}

	stmt, err := tx.Prepare(`INSERT INTO resources (id, name, owner_name, owner_contact, owner_email, available) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	defer stmt.Close()

	for _, r := range resources {
		var email sql.NullString
		if r.OwnerEmail != "" {
			email = sql.NullString{String: r.OwnerEmail, Valid: true}
		}
		if _, err := stmt.Exec(r.ID, r.Name, r.OwnerName, r.OwnerContact, email, boolToInt(r.Available)); err != nil {
			return &StorageError{Path: s.path, Op: "write", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Path: s.path, Op: "write", Err: err}
	}
	return nil
}

// Load reads the persisted resource set. A missing file yields an empty set;
// unreadable or incompatible data yields a StorageError.
func (s *ResourceStore) Load() ([]Resource, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return []Resource{}, nil
	}

	db, err := openDatabaseRO(s.path)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "open", Err: err}
	}
	defer db.Close()

	if err := checkMeta(db); err != nil {
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}

	rows, err := db.Query(`SELECT id, name, owner_name, owner_contact, owner_email, available FROM resources ORDER BY rowid`)
	if err != nil {
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}
	defer rows.Close()

	resources := make([]Resource, 0)
	for rows.Next() {
		var r Resource
		var email sql.NullString
		var available int
		if err := rows.Scan(&r.ID, &r.Name, &r.OwnerName, &r.OwnerContact, &email, &available); err != nil {
			return nil, &StorageError{Path: s.path, Op: "read", Err: err}
		}
		if email.Valid {
			r.OwnerEmail = email.String
		}
		r.Available = available != 0
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: s.path, Op: "read", Err: err}
	}

	return resources, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
