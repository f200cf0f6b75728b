package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// schemaVersion tags both store files so a load can detect data written by an
// incompatible release instead of failing generically.
const schemaVersion = "1"

// openDatabase opens a SQLite database, creating the file if needed
func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// openDatabaseRO opens a SQLite database in read-only mode
func openDatabaseRO(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// ensureMeta creates the meta table and stamps the schema version. If the
// file was written by a different schema version it refuses to touch it.
func ensureMeta(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to create meta table: %w", err)
	}

	version, err := readVersion(db)
	if err != nil {
		return err
	}
	if version != "" && version != schemaVersion {
		return fmt.Errorf("incompatible schema version %q (want %q)", version, schemaVersion)
	}

	_, err = db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		return fmt.Errorf("failed to stamp schema version: %w", err)
	}
	return nil
}

// checkMeta verifies the schema version of an existing store file
func checkMeta(db *sql.DB) error {
	version, err := readVersion(db)
	if err != nil {
		return err
	}
	if version != schemaVersion {
		return fmt.Errorf("incompatible schema version %q (want %q)", version, schemaVersion)
	}
	return nil
}

func readVersion(db *sql.DB) (string, error) {
	var version string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
