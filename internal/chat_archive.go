package internal

import (
	"os"
	"path/filepath"
	"sort"
)

// ChatArchive persists the id -> message-sequence mapping to a single SQLite
// file. Save rewrites the full mapping; Load returns an empty map when the
// file does not exist. Append order is preserved through an explicit per-
// conversation sequence number, independent of message timestamps.
type ChatArchive struct {
	path string
}

// NewChatArchive creates an archive backed by the file at path
func NewChatArchive(path string) *ChatArchive {
	return &ChatArchive{path: path}
}

// Path returns the backing file path
func (a *ChatArchive) Path() string {
	return a.path
}

// Save writes the full conversation mapping, overwriting any prior content
func (a *ChatArchive) Save(convos map[string][]ChatMessage) error {
	if err := os.MkdirAll(filepath.Dir(a.path), 0755); err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}

	db, err := openDatabase(a.path)
	if err != nil {
		return &StorageError{Path: a.path, Op: "open", Err: err}
	}
	defer db.Close()

	if err := ensureMeta(db); err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS messages (
		convo_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		from_email TEXT NOT NULL,
		to_email TEXT NOT NULL,
		ts_millis INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (convo_id, seq)
	)`)
	if err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}

	tx, err := db.Begin()
	if err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM messages`); err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}

	stmt, err := tx.Prepare(`INSERT INTO messages (convo_id, seq, from_email, to_email, ts_millis, text) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}
	defer stmt.Close()

	// Stable iteration keeps writes deterministic
	ids := make([]string, 0, len(convos))
	for id := range convos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for seq, m := range convos[id] {
			if _, err := stmt.Exec(id, seq, m.FromEmail, m.ToEmail, m.TimestampMillis, m.Text); err != nil {
				return &StorageError{Path: a.path, Op: "write", Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Path: a.path, Op: "write", Err: err}
	}
	return nil
}

// Load reads the persisted conversation mapping. A missing file yields an
// empty map; unreadable or incompatible data yields a StorageError.
func (a *ChatArchive) Load() (map[string][]ChatMessage, error) {
	convos := make(map[string][]ChatMessage)

	if _, err := os.Stat(a.path); os.IsNotExist(err) {
		return convos, nil
	}

	db, err := openDatabaseRO(a.path)
	if err != nil {
		return nil, &StorageError{Path: a.path, Op: "open", Err: err}
	}
	defer db.Close()

	if err := checkMeta(db); err != nil {
		return nil, &StorageError{Path: a.path, Op: "read", Err: err}
	}

	rows, err := db.Query(`SELECT convo_id, from_email, to_email, ts_millis, text FROM messages ORDER BY convo_id, seq`)
	if err != nil {
		return nil, &StorageError{Path: a.path, Op: "read", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var m ChatMessage
		if err := rows.Scan(&id, &m.FromEmail, &m.ToEmail, &m.TimestampMillis, &m.Text); err != nil {
			return nil, &StorageError{Path: a.path, Op: "read", Err: err}
		}
		convos[id] = append(convos[id], m)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: a.path, Op: "read", Err: err}
	}

	return convos, nil
}
