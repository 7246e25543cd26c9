package internal

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLiteStore persists sessions in a local SQLite database. Each record is
// stored as a JSON blob keyed by id, with a date column kept alongside for
// indexed chronological listing.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a store over an already-opened database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// InsertOrReplace writes the full record, overwriting any existing row with
// the same id.
func (st *SQLiteStore) InsertOrReplace(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return &StorageError{Op: "write", Key: s.ID, Err: fmt.Errorf("encode failed: %w", err)}
	}

	_, err = st.db.Exec(`
		INSERT INTO sessions (id, date, data) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET date = excluded.date, data = excluded.data`,
		s.ID, s.Date, string(data))
	if err != nil {
		return &StorageError{Op: "write", Key: s.ID, Err: err}
	}
	return nil
}

// ListAll returns every stored session in chronological order. Rows that no
// longer decode are logged and skipped rather than failing the whole list.
func (st *SQLiteStore) ListAll() ([]*Session, error) {
	rows, err := st.db.Query("SELECT id, data FROM sessions ORDER BY date, id")
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	defer rows.Close()

	sessions := make([]*Session, 0)
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, &StorageError{Op: "read", Err: fmt.Errorf("scan failed: %w", err)}
		}

		var s Session
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			LogWarn("Skipping undecodable session %s: %v", id, err)
			continue
		}
		sessions = append(sessions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	return sessions, nil
}

// DeleteByKey removes the session with the given id.
func (st *SQLiteStore) DeleteByKey(id string) error {
	if _, err := st.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete", Key: id, Err: err}
	}
	return nil
}
