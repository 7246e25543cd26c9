package internal

import (
	"encoding/json"
	"fmt"
	"time"
)

// BackupVersion is the only snapshot version this tool reads or writes.
// Any other version is rejected, never coerced.
const BackupVersion = 1

// Backup is a portable, versioned snapshot of the whole session store.
type Backup struct {
	Version    int        `json:"version"`
	ExportedAt string     `json:"exportedAt"`
	Sessions   []*Session `json:"sessions"`
}

// ExportBackup serializes every session in the store, unfiltered, as
// pretty-printed JSON.
func ExportBackup(store SessionStore) ([]byte, error) {
	sessions, err := store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	backup := Backup{
		Version:    BackupVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sessions:   sessions,
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ImportBackup parses a snapshot and merges it into the store by id:
// matching records are fully overwritten, records absent from the snapshot
// are untouched. Validation strictly precedes writing, so a rejected import
// leaves the store unmodified. Imported records get a fresh updatedAt (and
// createdAt, when missing), so re-importing the same backup is not
// idempotent on updatedAt.
//
// Returns the number of records written. A structurally malformed snapshot
// fails with *InvalidBackupError.
func ImportBackup(store SessionStore, data []byte) (int, error) {
	var raw struct {
		Version  *int            `json:"version"`
		Sessions json.RawMessage `json:"sessions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, &InvalidBackupError{Reason: "not a JSON object", Err: err}
	}

	if raw.Version == nil {
		return 0, &InvalidBackupError{Reason: "missing version"}
	}
	if *raw.Version != BackupVersion {
		return 0, &InvalidBackupError{Reason: fmt.Sprintf("unsupported version %d", *raw.Version)}
	}

	var sessions []*Session
	if err := json.Unmarshal(raw.Sessions, &sessions); err != nil {
		return 0, &InvalidBackupError{Reason: "sessions is not an array", Err: err}
	}
	if sessions == nil {
		return 0, &InvalidBackupError{Reason: "sessions is not an array"}
	}

	now := NowMillis()
	count := 0
	for _, s := range sessions {
		if s == nil {
			LogWarn("Skipping null session entry in backup")
			continue
		}
		if s.CreatedAt == 0 {
			s.CreatedAt = now
		}
		s.UpdatedAt = now

		if err := store.InsertOrReplace(s); err != nil {
			// Per-record writes are atomic but there is no cross-record
			// transaction: the first count records stay committed.
			return count, fmt.Errorf("failed to import session %s: %w", s.ID, err)
		}
		count++
	}
	return count, nil
}
