package testutil

import (
	"database/sql"
	"testing"

	"github.com/iksnae/trainlog/internal"
)

// IntPtr returns a pointer to v, for filling optional session fields.
func IntPtr(v int) *int {
	return &v
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 {
	return &f
}

// NewPlannedSession creates a session with only the required planned fields.
func NewPlannedSession(id, date string) *internal.Session {
	return &internal.Session{
		ID:             id,
		Date:           date,
		Type:           internal.WorkoutEasyRun,
		WorkoutName:    "Easy run 50 min",
		PlannedMinutes: 50,
		PlannedZone:    internal.ZoneZ2,
		CreatedAt:      1700000000000,
		UpdatedAt:      1700000000000,
	}
}

// NewCompletedSession creates a session with actuals that score a perfect
// duration and zone adherence (score 100 against the default plan).
func NewCompletedSession(id, date string) *internal.Session {
	s := NewPlannedSession(id, date)
	s.ActualMinutes = IntPtr(50)
	s.HRAvg = IntPtr(150)
	return s
}

// OpenTestDatabase opens an in-memory SQLite database with the trainlog
// schema, closed automatically when the test ends.
func OpenTestDatabase(t *testing.T) *sql.DB {
	t.Helper()
	db, err := internal.OpenDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SeedStore inserts sessions into a store, failing the test on error.
func SeedStore(t *testing.T, store internal.SessionStore, sessions ...*internal.Session) {
	t.Helper()
	for _, s := range sessions {
		if err := store.InsertOrReplace(s); err != nil {
			t.Fatalf("Failed to seed session %s: %v", s.ID, err)
		}
	}
}
