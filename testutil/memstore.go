package testutil

import (
	"sort"

	"github.com/iksnae/trainlog/internal"
)

// MemoryStore is an in-memory SessionStore for tests.
type MemoryStore struct {
	sessions map[string]*internal.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*internal.Session)}
}

// InsertOrReplace stores a copy of the record keyed by id.
func (m *MemoryStore) InsertOrReplace(s *internal.Session) error {
	clone := *s
	m.sessions[s.ID] = &clone
	return nil
}

// ListAll returns all sessions in chronological order.
func (m *MemoryStore) ListAll() ([]*internal.Session, error) {
	out := make([]*internal.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		clone := *s
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteByKey removes a session; deleting a missing id is a no-op.
func (m *MemoryStore) DeleteByKey(id string) error {
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	return len(m.sessions)
}

// Get returns the stored session with the given id, or nil.
func (m *MemoryStore) Get(id string) *internal.Session {
	return m.sessions[id]
}
