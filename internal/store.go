package internal

// SessionStore is the keyed store the engine runs against. Range filtering
// (week/month) is the caller's job, done against the full list; the store
// itself only needs these three operations.
type SessionStore interface {
	// InsertOrReplace writes the full record keyed by its id. There are no
	// partial-field updates.
	InsertOrReplace(s *Session) error

	// ListAll returns every stored session.
	ListAll() ([]*Session, error)

	// DeleteByKey removes the session with the given id. Deleting a missing
	// id is not an error.
	DeleteByKey(id string) error
}
