package domain

// ListFilter provides filtering options for listing edit sessions.
type ListFilter struct {
	// Language filters sessions by their recorded highlight language.
	// If empty, all languages are included.
	Language string

	// Limit restricts the number of sessions returned.
	// If 0, no limit is applied.
	Limit int
}

// EditSessionRepository defines the persistence interface for EditSession
// entities. Implementations may use SQLite, in-memory storage, or other
// backends.
type EditSessionRepository interface {
	// Save persists a session to the repository.
	// For new sessions (ID == 0), this creates a new record and sets the ID.
	// For existing sessions (ID > 0), this updates the existing record.
	Save(session *EditSession) error

	// FindByPath retrieves the session for a file path.
	// Returns EditSessionNotFoundError if no matching session exists.
	FindByPath(path string) (*EditSession, error)

	// Delete removes the session for a file path.
	// Returns EditSessionNotFoundError if no matching session exists.
	Delete(path string) error

	// ListRecent retrieves sessions matching the given filter criteria.
	// Results are ordered by updated_at descending (most recent first).
	ListRecent(filter ListFilter) ([]*EditSession, error)

	// Close releases any resources held by the repository.
	Close() error
}
