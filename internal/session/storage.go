package session

// Storage defines the session persistence API
type Storage interface {
	// Load reads the persisted session.
	// A session that was never stored, or one whose persisted form no longer
	// deserializes, loads as nil without an error.
	Load() (*Session, error)

	// Store persists the given session, replacing any previous one
	Store(session *Session) error

	// Clear removes the persisted session
	Clear() error
}
