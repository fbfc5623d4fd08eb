package session

import "sync"

// Store is the single source of truth for the current authentication state.
// It keeps an in-memory mirror of the persisted session so reads never touch
// the storage driver and concurrent clears stay idempotent.
type Store struct {
	mu      sync.Mutex
	storage Storage
	current Session
}

// NewStore creates a new session store backed by the given storage driver,
// restoring any previously persisted session.
func NewStore(storage Storage) (*Store, error) {
	restored, err := storage.Load()
	if err != nil {
		return nil, err
	}
	store := &Store{storage: storage}
	if restored != nil {
		store.current = *restored
	}
	return store, nil
}

// GetToken returns the current authentication token, or an empty string if none is present
func (store *Store) GetToken() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current.Token
}

// SetToken persists the given token. An empty token removes it.
func (store *Store) SetToken(token string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.Token = token
	return store.persistLocked()
}

// GetUser returns the identity of the logged-in user, or nil if none is present
func (store *Store) GetUser() *User {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.current.User == nil {
		return nil
	}
	user := *store.current.User
	return &user
}

// SetUser persists the given user identity. A nil user removes it.
func (store *Store) SetUser(user *User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current.User = user
	return store.persistLocked()
}

// SetIdentity stores the token and the user identity in a single write.
// This is the login path.
func (store *Store) SetIdentity(token string, user *User) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current = Session{Token: token, User: user}
	return store.persistLocked()
}

// IsAuthenticated reports whether a token is present
func (store *Store) IsAuthenticated() bool {
	return store.GetToken() != ""
}

// Logout clears both the token and the user identity.
// The clear is atomic from the caller's point of view: no reader ever sees
// one of the two fields cleared without the other.
func (store *Store) Logout() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.current = Session{}
	return store.storage.Clear()
}

// persistLocked writes the current session through the storage driver.
// An all-empty session is cleared rather than stored.
func (store *Store) persistLocked() error {
	if store.current.Empty() {
		return store.storage.Clear()
	}
	snapshot := store.current
	return store.storage.Store(&snapshot)
}
