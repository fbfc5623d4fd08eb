// Package inmem implements a session storage driver that keeps the session in
// process memory only. It is used by tests and by embedders that do not want
// login state to survive a restart.
package inmem

import (
	"sync"

	"github.com/gmdesk/console/internal/session"
)

// Driver represents the in-memory session storage driver
type Driver struct {
	mu      sync.Mutex
	current *session.Session
}

var _ session.Storage = (*Driver)(nil)

// New creates a new empty in-memory session storage driver
func New() *Driver {
	return &Driver{}
}

// Load reads the stored session
func (driver *Driver) Load() (*session.Session, error) {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	if driver.current == nil {
		return nil, nil
	}
	snapshot := *driver.current
	return &snapshot, nil
}

// Store replaces the stored session
func (driver *Driver) Store(ses *session.Session) error {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	snapshot := *ses
	driver.current = &snapshot
	return nil
}

// Clear removes the stored session
func (driver *Driver) Clear() error {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	driver.current = nil
	return nil
}
