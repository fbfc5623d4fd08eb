// Package file implements the durable session storage driver, persisting the
// session as a single JSON document on the local filesystem so a login
// survives console restarts.
package file

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gmdesk/console/internal/session"
)

// Driver represents the file-backed session storage driver
type Driver struct {
	path string
}

var _ session.Storage = (*Driver)(nil)

// New creates a new session storage driver persisting to the given path
func New(path string) *Driver {
	return &Driver{path: path}
}

// Load reads the persisted session.
// A missing file or one that does not deserialize loads as no session at all.
func (driver *Driver) Load() (*session.Session, error) {
	raw, err := os.ReadFile(driver.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	restored := new(session.Session)
	if err := json.Unmarshal(raw, restored); err != nil {
		return nil, nil
	}
	if restored.Empty() {
		return nil, nil
	}
	return restored, nil
}

// Store persists the given session, creating the parent directory if needed.
// The session is written to a temporary sibling file first and renamed into
// place so a concurrent reader never observes a partially written session.
func (driver *Driver) Store(ses *session.Session) error {
	raw, err := json.Marshal(ses)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(driver.path), 0o700); err != nil {
		return err
	}

	tmp := driver.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, driver.path)
}

// Clear removes the persisted session
func (driver *Driver) Clear() error {
	if err := os.Remove(driver.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
