package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmdesk/console/internal/session"
	"github.com/gmdesk/console/internal/session/storage/file"
)

func TestDriver_Load_MissingFile(t *testing.T) {
	t.Parallel()

	driver := file.New(filepath.Join(t.TempDir(), "session.json"))

	loaded, err := driver.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDriver_Load_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	loaded, err := file.New(path).Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDriver_StoreAndLoad(t *testing.T) {
	t.Parallel()

	// The parent directory does not exist yet; Store has to create it
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	driver := file.New(path)

	stored := &session.Session{
		Token: "tok-123",
		User:  &session.User{Username: "gm", Role: "ADMIN"},
	}
	require.NoError(t, driver.Store(stored))

	loaded, err := driver.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, stored, loaded)
}

func TestDriver_Load_EmptySessionIsNoSession(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	driver := file.New(path)
	require.NoError(t, driver.Store(&session.Session{}))

	loaded, err := driver.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestDriver_Clear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	driver := file.New(path)
	require.NoError(t, driver.Store(&session.Session{Token: "tok-123"}))

	require.NoError(t, driver.Clear())

	loaded, err := driver.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing an already-missing session stays a no-op
	require.NoError(t, driver.Clear())
}
