package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmdesk/console/internal/session"
	"github.com/gmdesk/console/internal/session/storage/inmem"
)

func TestStore_StartsEmpty(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(inmem.New())
	require.NoError(t, err)

	assert.Empty(t, store.GetToken())
	assert.Nil(t, store.GetUser())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_RestoresPersistedSession(t *testing.T) {
	t.Parallel()

	driver := inmem.New()
	require.NoError(t, driver.Store(&session.Session{
		Token: "tok-123",
		User:  &session.User{Username: "gm", Role: "ADMIN"},
	}))

	store, err := session.NewStore(driver)
	require.NoError(t, err)

	assert.Equal(t, "tok-123", store.GetToken())
	require.NotNil(t, store.GetUser())
	assert.Equal(t, "gm", store.GetUser().Username)
	assert.True(t, store.IsAuthenticated())
}

func TestStore_SetIdentity_PersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	driver := inmem.New()
	store, err := session.NewStore(driver)
	require.NoError(t, err)

	user := &session.User{Username: "gm", Role: "ADMIN"}
	require.NoError(t, store.SetIdentity("tok-123", user))

	reopened, err := session.NewStore(driver)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", reopened.GetToken())
	require.NotNil(t, reopened.GetUser())
	assert.Equal(t, "ADMIN", reopened.GetUser().Role)
}

func TestStore_SetToken_EmptyRemoves(t *testing.T) {
	t.Parallel()

	driver := inmem.New()
	store, err := session.NewStore(driver)
	require.NoError(t, err)

	require.NoError(t, store.SetToken("tok-123"))
	assert.True(t, store.IsAuthenticated())

	require.NoError(t, store.SetToken(""))
	assert.False(t, store.IsAuthenticated())

	persisted, err := driver.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestStore_Logout_ClearsTokenAndUserTogether(t *testing.T) {
	t.Parallel()

	driver := inmem.New()
	store, err := session.NewStore(driver)
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity("tok-123", &session.User{Username: "gm"}))

	require.NoError(t, store.Logout())

	assert.Empty(t, store.GetToken())
	assert.Nil(t, store.GetUser())

	persisted, err := driver.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestStore_Logout_IsIdempotent(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(inmem.New())
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_GetUser_ReturnsCopy(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(inmem.New())
	require.NoError(t, err)
	require.NoError(t, store.SetIdentity("tok-123", &session.User{Username: "gm", Role: "ADMIN"}))

	first := store.GetUser()
	first.Username = "mutated"

	assert.Equal(t, "gm", store.GetUser().Username)
}
