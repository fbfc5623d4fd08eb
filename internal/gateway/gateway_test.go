package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmdesk/console/internal/gateway"
	"github.com/gmdesk/console/internal/session"
	"github.com/gmdesk/console/internal/session/storage/inmem"
)

type testConsole struct {
	client  *gateway.Client
	store   *session.Store
	logouts *int
}

func newTestConsole(t *testing.T, handler http.Handler) *testConsole {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore(inmem.New())
	require.NoError(t, err)

	notifier := session.NewNotifier()
	logouts := 0
	notifier.Subscribe(func() { logouts++ })

	client, err := gateway.New(server.URL, store, notifier, nil)
	require.NoError(t, err)

	return &testConsole{
		client:  client,
		store:   store,
		logouts: &logouts,
	}
}

func writeJSON(writer http.ResponseWriter, status int, body string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	writer.Write([]byte(body))
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(inmem.New())
	require.NoError(t, err)
	notifier := session.NewNotifier()

	for _, baseURL := range []string{"", "   ", "not a url", "/just/a/path", "localhost:8080"} {
		_, err := gateway.New(baseURL, store, notifier, nil)
		assert.Error(t, err, "base URL %q should be rejected", baseURL)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	var seenPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenPath = request.URL.Path
		writeJSON(writer, http.StatusOK, `{}`)
	}))
	t.Cleanup(server.Close)

	store, err := session.NewStore(inmem.New())
	require.NoError(t, err)

	client, err := gateway.New(server.URL+"/", store, session.NewNotifier(), nil)
	require.NoError(t, err)

	_, err = client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	require.NoError(t, err)
	assert.Equal(t, "/items", seenPath)
}

func TestDo_ContentTypeFollowsBody(t *testing.T) {
	t.Parallel()

	var contentType string
	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		contentType = request.Header.Get("Content-Type")
		writeJSON(writer, http.StatusOK, `{}`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	require.NoError(t, err)
	assert.Empty(t, contentType)

	_, err = console.client.Do(context.Background(), gateway.Descriptor{
		Method: http.MethodPost,
		Path:   "/items",
		Body:   map[string]string{"name": "Torch"},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
}

func TestDo_BearerFollowsStoredToken(t *testing.T) {
	t.Parallel()

	var authorization string
	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorization = request.Header.Get("Authorization")
		writeJSON(writer, http.StatusOK, `{}`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	require.NoError(t, err)
	assert.Empty(t, authorization)

	require.NoError(t, console.store.SetToken("tok-123"))
	_, err = console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", authorization)
}

func TestDo_GatewayOwnedHeadersWin(t *testing.T) {
	t.Parallel()

	var authorization, contentType, custom string
	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorization = request.Header.Get("Authorization")
		contentType = request.Header.Get("Content-Type")
		custom = request.Header.Get("X-Trace")
		writeJSON(writer, http.StatusOK, `{}`)
	}))
	require.NoError(t, console.store.SetToken("tok-123"))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{
		Method: http.MethodPost,
		Path:   "/items",
		Body:   map[string]string{"name": "Torch"},
		Header: map[string]string{
			"Authorization": "Bearer forged",
			"Content-Type":  "text/plain",
			"X-Trace":       "abc",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", authorization)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "abc", custom)
}

func TestDo_DecodesJSONResponse(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusOK, `{"id":7,"name":"Torch"}`)
	}))

	raw, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items/7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Torch"}`, string(raw))
}

func TestDo_EmptyJSONBodyResolvesToNil(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusOK)
	}))

	raw, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodDelete, Path: "/quests/42"})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDo_NonJSONResponseResolvesToNil(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "text/plain")
		writer.Write([]byte("pong"))
	}))

	raw, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/ping"})
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDo_MalformedJSONResponse(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusOK, `{"id":`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items/7"})
	assert.ErrorIs(t, err, gateway.ErrInvalidJSON)
}

func TestDo_FailureCarriesStatusAndMessage(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusNotFound, `{"error":"Character not found"}`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/characters/99"})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Character not found", err.Error())
}

func TestDo_FailureWithoutErrorField(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusInternalServerError, `{"detail":"boom"}`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API error: 500", err.Error())
}

func TestDo_FailureWithMalformedBody(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusBadGateway, `<html>`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, []byte("Unknown error"), apiErr.Payload)
}

func TestDo_UnauthorizedForcesLogout(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusUnauthorized, `{"error":"Invalid or expired token"}`)
	}))
	require.NoError(t, console.store.SetIdentity("tok-123", &session.User{Username: "gm"}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/characters"})
	require.Error(t, err)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid or expired token", err.Error())

	assert.False(t, console.store.IsAuthenticated())
	assert.Nil(t, console.store.GetUser())
	assert.Equal(t, 1, *console.logouts)
}

func TestDo_UnauthorizedWithoutSessionStillBroadcasts(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusUnauthorized, `{"error":"Invalid username or password"}`)
	}))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodPost, Path: "/auth/login"})
	require.Error(t, err)
	assert.Equal(t, 1, *console.logouts)
}

func TestDo_NonUnauthorizedFailureKeepsSession(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusForbidden, `{"error":"Forbidden"}`)
	}))
	require.NoError(t, console.store.SetToken("tok-123"))

	_, err := console.client.Do(context.Background(), gateway.Descriptor{Method: http.MethodGet, Path: "/characters"})
	require.Error(t, err)

	assert.True(t, console.store.IsAuthenticated())
	assert.Zero(t, *console.logouts)
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Parallel()

	console := newTestConsole(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(writer, http.StatusOK, `{}`)
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := console.client.Do(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/items"})
	assert.ErrorIs(t, err, context.Canceled)
}
