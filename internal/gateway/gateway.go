// Package gateway implements the single chokepoint through which every call
// to the game-master API is issued. It owns request construction, credential
// injection, response decoding, error normalization and the forced logout
// that follows an authentication-rejected response.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gmdesk/console/internal/session"
)

// Descriptor describes one pending HTTP call before it is issued
type Descriptor struct {
	// Method is the HTTP method (GET, POST, PUT or DELETE)
	Method string

	// Path is appended to the configured base URL
	Path string

	// Body is serialized as the JSON request body when non-nil
	Body any

	// Header holds additional request headers. The Content-Type and
	// Authorization headers are owned by the gateway and cannot be overridden.
	Header map[string]string

	// NoCredentials suppresses the cookies kept by the gateway's cookie jar
	NoCredentials bool
}

// Options holds the optional dependencies of a Client
type Options struct {
	// HTTPClient replaces the default transport. The gateway attaches its own
	// cookie jar to it unless one is already set.
	HTTPClient *http.Client

	// Logger receives one debug event per request. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client issues requests against the game-master API.
// Every call performs exactly one network attempt: there are no retries, no
// timeouts and no backoff. A caller that wants to give up early cancels the
// context it passed in.
type Client struct {
	baseURL  string
	store    *session.Store
	notifier *session.Notifier
	http     *http.Client
	bare     *http.Client
	logger   zerolog.Logger
}

// New creates a new gateway client issuing requests against the given base URL
func New(baseURL string, store *session.Store, notifier *session.Notifier, opts *Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("gateway: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("gateway: base URL must be a valid absolute URL")
	}

	if opts == nil {
		opts = &Options{}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		httpClient.Jar = jar
	}

	// The jarless twin serves descriptors that opt out of credentials
	bare := *httpClient
	bare.Jar = nil

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Client{
		baseURL:  baseURL,
		store:    store,
		notifier: notifier,
		http:     httpClient,
		bare:     &bare,
		logger:   logger,
	}, nil
}

// Do executes a single HTTP call described by the given descriptor and
// returns the decoded JSON response body.
//
// The resolved value is nil for empty bodies and for non-JSON responses. A
// non-2xx status resolves to an *APIError. A 2xx response whose body claims
// to be JSON but does not parse resolves to ErrInvalidJSON.
//
// A 401 status clears the session store and fires the forced-logout broadcast
// before the error is returned to the caller.
func (client *Client) Do(ctx context.Context, descriptor Descriptor) (json.RawMessage, error) {
	var bodyReader io.Reader
	if descriptor.Body != nil {
		raw, err := json.Marshal(descriptor.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, descriptor.Method, client.baseURL+descriptor.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// Caller headers first; the gateway-owned headers win on conflict
	for name, value := range descriptor.Header {
		req.Header.Set(name, value)
	}
	if descriptor.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	} else {
		req.Header.Del("Content-Type")
	}
	if token := client.store.GetToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Del("Authorization")
	}

	requestID := uuid.NewString()
	httpClient := client.http
	if descriptor.NoCredentials {
		httpClient = client.bare
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	client.logger.Debug().
		Str("request_id", requestID).
		Str("method", descriptor.Method).
		Str("path", descriptor.Path).
		Int("status", resp.StatusCode).
		Msg("api call")

	// The forced logout is unconditional on seeing a 401, independent of what
	// the call ultimately reports to the caller.
	if resp.StatusCode == http.StatusUnauthorized {
		client.forceLogout(requestID)
	}

	isJSON := jsonContentType(resp.Header.Get("Content-Type"))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, client.failure(resp, isJSON)
	}

	if !isJSON {
		return nil, nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(raw), nil
}

// failure builds the error for a non-2xx response.
// The body is carried along for programmatic inspection; an unreadable or
// malformed body degrades to a literal placeholder rather than failing the
// error path itself.
func (client *Client) failure(resp *http.Response, isJSON bool) error {
	payload, err := io.ReadAll(resp.Body)
	if err != nil || (isJSON && len(payload) > 0 && !json.Valid(payload)) {
		payload = []byte("Unknown error")
	}
	return &APIError{
		Status:  resp.StatusCode,
		Payload: payload,
	}
}

// forceLogout clears the session store and broadcasts the forced logout.
// Both effects are idempotent, so concurrent calls that each receive a 401
// are benign.
func (client *Client) forceLogout(requestID string) {
	if err := client.store.Logout(); err != nil {
		client.logger.Error().Err(err).Str("request_id", requestID).Msg("could not clear the rejected session")
	}
	client.logger.Warn().Str("request_id", requestID).Msg("session rejected by the API; forcing logout")
	client.notifier.Notify()
}

func jsonContentType(value string) bool {
	return strings.Contains(strings.ToLower(value), "application/json")
}
