package gm

import (
	"context"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
	"github.com/gmdesk/console/internal/session"
)

// Credentials is the username/password pair sent to the login endpoint
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the payload sent to the register endpoint
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates against the API and stores the returned token and
// identity in the session store on success
func (client *Client) Login(ctx context.Context, username, password string) (*session.User, error) {
	var response AuthResponse
	err := client.call(ctx, gateway.Descriptor{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   Credentials{Username: username, Password: password},
	}, &response)
	if err != nil {
		return nil, err
	}

	user := &session.User{Username: response.Username, Role: response.Role}
	if err := client.store.SetIdentity(response.Token, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a new account and returns the server's confirmation message
func (client *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	var response struct {
		Message string `json:"message"`
	}
	err := client.call(ctx, gateway.Descriptor{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   Registration{Username: username, Email: email, Password: password},
	}, &response)
	return response.Message, err
}

// Validate asks the API whether the stored token is still accepted.
// Any failure of the call counts as an invalid token.
func (client *Client) Validate(ctx context.Context) bool {
	var response struct {
		Valid bool `json:"valid"`
	}
	err := client.call(ctx, gateway.Descriptor{
		Method: http.MethodGet,
		Path:   "/auth/validate",
	}, &response)
	return err == nil && response.Valid
}

// Logout clears the local session.
// No network call is involved and no forced-logout broadcast fires; this is
// the explicit user action.
func (client *Client) Logout() error {
	return client.store.Logout()
}
