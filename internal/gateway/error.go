package gateway

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON marks a 2xx response whose body claims to be JSON but does
// not parse. It signals a broken server contract rather than a user-facing
// condition and is therefore distinct from an HTTP-level failure.
var ErrInvalidJSON = errors.New("invalid JSON response")

// APIError represents a non-2xx response from the API.
// Payload carries the raw response body so callers can inspect whatever
// structure the server chose to send.
type APIError struct {
	Status  int
	Payload []byte
}

// Error derives the user-facing message: the payload's 'error' field when the
// server provides one, a generic status-coded message otherwise.
func (err *APIError) Error() string {
	if msg := gjson.GetBytes(err.Payload, "error"); msg.Type == gjson.String {
		return msg.String()
	}
	return fmt.Sprintf("API error: %d", err.Status)
}
