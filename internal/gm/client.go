// Package gm provides the domain operation set of the game-master console:
// one typed function per REST action, each a thin mapping from its arguments
// to a single gateway call.
package gm

import (
	"context"
	"encoding/json"

	"github.com/gmdesk/console/internal/gateway"
	"github.com/gmdesk/console/internal/session"
)

// Client bundles the domain operations of the console.
// Every method issues exactly one gateway call and propagates gateway errors
// unchanged; sequencing several operations is the caller's concern.
type Client struct {
	gateway *gateway.Client
	store   *session.Store
}

// NewClient creates a new domain client on top of the given gateway
func NewClient(gw *gateway.Client, store *session.Store) *Client {
	return &Client{
		gateway: gw,
		store:   store,
	}
}

// call issues a request and decodes the JSON result into out when both the
// target and the resolved body are non-nil
func (client *Client) call(ctx context.Context, descriptor gateway.Descriptor, out any) error {
	raw, err := client.gateway.Do(ctx, descriptor)
	if err != nil {
		return err
	}
	if out == nil || raw == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
