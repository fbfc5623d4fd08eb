package gm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// Spell represents a castable spell of level 0 (cantrip) through 9
type Spell struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Level       int    `json:"level"`
}

// Spells lists every spell
func (client *Client) Spells(ctx context.Context) ([]Spell, error) {
	var spells []Spell
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/spells"}, &spells)
	return spells, err
}

// Spell retrieves a single spell by its ID
func (client *Client) Spell(ctx context.Context, id int) (*Spell, error) {
	spell := new(Spell)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/spells/%d", id)}, spell)
	if err != nil {
		return nil, err
	}
	return spell, nil
}

// CreateSpell creates a new spell and returns the stored record
func (client *Client) CreateSpell(ctx context.Context, spell *Spell) (*Spell, error) {
	created := new(Spell)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/spells", Body: spell}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateSpell replaces an existing spell and returns the stored record
func (client *Client) UpdateSpell(ctx context.Context, id int, spell *Spell) (*Spell, error) {
	updated := new(Spell)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/spells/%d", id), Body: spell}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSpell deletes a spell by its ID
func (client *Client) DeleteSpell(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/spells/%d", id)}, nil)
}
