package gm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// Monster represents a bestiary entry
type Monster struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Health      int    `json:"health"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	Boss        bool   `json:"boss"`
	Abilities   string `json:"abilities,omitempty"`
	Type        string `json:"type"`
	Loot        []Item `json:"loot,omitempty"`
}

// Monsters lists every bestiary entry
func (client *Client) Monsters(ctx context.Context) ([]Monster, error) {
	var monsters []Monster
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/monsters"}, &monsters)
	return monsters, err
}

// Monster retrieves a single bestiary entry by its ID
func (client *Client) Monster(ctx context.Context, id int) (*Monster, error) {
	monster := new(Monster)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/monsters/%d", id)}, monster)
	if err != nil {
		return nil, err
	}
	return monster, nil
}

// CreateMonster creates a new bestiary entry and returns the stored record
func (client *Client) CreateMonster(ctx context.Context, monster *Monster) (*Monster, error) {
	created := new(Monster)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/monsters", Body: monster}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateMonster replaces an existing bestiary entry and returns the stored record
func (client *Client) UpdateMonster(ctx context.Context, id int, monster *Monster) (*Monster, error) {
	updated := new(Monster)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/monsters/%d", id), Body: monster}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteMonster deletes a bestiary entry by its ID
func (client *Client) DeleteMonster(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/monsters/%d", id)}, nil)
}
