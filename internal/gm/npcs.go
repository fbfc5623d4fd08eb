package gm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// NPC represents a non-player character
type NPC struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
	Hostility   bool   `json:"hostility"`
}

// NPCs lists every non-player character
func (client *Client) NPCs(ctx context.Context) ([]NPC, error) {
	var npcs []NPC
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/npcs"}, &npcs)
	return npcs, err
}

// NPC retrieves a single non-player character by its ID
func (client *Client) NPC(ctx context.Context, id int) (*NPC, error) {
	npc := new(NPC)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/npcs/%d", id)}, npc)
	if err != nil {
		return nil, err
	}
	return npc, nil
}

// CreateNPC creates a new non-player character and returns the stored record
func (client *Client) CreateNPC(ctx context.Context, npc *NPC) (*NPC, error) {
	created := new(NPC)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/npcs", Body: npc}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateNPC replaces an existing non-player character and returns the stored record
func (client *Client) UpdateNPC(ctx context.Context, id int, npc *NPC) (*NPC, error) {
	updated := new(NPC)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/npcs/%d", id), Body: npc}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNPC deletes a non-player character by its ID
func (client *Client) DeleteNPC(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/npcs/%d", id)}, nil)
}
