package gm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// Location represents a place on the campaign map together with its
// inhabitants
type Location struct {
	ID                 int                 `json:"id,omitempty"`
	Name               string              `json:"name"`
	Description        string              `json:"description,omitempty"`
	MonstersInLocation []MonsterInLocation `json:"monstersInLocation,omitempty"`
	NPCs               []NPC               `json:"npcs,omitempty"`
}

// MonsterInLocation links a bestiary entry to a location with a headcount
type MonsterInLocation struct {
	ID       int      `json:"id,omitempty"`
	Monster  *Monster `json:"monster"`
	Quantity int      `json:"quantity"`
}

// Locations lists every location
func (client *Client) Locations(ctx context.Context) ([]Location, error) {
	var locations []Location
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/locations"}, &locations)
	return locations, err
}

// Location retrieves a single location by its ID
func (client *Client) Location(ctx context.Context, id int) (*Location, error) {
	location := new(Location)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/locations/%d", id)}, location)
	if err != nil {
		return nil, err
	}
	return location, nil
}

// CreateLocation creates a new location and returns the stored record
func (client *Client) CreateLocation(ctx context.Context, location *Location) (*Location, error) {
	created := new(Location)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/locations", Body: location}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateLocation replaces an existing location and returns the stored record
func (client *Client) UpdateLocation(ctx context.Context, id int, location *Location) (*Location, error) {
	updated := new(Location)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/locations/%d", id), Body: location}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteLocation deletes a location by its ID
func (client *Client) DeleteLocation(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/locations/%d", id)}, nil)
}

// AddRandomMonster rolls a uniformly random bestiary entry into the location
// and returns the updated record
func (client *Client) AddRandomMonster(ctx context.Context, locationID int) (*Location, error) {
	location := new(Location)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: fmt.Sprintf("/locations/%d/add-random-monster", locationID)}, location)
	if err != nil {
		return nil, err
	}
	return location, nil
}
