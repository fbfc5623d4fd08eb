package gm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gmdesk/console/internal/gateway"
)

// Item represents a piece of equipment or loot
type Item struct {
	ID                int    `json:"id,omitempty"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Description       string `json:"description,omitempty"`
	Weight            int    `json:"weight"`
	GoldValue         int    `json:"goldValue"`
	Magic             bool   `json:"magic"`
	MagicalProperties string `json:"magicalProperties,omitempty"`
	EquipState        bool   `json:"equipState"`
	DamageType        string `json:"damageType,omitempty"`
	DamageRoll        string `json:"damageRoll,omitempty"`
	ArmorClass        int    `json:"armorClass"`
}

// Weapon reports whether the item counts against the weapon carry limit
func (item *Item) Weapon() bool {
	return strings.EqualFold(item.Type, "WEAPON")
}

// Armor reports whether the item is worn as armor
func (item *Item) Armor() bool {
	return strings.EqualFold(item.Type, "ARMOR") || strings.EqualFold(item.Type, "SHIELD")
}

// Equippable reports whether the item can be equipped at all
func (item *Item) Equippable() bool {
	if item.Weapon() || item.Armor() {
		return true
	}
	switch strings.ToUpper(item.Type) {
	case "RING", "AMULET", "CLOTHING":
		return true
	}
	return false
}

// Items lists every item
func (client *Client) Items(ctx context.Context) ([]Item, error) {
	var items []Item
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/items"}, &items)
	return items, err
}

// Item retrieves a single item by its ID
func (client *Client) Item(ctx context.Context, id int) (*Item, error) {
	item := new(Item)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/items/%d", id)}, item)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem creates a new item and returns the stored record
func (client *Client) CreateItem(ctx context.Context, item *Item) (*Item, error) {
	created := new(Item)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/items", Body: item}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateItem replaces an existing item and returns the stored record
func (client *Client) UpdateItem(ctx context.Context, id int, item *Item) (*Item, error) {
	updated := new(Item)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/items/%d", id), Body: item}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteItem deletes an item by its ID
func (client *Client) DeleteItem(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/items/%d", id)}, nil)
}
