package gm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// Character represents a player character sheet
type Character struct {
	ID             int     `json:"id,omitempty"`
	Name           string  `json:"name"`
	Level          int     `json:"level"`
	Race           string  `json:"race"`
	CharacterClass string  `json:"characterClass"`
	Status         string  `json:"status"`
	Background     string  `json:"background,omitempty"`
	Alignment      string  `json:"alignment,omitempty"`
	Specialization string  `json:"specialization,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	Strength       int     `json:"strength"`
	Dexterity      int     `json:"dexterity"`
	Constitution   int     `json:"constitution"`
	Intelligence   int     `json:"intelligence"`
	Wisdom         int     `json:"wisdom"`
	Charisma       int     `json:"charisma"`
	CurrentHP      int     `json:"currentHp"`
	MaxHP          int     `json:"maxHp"`
	Items          []Item  `json:"items,omitempty"`
	Spells         []Spell `json:"spells,omitempty"`
}

// equipRequest is the body of the equip/unequip action
type equipRequest struct {
	ItemID int  `json:"itemId"`
	Equip  bool `json:"equip"`
}

// Characters lists every character
func (client *Client) Characters(ctx context.Context) ([]Character, error) {
	var characters []Character
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/characters"}, &characters)
	return characters, err
}

// Character retrieves a single character by its ID
func (client *Client) Character(ctx context.Context, id int) (*Character, error) {
	character := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/characters/%d", id)}, character)
	if err != nil {
		return nil, err
	}
	return character, nil
}

// CreateCharacter creates a new character and returns the stored record
func (client *Client) CreateCharacter(ctx context.Context, character *Character) (*Character, error) {
	created := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/characters", Body: character}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCharacter replaces an existing character and returns the stored record
func (client *Client) UpdateCharacter(ctx context.Context, id int, character *Character) (*Character, error) {
	updated := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/characters/%d", id), Body: character}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCharacter deletes a character by its ID
func (client *Client) DeleteCharacter(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/characters/%d", id)}, nil)
}

// HealCharacter restores a single character to full hit points
func (client *Client) HealCharacter(ctx context.Context, id int) (*Character, error) {
	healed := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/characters/%d/heal", id)}, healed)
	if err != nil {
		return nil, err
	}
	return healed, nil
}

// HealParty restores a batch of characters to full hit points
func (client *Client) HealParty(ctx context.Context, characterIDs []int) ([]Character, error) {
	var healed []Character
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: "/characters/heal-batch", Body: characterIDs}, &healed)
	return healed, err
}

// AssignItem adds an item to a character's inventory
func (client *Client) AssignItem(ctx context.Context, characterID, itemID int) (*Character, error) {
	character := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: fmt.Sprintf("/characters/%d/items/%d", characterID, itemID)}, character)
	if err != nil {
		return nil, err
	}
	return character, nil
}

// RemoveItem removes an item from a character's inventory, unequipping it
func (client *Client) RemoveItem(ctx context.Context, characterID, itemID int) (*Character, error) {
	character := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/characters/%d/items/%d", characterID, itemID)}, character)
	if err != nil {
		return nil, err
	}
	return character, nil
}

// EquipItem equips or unequips an owned item on a character
func (client *Client) EquipItem(ctx context.Context, characterID, itemID int, equip bool) (*Character, error) {
	character := new(Character)
	err := client.call(ctx, gateway.Descriptor{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/characters/%d/equip", characterID),
		Body:   equipRequest{ItemID: itemID, Equip: equip},
	}, character)
	if err != nil {
		return nil, err
	}
	return character, nil
}

// AssignSpell teaches a spell to a character
func (client *Client) AssignSpell(ctx context.Context, characterID, spellID int) (*Character, error) {
	character := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: fmt.Sprintf("/characters/%d/spells/%d", characterID, spellID)}, character)
	if err != nil {
		return nil, err
	}
	return character, nil
}

// RemoveSpell removes a spell from a character
func (client *Client) RemoveSpell(ctx context.Context, characterID, spellID int) (*Character, error) {
	character := new(Character)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/characters/%d/spells/%d", characterID, spellID)}, character)
	if err != nil {
		return nil, err
	}
	return character, nil
}
