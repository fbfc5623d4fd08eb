package gm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// Quest represents a quest-log entry
type Quest struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Completion  bool   `json:"completion"`
}

// Quests lists every quest
func (client *Client) Quests(ctx context.Context) ([]Quest, error) {
	var quests []Quest
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/quests"}, &quests)
	return quests, err
}

// Quest retrieves a single quest by its ID
func (client *Client) Quest(ctx context.Context, id int) (*Quest, error) {
	quest := new(Quest)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: fmt.Sprintf("/quests/%d", id)}, quest)
	if err != nil {
		return nil, err
	}
	return quest, nil
}

// CreateQuest creates a new quest and returns the stored record
func (client *Client) CreateQuest(ctx context.Context, quest *Quest) (*Quest, error) {
	created := new(Quest)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPost, Path: "/quests", Body: quest}, created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateQuest replaces an existing quest and returns the stored record
func (client *Client) UpdateQuest(ctx context.Context, id int, quest *Quest) (*Quest, error) {
	updated := new(Quest)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: fmt.Sprintf("/quests/%d", id), Body: quest}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteQuest deletes a quest by its ID
func (client *Client) DeleteQuest(ctx context.Context, id int) error {
	return client.call(ctx, gateway.Descriptor{Method: http.MethodDelete, Path: fmt.Sprintf("/quests/%d", id)}, nil)
}
