package gm

import (
	"context"
	"net/http"

	"github.com/gmdesk/console/internal/gateway"
)

// Story is the singleton running-story record of the campaign
type Story struct {
	ID   int    `json:"id,omitempty"`
	Text string `json:"text"`
}

// Story retrieves the running story
func (client *Client) Story(ctx context.Context) (*Story, error) {
	story := new(Story)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodGet, Path: "/story"}, story)
	if err != nil {
		return nil, err
	}
	return story, nil
}

// UpdateStory replaces the running story and returns the stored record
func (client *Client) UpdateStory(ctx context.Context, story *Story) (*Story, error) {
	updated := new(Story)
	err := client.call(ctx, gateway.Descriptor{Method: http.MethodPut, Path: "/story", Body: story}, updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
