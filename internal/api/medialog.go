package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// NewMediaLogItem is the payload for creating a media-log item.
type NewMediaLogItem struct {
	Category model.Category `json:"category"`
	Title    string         `json:"title"`
	Progress string         `json:"progress"`
	Status   model.Status   `json:"status"`
}

// MediaLogUpdate holds the fields to change on a media-log item.
// Nil fields are left as they are.
type MediaLogUpdate struct {
	Title    *string       `json:"title,omitempty"`
	Progress *string       `json:"progress,omitempty"`
	Status   *model.Status `json:"status,omitempty"`
}

// MediaLog lists the items of a category, or of every category when empty.
func (c *Client) MediaLog(ctx context.Context, category model.Category) ([]model.MediaLogItem, error) {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {string(category)}}
	}
	var items []model.MediaLogItem
	if err := c.do(ctx, http.MethodGet, "/api/media_log", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMediaLogItem adds a media-log item.
func (c *Client) CreateMediaLogItem(ctx context.Context, item NewMediaLogItem) error {
	return c.do(ctx, http.MethodPost, "/api/media_log", nil, item, nil)
}

// UpdateMediaLogItem changes the title, progress or status of an item.
func (c *Client) UpdateMediaLogItem(ctx context.Context, id model.ID, update MediaLogUpdate) error {
	return c.do(ctx, http.MethodPatch, idPath("/api/media_log/%s", id), nil, update, nil)
}

// DeleteMediaLogItem deletes a media-log item.
func (c *Client) DeleteMediaLogItem(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/media_log/%s", id), nil, nil, nil)
}
