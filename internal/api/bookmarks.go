package api

import (
	"context"
	"net/http"

	"github.com/nikbrunner/vodmarks/internal/model"
)

type createBookmark struct {
	FolderID  model.ID        `json:"folder_id"`
	EntryType model.EntryType `json:"entry_type"`
	URL       string          `json:"url,omitempty"`
	Title     string          `json:"title,omitempty"`
	Date      string          `json:"date,omitempty"`
}

// CreateVideo adds a video link. The backend scrapes its metadata, which
// can take a while.
func (c *Client) CreateVideo(ctx context.Context, folderID model.ID, videoURL string) error {
	body := createBookmark{FolderID: folderID, EntryType: model.EntryYouTube, URL: videoURL}
	return c.do(ctx, http.MethodPost, "/api/bookmark", nil, body, nil)
}

// CreateMedia adds a manually logged entry with a title and date.
func (c *Client) CreateMedia(ctx context.Context, folderID model.ID, title, date string) error {
	body := createBookmark{FolderID: folderID, EntryType: model.EntryMedia, Title: title, Date: date}
	return c.do(ctx, http.MethodPost, "/api/bookmark", nil, body, nil)
}

// MoveBookmark moves an entry into another folder.
func (c *Client) MoveBookmark(ctx context.Context, id, folderID model.ID) error {
	body := struct {
		FolderID model.ID `json:"folder_id"`
	}{folderID}
	return c.do(ctx, http.MethodPatch, idPath("/api/bookmark/%s", id), nil, body, nil)
}

// DeleteBookmark deletes an entry.
func (c *Client) DeleteBookmark(ctx context.Context, id model.ID) error {
	return c.do(ctx, http.MethodDelete, idPath("/api/bookmark/%s", id), nil, nil, nil)
}

// BulkDelete deletes several entries in one request and returns the number removed.
func (c *Client) BulkDelete(ctx context.Context, ids []model.ID) (int, error) {
	body := struct {
		IDs []model.ID `json:"ids"`
	}{ids}
	var resp struct {
		status
		Deleted int `json:"deleted"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/bookmarks/bulk_delete", nil, body, &resp); err != nil {
		return 0, err
	}
	return resp.Deleted, nil
}

// BulkMove moves several entries into one folder in one request.
func (c *Client) BulkMove(ctx context.Context, ids []model.ID, folderID model.ID) error {
	body := struct {
		IDs      []model.ID `json:"ids"`
		FolderID model.ID   `json:"folder_id"`
	}{ids, folderID}
	return c.do(ctx, http.MethodPost, "/api/bookmarks/bulk_move", nil, body, nil)
}
