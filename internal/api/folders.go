package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// Tree fetches the folder hierarchy.
func (c *Client) Tree(ctx context.Context) (model.Tree, error) {
	var tree model.Tree
	if err := c.do(ctx, http.MethodGet, "/api/tree", nil, nil, &tree); err != nil {
		return model.Tree{}, err
	}
	return tree, nil
}

// MergedGroups fetches the groups of same-named folders.
func (c *Client) MergedGroups(ctx context.Context) ([]model.MergedGroup, error) {
	var resp struct {
		Groups []model.MergedGroup `json:"groups"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/merged", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

// FoldersFlat lists every folder with its breadcrumb.
func (c *Client) FoldersFlat(ctx context.Context) ([]model.FolderRef, error) {
	var refs []model.FolderRef
	if err := c.do(ctx, http.MethodGet, "/api/folders_flat", nil, nil, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// CreateFolder creates a folder under parentID.
func (c *Client) CreateFolder(ctx context.Context, name string, parentID model.ID) error {
	body := struct {
		Name     string   `json:"name"`
		ParentID model.ID `json:"parent_id"`
	}{name, parentID}
	return c.do(ctx, http.MethodPost, "/api/folder", nil, body, nil)
}

// RenameFolder renames a folder.
func (c *Client) RenameFolder(ctx context.Context, id model.ID, name string) error {
	body := struct {
		Name string `json:"name"`
	}{name}
	return c.do(ctx, http.MethodPatch, idPath("/api/folder/%s", id), nil, body, nil)
}

// DeleteFolder deletes a folder with its subfolders and entries.
// It returns the number of folders removed.
func (c *Client) DeleteFolder(ctx context.Context, id model.ID) (int, error) {
	var resp struct {
		status
		DeletedFolders int `json:"deleted_folders"`
	}
	if err := c.do(ctx, http.MethodDelete, idPath("/api/folder/%s", id), nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.DeletedFolders, nil
}

// FolderBookmarks lists the entries of a folder and all of its descendants.
func (c *Client) FolderBookmarks(ctx context.Context, folderID model.ID) ([]model.Bookmark, error) {
	var list []model.Bookmark
	query := url.Values{"folder_id": {folderID.String()}}
	if err := c.do(ctx, http.MethodGet, "/api/bookmarks", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// MergedBookmarks lists the entries of every folder in a merged group.
func (c *Client) MergedBookmarks(ctx context.Context, key string) ([]model.Bookmark, error) {
	var list []model.Bookmark
	query := url.Values{"key": {key}}
	if err := c.do(ctx, http.MethodGet, "/api/merged_bookmarks", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}
