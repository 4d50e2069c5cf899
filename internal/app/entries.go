package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nikbrunner/vodmarks/internal/model"
)

const readOnlyView = "Select a real folder first (merged views are read-only)."

// targetFolder returns the active folder for new entries.
func (c *Controller) targetFolder() (model.ID, error) {
	c.mu.Lock()
	ok := c.store.CanAddEntries()
	id := c.store.View().FolderID
	c.mu.Unlock()
	if !ok {
		return "", c.invalid(readOnlyView)
	}
	return id, nil
}

// CheckAddTarget reports whether the active view accepts new entries,
// notifying the user when it does not.
func (c *Controller) CheckAddTarget() error {
	_, err := c.targetFolder()
	return err
}

// AddVideo adds a video link to the active folder. The backend scrapes
// the metadata, so this can be slow.
func (c *Controller) AddVideo(ctx context.Context, videoURL string) error {
	folderID, err := c.targetFolder()
	if err != nil {
		return err
	}
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return c.invalid("Video URL is required.")
	}

	c.info("Fetching metadata...")
	if err := c.backend.CreateVideo(ctx, folderID, videoURL); err != nil {
		return c.fail(err, "Failed to add VOD.")
	}
	c.success("VOD added successfully!")
	c.reload(ctx)
	return nil
}

// AddMedia adds a manually logged entry to the active folder.
func (c *Controller) AddMedia(ctx context.Context, title, date string) error {
	folderID, err := c.targetFolder()
	if err != nil {
		return err
	}
	title, date = strings.TrimSpace(title), strings.TrimSpace(date)
	if title == "" || date == "" {
		return c.invalid("Please fill in both title and year.")
	}

	c.info("Adding media...")
	if err := c.backend.CreateMedia(ctx, folderID, title, date); err != nil {
		return c.fail(err, "Failed to add media.")
	}
	c.success("Media added!")
	c.reload(ctx)
	return nil
}

// MoveEntry moves one entry into another folder.
func (c *Controller) MoveEntry(ctx context.Context, entryID, folderID model.ID) error {
	if folderID.IsZero() {
		return c.invalid("Pick a target folder.")
	}
	c.mu.Lock()
	name := folderID.String()
	if node := c.store.Tree().Find(folderID); node != nil {
		name = node.Name
	}
	c.mu.Unlock()

	if err := c.backend.MoveBookmark(ctx, entryID, folderID); err != nil {
		return c.fail(err, "Move failed.")
	}
	c.success("Moved to " + name)
	c.reload(ctx)
	return nil
}

// DeleteEntry deletes one entry after confirmation.
func (c *Controller) DeleteEntry(ctx context.Context, id model.ID) error {
	if !c.confirmed(ctx, "Delete Entry", "Are you sure you want to delete this entry?") {
		return nil
	}
	if err := c.backend.DeleteBookmark(ctx, id); err != nil {
		return c.fail(err, "Delete failed.")
	}
	c.success("Entry deleted")
	c.reload(ctx)
	return nil
}

// BulkDelete deletes every selected entry in one request after confirmation.
// The selection is cleared whether or not the request succeeds.
func (c *Controller) BulkDelete(ctx context.Context) error {
	c.mu.Lock()
	ids := c.store.SelectedIDs()
	c.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}

	msg := fmt.Sprintf("Delete %d selected entries? This cannot be undone.", len(ids))
	if !c.confirmed(ctx, "Delete Selected", msg) {
		return nil
	}

	c.info("Deleting...")
	_, err := c.backend.BulkDelete(ctx, ids)
	c.ClearSelection()
	if err != nil {
		err = c.fail(err, "Bulk delete failed.")
	} else {
		c.success(fmt.Sprintf("Deleted %d entries", len(ids)))
	}
	c.reload(ctx)
	return err
}

// BulkMove moves every selected entry into folderID in one request.
// The selection is cleared whether or not the request succeeds.
func (c *Controller) BulkMove(ctx context.Context, folderID model.ID) error {
	c.mu.Lock()
	ids := c.store.SelectedIDs()
	c.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}
	if folderID.IsZero() {
		return c.invalid("Pick a target folder.")
	}

	c.info("Moving...")
	err := c.backend.BulkMove(ctx, ids, folderID)
	c.ClearSelection()
	if err != nil {
		err = c.fail(err, "Bulk move failed.")
	} else {
		c.success(fmt.Sprintf("Moved %d entries", len(ids)))
	}
	c.reload(ctx)
	return err
}

// ImportVideos adds each URL to folderID, one request per link.
// It keeps going past failures and returns how many were added along with
// the joined errors.
func (c *Controller) ImportVideos(ctx context.Context, folderID model.ID, urls []string) (int, error) {
	var (
		added int
		errs  []error
	)
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := c.backend.CreateVideo(ctx, folderID, u); err != nil {
			c.logger.Sugar().Warnf("failed to import %s: %s", u, err.Error())
			errs = append(errs, fmt.Errorf("%s: %w", u, err))
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}
