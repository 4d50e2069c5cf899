package app

import (
	"context"
	"strings"

	"github.com/nikbrunner/vodmarks/internal/api"
	"github.com/nikbrunner/vodmarks/internal/model"
)

// SelectCategory switches the media log to another category and loads it.
func (c *Controller) SelectCategory(ctx context.Context, category model.Category) error {
	c.mu.Lock()
	c.store.SelectCategory(category)
	c.mu.Unlock()
	return c.RefreshMediaLog(ctx)
}

// RefreshMediaLog re-fetches the active category.
func (c *Controller) RefreshMediaLog(ctx context.Context) error {
	c.mu.Lock()
	category := c.store.Category()
	c.mu.Unlock()

	items, err := c.backend.MediaLog(ctx, category)
	if err != nil {
		return c.fail(err, "Failed to load media log.")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetMediaLog(category, items)
	return nil
}

// AddMediaLogItem adds an item to the active category.
func (c *Controller) AddMediaLogItem(ctx context.Context, title, progress string, status model.Status) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return c.invalid("Title is required.")
	}

	c.mu.Lock()
	category := c.store.Category()
	c.mu.Unlock()

	c.info("Adding entry...")
	err := c.backend.CreateMediaLogItem(ctx, api.NewMediaLogItem{
		Category: category,
		Title:    title,
		Progress: strings.TrimSpace(progress),
		Status:   model.ParseStatus(string(status)),
	})
	if err != nil {
		return c.fail(err, "Failed to add entry.")
	}
	c.success("Entry added!")
	return c.RefreshMediaLog(ctx)
}

// UpdateMediaLogStatus changes the status of an item.
func (c *Controller) UpdateMediaLogStatus(ctx context.Context, id model.ID, status model.Status) error {
	status = model.ParseStatus(string(status))
	if err := c.backend.UpdateMediaLogItem(ctx, id, api.MediaLogUpdate{Status: &status}); err != nil {
		return c.fail(err, "Failed to update status.")
	}
	c.success("Status updated")
	return c.RefreshMediaLog(ctx)
}

// CycleMediaLogStatus advances an item to its next status.
func (c *Controller) CycleMediaLogStatus(ctx context.Context, id model.ID) error {
	c.mu.Lock()
	item, ok := c.store.MediaLogItem(id)
	c.mu.Unlock()
	if !ok {
		return c.invalid("Entry not found.")
	}
	return c.UpdateMediaLogStatus(ctx, id, item.Status.Next())
}

// EditMediaLogItem changes the title and progress of an item.
func (c *Controller) EditMediaLogItem(ctx context.Context, id model.ID, title, progress string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return c.invalid("Title is required.")
	}
	progress = strings.TrimSpace(progress)

	if err := c.backend.UpdateMediaLogItem(ctx, id, api.MediaLogUpdate{Title: &title, Progress: &progress}); err != nil {
		return c.fail(err, "Failed to update entry.")
	}
	c.success("Entry updated")
	return c.RefreshMediaLog(ctx)
}

// DeleteMediaLogItem deletes an item after confirmation.
func (c *Controller) DeleteMediaLogItem(ctx context.Context, id model.ID) error {
	if !c.confirmed(ctx, "Delete Entry", "Are you sure you want to delete this entry?") {
		return nil
	}
	if err := c.backend.DeleteMediaLogItem(ctx, id); err != nil {
		return c.fail(err, "Delete failed.")
	}
	c.success("Entry deleted")
	return c.RefreshMediaLog(ctx)
}
