package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/state"
)

// CreateFolder creates a folder inside the active folder, or at the root
// when no folder is active.
func (c *Controller) CreateFolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.invalid("Folder name is required.")
	}

	c.mu.Lock()
	parent := c.store.Tree().Root
	if view := c.store.View(); view.Kind == state.ViewFolder {
		parent = view.FolderID
	}
	c.mu.Unlock()

	c.info("Creating folder...")
	if err := c.backend.CreateFolder(ctx, name, parent); err != nil {
		return c.fail(err, "Failed to create folder.")
	}
	c.success(fmt.Sprintf("Folder %q created", name))
	return c.LoadAll(ctx)
}

// RenameFolder renames a folder. The root cannot be renamed.
func (c *Controller) RenameFolder(ctx context.Context, id model.ID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.invalid("Name is required.")
	}
	c.mu.Lock()
	isRoot := c.store.Tree().IsRoot(id)
	c.mu.Unlock()
	if isRoot {
		return c.invalid("Can't rename Root.")
	}

	if err := c.backend.RenameFolder(ctx, id, name); err != nil {
		return c.fail(err, "Rename failed")
	}
	c.success(fmt.Sprintf("Renamed to %q", name))
	return c.LoadAll(ctx)
}

// DeleteFolder deletes a folder and everything inside it after confirmation.
// If the active view is inside the deleted subtree it resets to none.
func (c *Controller) DeleteFolder(ctx context.Context, id model.ID) error {
	c.mu.Lock()
	tree := c.store.Tree()
	isRoot := tree.IsRoot(id)
	name := id.String()
	if node := tree.Find(id); node != nil {
		name = node.Name
	}
	c.mu.Unlock()
	if isRoot {
		return c.invalid("Can't delete Root.")
	}

	msg := fmt.Sprintf("Are you sure you want to delete %q and everything inside it? This cannot be undone.", name)
	if !c.confirmed(ctx, "Delete Folder", msg) {
		return nil
	}

	c.info("Deleting folder...")
	if _, err := c.backend.DeleteFolder(ctx, id); err != nil {
		return c.fail(err, "Delete failed")
	}

	c.mu.Lock()
	c.store.ForgetFolder(id)
	c.mu.Unlock()

	c.success(fmt.Sprintf("Deleted %q", name))
	return c.LoadAll(ctx)
}
