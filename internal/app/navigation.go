package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/state"
)

// LoadAll reloads the folder tree and the merged groups.
// A merged-group failure only logs and leaves an empty list.
func (c *Controller) LoadAll(ctx context.Context) error {
	tree, err := c.backend.Tree(ctx)
	if err != nil {
		return c.fail(err, "Failed to load folders.")
	}

	groups, err := c.backend.MergedGroups(ctx)
	if err != nil {
		c.logger.Warn("merged groups unavailable", zap.Error(err))
		groups = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetTree(tree)
	c.store.SetMergedGroups(groups)
	return nil
}

// SelectFolder shows the entries of a folder and its descendants.
func (c *Controller) SelectFolder(ctx context.Context, id model.ID) error {
	c.mu.Lock()
	c.store.SetCurrentView(state.FolderView(id))
	c.store.SetEntries(nil)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SelectMerged shows the entries of every folder in a merged group.
func (c *Controller) SelectMerged(ctx context.Context, key string) error {
	c.mu.Lock()
	c.store.SetCurrentView(state.MergedView(key))
	c.store.SetEntries(nil)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// ClearView returns to the "select a folder" state.
func (c *Controller) ClearView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetCurrentView(state.NoView())
	c.store.SetEntries(nil)
}

// Refresh re-fetches the entries of the active view.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	view := c.store.View()
	c.mu.Unlock()

	var (
		list []model.Bookmark
		err  error
	)
	switch view.Kind {
	case state.ViewFolder:
		list, err = c.backend.FolderBookmarks(ctx, view.FolderID)
	case state.ViewMerged:
		list, err = c.backend.MergedBookmarks(ctx, view.MergedKey)
	}
	if err != nil {
		return c.fail(err, "Failed to load entries.")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.SetEntries(list)
	return nil
}

// reload refreshes the list and then the tree, as after any entry change.
// Both run even if the first fails.
func (c *Controller) reload(ctx context.Context) {
	_ = c.Refresh(ctx)
	_ = c.LoadAll(ctx)
}

// ToggleCollapsed flips a folder in the sidebar. A persistence failure is
// logged and the in-memory state still changes.
func (c *Controller) ToggleCollapsed(id model.ID) {
	c.mu.Lock()
	err := c.store.ToggleCollapsed(id)
	c.mu.Unlock()
	if err != nil {
		c.logger.Warn("collapse state not saved", zap.String("folder", id.String()), zap.Error(err))
	}
}

// ClearSelection empties the entry selection.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.ClearSelection()
}

// MoveTargets lists every folder with its breadcrumb for a move picker.
// Falls back to the local tree if the backend listing fails.
func (c *Controller) MoveTargets(ctx context.Context) []model.FolderRef {
	refs, err := c.backend.FoldersFlat(ctx)
	if err == nil {
		return refs
	}
	c.logger.Warn("flat folder list unavailable", zap.Error(err))

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Tree().Flatten()
}

// AllBookmarks lists every entry under the root with its folder breadcrumb.
func (c *Controller) AllBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	tree, err := c.backend.Tree(ctx)
	if err != nil {
		return nil, err
	}
	list, err := c.backend.FolderBookmarks(ctx, tree.Root)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if node := tree.Find(list[i].FolderID); node != nil {
			list[i].FolderName = node.Name
			list[i].FolderBreadcrumb = tree.Breadcrumb(node.ID)
		}
	}

	c.mu.Lock()
	c.store.SetTree(tree)
	c.mu.Unlock()
	return list, nil
}
