// Package state holds the client's navigation and selection state.
//
// A Store is owned by a single goroutine. It only changes through its
// mutators, and the collapsed folder set is written through to the
// preferences store on every toggle.
package state

import (
	"fmt"
	"slices"

	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/prefs"
	"github.com/nikbrunner/vodmarks/internal/project"
)

// Store is the tree, view and selection state of one session.
type Store struct {
	prefs prefs.Prefs

	tree   model.Tree
	merged []model.MergedGroup
	view   View

	collapsed map[model.ID]bool
	selected  map[model.ID]bool

	entries []model.Bookmark
	query   string
	sortKey project.SortKey

	tab       Tab
	category  model.Category
	mediaLog  []model.MediaLogItem
	mlQuery   string
	mlSortKey project.SortKey

	theme    prefs.Theme
	viewMode prefs.ViewMode
}

// New creates a store and restores persisted preferences from p.
func New(p prefs.Prefs) *Store {
	if p == nil {
		p = prefs.NewMemory()
	}
	raw, _ := p.Get(prefs.KeyCollapsed)
	return &Store{
		prefs:     p,
		view:      NoView(),
		collapsed: DecodeCollapsed(raw),
		selected:  make(map[model.ID]bool),
		category:  model.CategoryAnime,
		theme:     prefs.LoadTheme(p),
		viewMode:  prefs.LoadViewMode(p),
	}
}

// Tree returns the current folder tree.
func (s *Store) Tree() *model.Tree {
	return &s.tree
}

// SetTree replaces the folder tree.
func (s *Store) SetTree(tree model.Tree) {
	s.tree = tree
}

// MergedGroups returns the merged groups in backend order.
func (s *Store) MergedGroups() []model.MergedGroup {
	return s.merged
}

// SetMergedGroups replaces the merged groups.
func (s *Store) SetMergedGroups(groups []model.MergedGroup) {
	s.merged = groups
}

// MergedGroup returns the group with the given key.
func (s *Store) MergedGroup(key string) (model.MergedGroup, bool) {
	for _, g := range s.merged {
		if g.Key == key {
			return g, true
		}
	}
	return model.MergedGroup{}, false
}

// View returns the active view.
func (s *Store) View() View {
	return s.view
}

// SetCurrentView replaces the active view and clears the entry selection.
func (s *Store) SetCurrentView(v View) {
	s.view = v
	s.ClearSelection()
}

// CanAddEntries reports whether new entries can be created in the active view.
// Only a folder view is a valid target.
func (s *Store) CanAddEntries() bool {
	return s.view.Kind == ViewFolder
}

// ViewTitle returns the heading for the active view.
func (s *Store) ViewTitle() string {
	switch s.view.Kind {
	case ViewFolder:
		if node := s.tree.Find(s.view.FolderID); node != nil {
			return node.Name
		}
		return "Folder"
	case ViewMerged:
		if g, ok := s.MergedGroup(s.view.MergedKey); ok {
			return fmt.Sprintf("Merged: %s", g.Name)
		}
		return "Merged"
	default:
		return "Select a folder"
	}
}

// ForgetFolder drops references to a deleted folder.
// If the active view is that folder or one of its descendants, the view
// resets to none and the entry list is emptied.
func (s *Store) ForgetFolder(id model.ID) {
	if s.view.Kind == ViewFolder {
		if s.view.FolderID == id || slices.Contains(s.tree.Subtree(id), s.view.FolderID) {
			s.SetCurrentView(NoView())
			s.entries = nil
		}
	}
}

// IsCollapsed reports whether a folder is collapsed. Absent means expanded.
func (s *Store) IsCollapsed(id model.ID) bool {
	return s.collapsed[id]
}

// ToggleCollapsed flips a folder's collapsed state and persists the full set.
// The in-memory state changes even if persisting fails.
func (s *Store) ToggleCollapsed(id model.ID) error {
	if s.collapsed[id] {
		delete(s.collapsed, id)
	} else {
		s.collapsed[id] = true
	}
	if err := s.prefs.Set(prefs.KeyCollapsed, EncodeCollapsed(s.collapsed)); err != nil {
		return fmt.Errorf("persist collapsed folders: %w", err)
	}
	return nil
}

// CollapsedIDs returns the collapsed folder ids, sorted.
func (s *Store) CollapsedIDs() []model.ID {
	ids := make([]model.ID, 0, len(s.collapsed))
	for id := range s.collapsed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ToggleEntrySelected adds or removes an entry from the selection.
func (s *Store) ToggleEntrySelected(id model.ID) {
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
}

// IsSelected reports whether an entry is selected.
func (s *Store) IsSelected(id model.ID) bool {
	return s.selected[id]
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.selected = make(map[model.ID]bool)
}

// SelectionCount returns the number of selected entries.
func (s *Store) SelectionCount() int {
	return len(s.selected)
}

// SelectedIDs returns the selected entry ids, sorted.
func (s *Store) SelectedIDs() []model.ID {
	ids := make([]model.ID, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entries returns the raw entry list of the active view.
func (s *Store) Entries() []model.Bookmark {
	return s.entries
}

// SetEntries replaces the raw entry list.
func (s *Store) SetEntries(list []model.Bookmark) {
	s.entries = list
}

// Entry returns the entry with the given id from the raw list.
func (s *Store) Entry(id model.ID) (model.Bookmark, bool) {
	for _, b := range s.entries {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bookmark{}, false
}

// Query returns the bookmark search query.
func (s *Store) Query() string { return s.query }

// SetQuery sets the bookmark search query.
func (s *Store) SetQuery(q string) { s.query = q }

// SortKey returns the bookmark sort key.
func (s *Store) SortKey() project.SortKey { return s.sortKey }

// SetSortKey sets the bookmark sort key.
func (s *Store) SetSortKey(k project.SortKey) { s.sortKey = k }

// ProjectedEntries returns the entry list as it should be displayed.
func (s *Store) ProjectedEntries() []model.Bookmark {
	return project.Bookmarks(s.entries, s.query, s.sortKey)
}

// Tab returns the active top-level tab.
func (s *Store) Tab() Tab { return s.tab }

// SetTab switches tabs and clears the selection.
func (s *Store) SetTab(t Tab) {
	s.tab = t
	s.ClearSelection()
}

// Category returns the active media-log category.
func (s *Store) Category() model.Category { return s.category }

// SelectCategory switches the media-log category, drops the items of the
// previous one and clears the selection.
func (s *Store) SelectCategory(c model.Category) {
	if c != s.category {
		s.mediaLog = nil
	}
	s.category = c
	s.ClearSelection()
}

// MediaLog returns the raw media-log items of the active category.
func (s *Store) MediaLog() []model.MediaLogItem {
	return s.mediaLog
}

// SetMediaLog replaces the media-log items if they belong to the active category.
// Results for another category are discarded.
func (s *Store) SetMediaLog(c model.Category, items []model.MediaLogItem) {
	if c != s.category {
		return
	}
	s.mediaLog = items
}

// MediaLogItem returns the item with the given id.
func (s *Store) MediaLogItem(id model.ID) (model.MediaLogItem, bool) {
	for _, item := range s.mediaLog {
		if item.ID == id {
			return item, true
		}
	}
	return model.MediaLogItem{}, false
}

// MediaLogQuery returns the media-log search query.
func (s *Store) MediaLogQuery() string { return s.mlQuery }

// SetMediaLogQuery sets the media-log search query.
func (s *Store) SetMediaLogQuery(q string) { s.mlQuery = q }

// MediaLogSortKey returns the media-log sort key.
func (s *Store) MediaLogSortKey() project.SortKey { return s.mlSortKey }

// SetMediaLogSortKey sets the media-log sort key.
func (s *Store) SetMediaLogSortKey(k project.SortKey) { s.mlSortKey = k }

// ProjectedMediaLog returns the media log grouped by status for display.
func (s *Store) ProjectedMediaLog() []project.StatusGroup {
	return project.MediaLog(s.mediaLog, s.mlQuery, s.mlSortKey)
}

// Theme returns the color theme.
func (s *Store) Theme() prefs.Theme { return s.theme }

// ToggleTheme switches between dark and light and persists the choice.
func (s *Store) ToggleTheme() error {
	if s.theme == prefs.ThemeLight {
		s.theme = prefs.ThemeDark
	} else {
		s.theme = prefs.ThemeLight
	}
	return prefs.SaveTheme(s.prefs, s.theme)
}

// ViewMode returns the entry display mode.
func (s *Store) ViewMode() prefs.ViewMode { return s.viewMode }

// SetViewMode sets and persists the entry display mode.
func (s *Store) SetViewMode(mode prefs.ViewMode) error {
	if mode != prefs.ViewList {
		mode = prefs.ViewCard
	}
	s.viewMode = mode
	return prefs.SaveViewMode(s.prefs, mode)
}
