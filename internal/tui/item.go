package tui

import (
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/state"
)

// ItemKind distinguishes folders from merged groups in the sidebar.
type ItemKind int

const (
	ItemFolder ItemKind = iota
	ItemMerged
)

// SidebarItem is one selectable sidebar line.
type SidebarItem struct {
	Kind   ItemKind
	Row    state.Row         // set for folders
	Group  model.MergedGroup // set for merged groups
	Active bool
}

// Title returns a display title for the item.
func (i SidebarItem) Title() string {
	if i.Kind == ItemFolder {
		return i.Row.Name
	}
	return i.Group.Name
}

// Count returns the number of entries below the item.
func (i SidebarItem) Count() int {
	if i.Kind == ItemFolder {
		return i.Row.Count
	}
	return i.Group.TotalBookmarks
}

// IsFolder returns true if this item is a real folder.
func (i SidebarItem) IsFolder() bool {
	return i.Kind == ItemFolder
}

// sidebarItems lists the visible folder rows followed by the merged groups.
func sidebarItems(s *state.Store) []SidebarItem {
	rows := s.VisibleRows()
	groups := s.MergedGroups()
	view := s.View()

	items := make([]SidebarItem, 0, len(rows)+len(groups))
	for _, row := range rows {
		items = append(items, SidebarItem{Kind: ItemFolder, Row: row, Active: row.Active})
	}
	for _, g := range groups {
		items = append(items, SidebarItem{Kind: ItemMerged, Group: g, Active: view.IsMerged(g.Key)})
	}
	return items
}
