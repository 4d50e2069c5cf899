package state

import "github.com/nikbrunner/vodmarks/internal/model"

// ViewKind identifies what the entry list is showing.
type ViewKind int

const (
	ViewNone ViewKind = iota
	ViewFolder
	ViewMerged
)

// View is the currently active view: a folder, a merged group or nothing.
type View struct {
	Kind      ViewKind
	FolderID  model.ID // set for ViewFolder
	MergedKey string   // set for ViewMerged
}

// NoView returns the empty view.
func NoView() View {
	return View{Kind: ViewNone}
}

// FolderView returns the view of a single folder.
func FolderView(id model.ID) View {
	return View{Kind: ViewFolder, FolderID: id}
}

// MergedView returns the view of a merged group.
func MergedView(key string) View {
	return View{Kind: ViewMerged, MergedKey: key}
}

// IsFolder reports whether the view shows the given folder.
func (v View) IsFolder(id model.ID) bool {
	return v.Kind == ViewFolder && v.FolderID == id
}

// IsMerged reports whether the view shows the given merged group.
func (v View) IsMerged(key string) bool {
	return v.Kind == ViewMerged && v.MergedKey == key
}

// Tab is the top-level section of the client.
type Tab int

const (
	TabBookmarks Tab = iota
	TabMediaLog
)
