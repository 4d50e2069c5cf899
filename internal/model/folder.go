package model

import "strings"

// BreadcrumbSeparator joins folder names in a breadcrumb path.
const BreadcrumbSeparator = " > "

// FolderNode is one folder in the tree returned by the backend.
type FolderNode struct {
	ID       ID           `json:"id"`
	Name     string       `json:"name"`
	ParentID *ID          `json:"parent_id,omitempty"` // nil = root
	Count    int          `json:"count"`               // direct + transitive entries
	Children []FolderNode `json:"children"`
}

// HasChildren returns true if the folder has subfolders.
func (n FolderNode) HasChildren() bool {
	return len(n.Children) > 0
}

// Tree is the full folder hierarchy with its designated root.
// It is replaced wholesale on every reload and never edited in place.
type Tree struct {
	Root  ID           `json:"root"`
	Nodes []FolderNode `json:"tree"`
}

// Walk visits every folder depth-first in backend order.
// path holds the names from the top level down to and including the node.
// Returning false from fn skips the node's subtree.
func (t *Tree) Walk(fn func(node *FolderNode, depth int, path []string) bool) {
	var walk func(nodes []FolderNode, depth int, path []string)
	walk = func(nodes []FolderNode, depth int, path []string) {
		for i := range nodes {
			node := &nodes[i]
			current := append(path[:len(path):len(path)], node.Name)
			if !fn(node, depth, current) {
				continue
			}
			walk(node.Children, depth+1, current)
		}
	}
	walk(t.Nodes, 0, nil)
}

// Find returns the folder with the given id, or nil.
func (t *Tree) Find(id ID) *FolderNode {
	var found *FolderNode
	t.Walk(func(node *FolderNode, _ int, _ []string) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Contains reports whether id is a folder in the tree.
func (t *Tree) Contains(id ID) bool {
	return t.Find(id) != nil
}

// IsRoot reports whether id is the designated root folder.
func (t *Tree) IsRoot(id ID) bool {
	return !t.Root.IsZero() && t.Root == id
}

// Subtree returns the ids of the folder and all of its descendants.
// Returns nil if the folder is not in the tree.
func (t *Tree) Subtree(id ID) []ID {
	node := t.Find(id)
	if node == nil {
		return nil
	}
	ids := []ID{node.ID}
	var collect func(nodes []FolderNode)
	collect = func(nodes []FolderNode) {
		for _, child := range nodes {
			ids = append(ids, child.ID)
			collect(child.Children)
		}
	}
	collect(node.Children)
	return ids
}

// Breadcrumb returns the path to a folder, e.g. "Root > Gaming > Clips".
// Returns "" if the folder is not in the tree.
func (t *Tree) Breadcrumb(id ID) string {
	var crumb string
	t.Walk(func(node *FolderNode, _ int, path []string) bool {
		if crumb != "" {
			return false
		}
		if node.ID == id {
			crumb = strings.Join(path, BreadcrumbSeparator)
			return false
		}
		return true
	})
	return crumb
}

// Flatten lists every folder with its breadcrumb, in tree order.
func (t *Tree) Flatten() []FolderRef {
	var refs []FolderRef
	t.Walk(func(node *FolderNode, _ int, path []string) bool {
		refs = append(refs, FolderRef{
			ID:         node.ID,
			Name:       node.Name,
			Breadcrumb: strings.Join(path, BreadcrumbSeparator),
		})
		return true
	})
	return refs
}

// FolderRef is a flat reference to a folder, used by move pickers.
type FolderRef struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Breadcrumb string `json:"breadcrumb"`
}

// MergedGroup aggregates all folders sharing the same name.
// Groups are read-only: they have no children and cannot receive new entries.
type MergedGroup struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	TotalBookmarks int    `json:"total_bookmarks"`
}
