package state

import "github.com/nikbrunner/vodmarks/internal/model"

// Row is one visible line of the folder sidebar.
type Row struct {
	ID          model.ID
	Name        string
	Count       int
	Depth       int
	HasChildren bool
	Collapsed   bool
	Active      bool // the row is the active folder view
	Root        bool
}

// VisibleRows returns the sidebar rows in render order.
// A folder's children are included only if it has children and is not collapsed.
func (s *Store) VisibleRows() []Row {
	var rows []Row
	s.tree.Walk(func(node *model.FolderNode, depth int, _ []string) bool {
		collapsed := s.IsCollapsed(node.ID)
		rows = append(rows, Row{
			ID:          node.ID,
			Name:        node.Name,
			Count:       node.Count,
			Depth:       depth,
			HasChildren: node.HasChildren(),
			Collapsed:   collapsed,
			Active:      s.view.IsFolder(node.ID),
			Root:        s.tree.IsRoot(node.ID),
		})
		return node.HasChildren() && !collapsed
	})
	return rows
}
