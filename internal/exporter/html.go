package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/vodmarks-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("vodmarks-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// createdLayouts are the timestamp formats the backend is known to emit.
var createdLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ExportHTML exports the folder tree and its entries to Netscape bookmark
// HTML. Entries without a URL (manual media entries) are skipped.
func ExportHTML(tree *model.Tree, entries []model.Bookmark) string {
	byFolder := make(map[model.ID][]model.Bookmark)
	for _, e := range entries {
		if e.URL == "" {
			continue
		}
		byFolder[e.FolderID] = append(byFolder[e.FolderID], e)
	}

	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	if tree != nil {
		writeFolders(&b, tree.Nodes, byFolder, 1)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}

// writeFolders recursively writes folders, then the entries they hold.
func writeFolders(b *strings.Builder, nodes []model.FolderNode, byFolder map[model.ID][]model.Bookmark, indent int) {
	prefix := strings.Repeat("    ", indent)

	for _, node := range nodes {
		fmt.Fprintf(b, "%s<DT><H3>%s</H3>\n", prefix, html.EscapeString(node.Name))
		fmt.Fprintf(b, "%s<DL><p>\n", prefix)

		writeFolders(b, node.Children, byFolder, indent+1)

		inner := strings.Repeat("    ", indent+1)
		for _, entry := range byFolder[node.ID] {
			writeEntry(b, inner, entry)
		}

		fmt.Fprintf(b, "%s</DL><p>\n", prefix)
	}
}

func writeEntry(b *strings.Builder, prefix string, entry model.Bookmark) {
	if ts, ok := parseCreated(entry.CreatedAt); ok {
		fmt.Fprintf(b,
			"%s<DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
			prefix,
			html.EscapeString(entry.URL),
			ts.Unix(),
			html.EscapeString(entry.DisplayTitle()),
		)
		return
	}
	fmt.Fprintf(b,
		"%s<DT><A HREF=\"%s\">%s</A>\n",
		prefix,
		html.EscapeString(entry.URL),
		html.EscapeString(entry.DisplayTitle()),
	)
}

func parseCreated(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
