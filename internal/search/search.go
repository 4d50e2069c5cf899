package search

import (
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match over bookmarks.
type SearchResult struct {
	Bookmark       *model.Bookmark
	MatchedIndexes []int
	Score          int
}

// FolderResult represents a fuzzy search match over folders.
type FolderResult struct {
	Folder         model.FolderRef
	MatchedIndexes []int // indexes into Folder.Breadcrumb
	Score          int
}

// bookmarkTitles implements fuzzy.Source for bookmark slice.
type bookmarkTitles []*model.Bookmark

func (bt bookmarkTitles) String(i int) string {
	return bt[i].DisplayTitle()
}

func (bt bookmarkTitles) Len() int {
	return len(bt)
}

// folderPaths implements fuzzy.Source over folder breadcrumbs.
type folderPaths []model.FolderRef

func (fp folderPaths) String(i int) string {
	return fp[i].Breadcrumb
}

func (fp folderPaths) Len() int {
	return len(fp)
}

// FuzzySearchBookmarks searches bookmarks by title (or URL when untitled)
// using fuzzy matching. Returns results sorted by match score (best first).
func FuzzySearchBookmarks(list []model.Bookmark, query string) []SearchResult {
	if query == "" {
		return nil
	}

	// Build slice of bookmark pointers
	bookmarks := make(bookmarkTitles, len(list))
	for i := range list {
		bookmarks[i] = &list[i]
	}

	// Run fuzzy matching
	matches := fuzzy.FindFrom(query, bookmarks)

	// Convert to SearchResult
	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Bookmark:       bookmarks[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// FuzzySearchFolders filters folders by breadcrumb.
// An empty query returns every folder in its original order.
func FuzzySearchFolders(refs []model.FolderRef, query string) []FolderResult {
	if query == "" {
		results := make([]FolderResult, len(refs))
		for i, ref := range refs {
			results[i] = FolderResult{Folder: ref}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, folderPaths(refs))
	results := make([]FolderResult, len(matches))
	for i, m := range matches {
		results[i] = FolderResult{
			Folder:         refs[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
