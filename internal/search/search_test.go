package search

import (
	"testing"

	"github.com/nikbrunner/vodmarks/internal/model"
)

func vods() []model.Bookmark {
	return []model.Bookmark{
		{ID: "1", Title: "Elden Ring Boss Rush", URL: "https://youtu.be/a"},
		{ID: "2", Title: "Hollow Knight Pantheon", URL: "https://youtu.be/b"},
		{ID: "3", URL: "https://youtu.be/untitled"},
	}
}

func TestFuzzySearchBookmarks_EmptyQuery(t *testing.T) {
	results := FuzzySearchBookmarks(vods(), "")

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearchBookmarks_FuzzyMatch(t *testing.T) {
	// "eldring" should fuzzy match "Elden Ring Boss Rush"
	results := FuzzySearchBookmarks(vods(), "eldring")

	if len(results) != 1 {
		t.Fatalf("expected 1 result for 'eldring', got %d", len(results))
	}
	if results[0].Bookmark.ID != "1" {
		t.Errorf("expected Elden Ring, got %s", results[0].Bookmark.Title)
	}
}

func TestFuzzySearchBookmarks_CaseInsensitive(t *testing.T) {
	results := FuzzySearchBookmarks(vods(), "HOLLOW")

	if len(results) != 1 {
		t.Fatalf("expected 1 result for case-insensitive match, got %d", len(results))
	}
}

func TestFuzzySearchBookmarks_UntitledMatchesURL(t *testing.T) {
	results := FuzzySearchBookmarks(vods(), "untitled")

	if len(results) != 1 || results[0].Bookmark.ID != "3" {
		t.Fatalf("expected the untitled entry to match by URL, got %v", results)
	}
}

func TestFuzzySearchBookmarks_PointsIntoInput(t *testing.T) {
	list := vods()
	results := FuzzySearchBookmarks(list, "pantheon")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark != &list[1] {
		t.Error("expected result to point at the input slice element")
	}
}

func TestFuzzySearchBookmarks_NoMatch(t *testing.T) {
	results := FuzzySearchBookmarks(vods(), "xyz123")

	if len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz123', got %d", len(results))
	}
}

func TestFuzzySearchBookmarks_SortedByScore(t *testing.T) {
	list := []model.Bookmark{
		{ID: "1", Title: "Any% Speedrun World Record"},
		{ID: "2", Title: "Speedrun"},
	}

	results := FuzzySearchBookmarks(list, "speedrun")

	if len(results) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(results))
	}
	// "Speedrun" should rank higher (exact match) than the longer title
	if results[0].Bookmark.Title != "Speedrun" {
		t.Errorf("expected 'Speedrun' as first result (exact match), got %s", results[0].Bookmark.Title)
	}
}

func TestFuzzySearchFolders(t *testing.T) {
	refs := []model.FolderRef{
		{ID: "1", Name: "Root", Breadcrumb: "Root"},
		{ID: "2", Name: "Gaming", Breadcrumb: "Root > Gaming"},
		{ID: "4", Name: "Clips", Breadcrumb: "Root > Gaming > Clips"},
		{ID: "3", Name: "Music", Breadcrumb: "Root > Music"},
	}

	all := FuzzySearchFolders(refs, "")
	if len(all) != 4 || all[2].Folder.ID != "4" {
		t.Fatalf("expected all folders in order for empty query, got %v", all)
	}

	results := FuzzySearchFolders(refs, "clips")
	if len(results) != 1 {
		t.Fatalf("expected 1 result for 'clips', got %d", len(results))
	}
	if results[0].Folder.ID != "4" {
		t.Errorf("expected Clips, got %s", results[0].Folder.Breadcrumb)
	}
	if len(results[0].MatchedIndexes) != len("clips") {
		t.Errorf("expected %d matched indexes, got %d", len("clips"), len(results[0].MatchedIndexes))
	}
}
