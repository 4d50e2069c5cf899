package project_test

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/project"
)

func ids[T any](list []T, id func(T) model.ID) []model.ID {
	out := make([]model.ID, len(list))
	for i, item := range list {
		out[i] = id(item)
	}
	return out
}

func bookmarkIDs(list []model.Bookmark) []model.ID {
	return ids(list, func(b model.Bookmark) model.ID { return b.ID })
}

func itemIDs(list []model.MediaLogItem) []model.ID {
	return ids(list, func(m model.MediaLogItem) model.ID { return m.ID })
}

func sampleBookmarks() []model.Bookmark {
	return []model.Bookmark{
		{ID: "1", Title: "Speedrun Any%", Uploader: "Summoning Salt", URL: "https://youtu.be/a", UploadDate: "2023-05-01", DurationSeconds: 3600},
		{ID: "2", Title: "Boss Rush", Uploader: "GameGrumps", URL: "https://youtu.be/b", UploadDate: "2021-11-20", DurationSeconds: 900},
		{ID: "3", Title: "", Uploader: "Unknown", URL: "https://youtu.be/c", UploadDate: "", DurationSeconds: 0},
		{ID: "4", Title: "boss fight compilation", Uploader: "Clips", URL: "https://youtu.be/speed", UploadDate: "2022-01-15", DurationSeconds: 900},
	}
}

func TestBookmarks_EmptyQueryIsIdentity(t *testing.T) {
	list := sampleBookmarks()

	for _, query := range []string{"", "   "} {
		got := project.Bookmarks(list, query, project.SortNone)
		assert.DeepEqual(t, got, list)
	}
}

func TestBookmarks_DoesNotMutateInput(t *testing.T) {
	list := sampleBookmarks()
	before := bookmarkIDs(list)

	project.Bookmarks(list, "", project.SortTitleAsc)

	assert.DeepEqual(t, bookmarkIDs(list), before)
}

func TestBookmarks_FilterFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []model.ID
	}{
		{"title case-insensitive", "BOSS", []model.ID{"2", "4"}},
		{"uploader", "summoning", []model.ID{"1"}},
		{"url", "youtu.be/c", []model.ID{"3"}},
		{"any of title or url", "speed", []model.ID{"1", "4"}},
		{"no match", "zelda", []model.ID{}},
		{"trimmed", "  grumps ", []model.ID{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := project.Bookmarks(sampleBookmarks(), tt.query, project.SortNone)
			assert.DeepEqual(t, bookmarkIDs(got), tt.want)
		})
	}
}

func TestBookmarks_Sort(t *testing.T) {
	tests := []struct {
		key  project.SortKey
		want []model.ID
	}{
		// missing title sorts as "", and case does not split "boss" from "Boss"
		{project.SortTitleAsc, []model.ID{"3", "4", "2", "1"}},
		{project.SortTitleDesc, []model.ID{"1", "2", "4", "3"}},
		{project.SortDateAsc, []model.ID{"3", "2", "4", "1"}},
		{project.SortDateDesc, []model.ID{"1", "4", "2", "3"}},
		// 2 and 4 tie at 900s and keep their input order
		{project.SortDurationAsc, []model.ID{"3", "2", "4", "1"}},
		{project.SortDurationDesc, []model.ID{"1", "2", "4", "3"}},
		{project.SortKey("views_desc"), []model.ID{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := project.Bookmarks(sampleBookmarks(), "", tt.key)
			assert.DeepEqual(t, bookmarkIDs(got), tt.want)
		})
	}
}

func TestBookmarks_SortIsIdempotent(t *testing.T) {
	for _, key := range project.BookmarkSortKeys {
		once := project.Bookmarks(sampleBookmarks(), "", key)
		twice := project.Bookmarks(once, "", key)
		assert.DeepEqual(t, bookmarkIDs(twice), bookmarkIDs(once))
	}
}

func TestBookmarks_TitleSortIsLocaleAware(t *testing.T) {
	list := []model.Bookmark{
		{ID: "f", Title: "Fred"},
		{ID: "e", Title: "Émile"},
		{ID: "d", Title: "Eddie"},
	}

	got := project.Bookmarks(list, "", project.SortTitleAsc)

	// A byte-wise sort would put "Émile" last.
	assert.DeepEqual(t, bookmarkIDs(got), []model.ID{"d", "e", "f"})
}

func TestBookmarks_FolderScenario(t *testing.T) {
	entries := []model.Bookmark{
		{ID: "10", Title: "B"},
		{ID: "11", Title: "A"},
	}

	got := project.Bookmarks(entries, "", project.SortTitleAsc)

	assert.DeepEqual(t, bookmarkIDs(got), []model.ID{"11", "10"})
}

func TestBookmarks_Deterministic(t *testing.T) {
	a := project.Bookmarks(sampleBookmarks(), "o", project.SortDurationDesc)
	b := project.Bookmarks(sampleBookmarks(), "o", project.SortDurationDesc)
	assert.DeepEqual(t, a, b)
}

func sampleMediaLog() []model.MediaLogItem {
	return []model.MediaLogItem{
		{ID: "1", Title: "Monster", Progress: "ep 40", Status: model.StatusPlanToStart},
		{ID: "2", Title: "Berserk", Progress: "vol 12", Status: model.StatusCompleted},
		{ID: "3", Title: "Frieren", Progress: "ep 12", Status: model.StatusCurrently},
		{ID: "4", Title: "Akira", Progress: "", Status: model.Status("dropped")},
		{ID: "5", Title: "Vinland Saga", Progress: "ep 3", Status: model.StatusCurrently},
	}
}

func TestMediaLog_GroupOrder(t *testing.T) {
	groups := project.MediaLog(sampleMediaLog(), "", project.SortNone)

	assert.Assert(t, is.Len(groups, 3))
	assert.Equal(t, groups[0].Status, model.StatusCurrently)
	assert.Equal(t, groups[1].Status, model.StatusCompleted)
	assert.Equal(t, groups[2].Status, model.StatusPlanToStart)

	assert.DeepEqual(t, itemIDs(groups[0].Items), []model.ID{"3", "5"})
	assert.DeepEqual(t, itemIDs(groups[1].Items), []model.ID{"2"})
	// unknown status falls into plan_to_start
	assert.DeepEqual(t, itemIDs(groups[2].Items), []model.ID{"1", "4"})
}

func TestMediaLog_OmitsEmptyGroups(t *testing.T) {
	groups := project.MediaLog(sampleMediaLog(), "ep 1", project.SortNone)

	assert.Assert(t, is.Len(groups, 1))
	assert.Equal(t, groups[0].Status, model.StatusCurrently)
	assert.DeepEqual(t, itemIDs(groups[0].Items), []model.ID{"3"})

	for _, g := range project.MediaLog(sampleMediaLog(), "", project.SortTitleAsc) {
		assert.Assert(t, len(g.Items) > 0, "group %s is empty", g.Status)
	}
}

func TestMediaLog_EmptyInput(t *testing.T) {
	assert.Assert(t, is.Len(project.MediaLog(nil, "", project.SortNone), 0))
}

func TestMediaLog_SortWithinGroups(t *testing.T) {
	groups := project.MediaLog(sampleMediaLog(), "", project.SortTitleDesc)

	assert.DeepEqual(t, itemIDs(groups[0].Items), []model.ID{"5", "3"})
	assert.DeepEqual(t, itemIDs(groups[2].Items), []model.ID{"1", "4"})
}

func TestMediaLog_FilterProgress(t *testing.T) {
	got := project.MediaLogItems(sampleMediaLog(), "VOL", project.SortNone)
	assert.DeepEqual(t, itemIDs(got), []model.ID{"2"})
}

func TestNextSortKey(t *testing.T) {
	keys := project.MediaLogSortKeys

	assert.Equal(t, project.NextSortKey(keys, project.SortNone), project.SortTitleAsc)
	assert.Equal(t, project.NextSortKey(keys, project.SortTitleDesc), project.SortNone)
	assert.Equal(t, project.NextSortKey(keys, project.SortDurationAsc), project.SortNone)
	assert.Equal(t, project.NextSortKey(nil, project.SortTitleAsc), project.SortNone)
}
