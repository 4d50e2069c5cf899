package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/vodmarks/internal/api"
	"github.com/nikbrunner/vodmarks/internal/fakeapi"
	"github.com/nikbrunner/vodmarks/internal/model"
)

func newClient(t *testing.T) (*api.Client, *fakeapi.Server) {
	t.Helper()
	backend := fakeapi.New()
	srv := backend.Start()
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL)
	assert.NilError(t, err)
	return client, backend
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	_, err := api.NewClient("ftp://example.com")
	assert.ErrorContains(t, err, "scheme")
}

func TestTreeAndFolders(t *testing.T) {
	ctx := context.Background()
	client, backend := newClient(t)
	root := backend.RootID()

	assert.NilError(t, client.CreateFolder(ctx, "Gaming", root))
	tree, err := client.Tree(ctx)
	assert.NilError(t, err)
	assert.Equal(t, tree.Root, root)
	assert.Equal(t, len(tree.Nodes), 1)
	assert.Equal(t, tree.Nodes[0].Name, "Root")
	assert.Equal(t, tree.Nodes[0].Children[0].Name, "Gaming")

	gaming := tree.Nodes[0].Children[0].ID
	assert.NilError(t, client.CreateFolder(ctx, "Clips", gaming))
	clips := backend.AddFolder("Clips", root)
	backend.AddBookmark(model.Bookmark{FolderID: clips, Title: "x"})

	refs, err := client.FoldersFlat(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(refs), 4)
	assert.Equal(t, refs[2].Breadcrumb, "Root > Gaming > Clips")

	groups, err := client.MergedGroups(ctx)
	assert.NilError(t, err)
	assert.DeepEqual(t, groups, []model.MergedGroup{{Key: "clips", Name: "Clips", TotalBookmarks: 1}})

	assert.NilError(t, client.RenameFolder(ctx, gaming, "Games"))
	deleted, err := client.DeleteFolder(ctx, gaming)
	assert.NilError(t, err)
	assert.Equal(t, deleted, 2)
}

func TestApplicationErrors(t *testing.T) {
	ctx := context.Background()
	client, backend := newClient(t)

	err := client.RenameFolder(ctx, backend.RootID(), "Top")
	var apiErr *api.Error
	assert.Assert(t, errors.As(err, &apiErr))
	assert.Equal(t, apiErr.Status, http.StatusBadRequest)
	assert.Equal(t, apiErr.Message, "Can't rename Root.")
	assert.ErrorIs(t, err, api.ErrRequest)

	_, err = client.DeleteFolder(ctx, "999")
	assert.ErrorContains(t, err, "Folder not found.")

	backend.Fail(http.MethodGet, "/api/tree", http.StatusInternalServerError, "boom")
	_, err = client.Tree(ctx)
	assert.ErrorIs(t, err, api.ErrRequest)
	assert.ErrorContains(t, err, "boom (500)")
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client, err := api.NewClient(srv.URL)
	assert.NilError(t, err)

	_, err = client.Tree(context.Background())
	assert.ErrorIs(t, err, api.ErrTransport)
	assert.Assert(t, !errors.Is(err, api.ErrRequest))
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client, err := api.NewClient(srv.URL)
	assert.NilError(t, err)
	_, err = client.MergedGroups(context.Background())
	assert.ErrorIs(t, err, api.ErrDecode)
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client, err := api.NewClient(srv.URL, api.WithTimeout(50*time.Millisecond))
	assert.NilError(t, err)
	err = client.CreateVideo(context.Background(), "1", "https://youtu.be/x")
	assert.ErrorIs(t, err, api.ErrTransport)
}

func TestRequestIDHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"groups":[]}`))
	}))
	defer srv.Close()

	client, err := api.NewClient(srv.URL + "/")
	assert.NilError(t, err)
	_, err = client.MergedGroups(context.Background())
	assert.NilError(t, err)

	_, err = uuid.Parse(got)
	assert.NilError(t, err)
}

func TestBookmarks(t *testing.T) {
	ctx := context.Background()
	client, backend := newClient(t)
	root := backend.RootID()
	gaming := backend.AddFolder("Gaming", root)
	clips := backend.AddFolder("Clips", gaming)

	assert.NilError(t, client.CreateVideo(ctx, gaming, "https://youtu.be/a"))
	assert.NilError(t, client.CreateMedia(ctx, clips, "Speedrun", "2023-05-01"))

	// folder listing includes descendants, videos after media by entry type
	list, err := client.FolderBookmarks(ctx, gaming)
	assert.NilError(t, err)
	assert.Equal(t, len(list), 2)
	assert.Equal(t, list[0].EntryType, model.EntryMedia)
	assert.Equal(t, list[1].URL, "https://youtu.be/a")

	media := list[0].ID
	assert.NilError(t, client.MoveBookmark(ctx, media, root))
	b, _ := backend.Bookmark(media)
	assert.Equal(t, b.FolderID, root)

	err = client.MoveBookmark(ctx, media, "999")
	assert.ErrorContains(t, err, "Target folder not found.")

	assert.NilError(t, client.BulkMove(ctx, []model.ID{list[0].ID, list[1].ID}, clips))
	list, err = client.FolderBookmarks(ctx, clips)
	assert.NilError(t, err)
	assert.Equal(t, len(list), 2)

	n, err := client.BulkDelete(ctx, []model.ID{list[0].ID})
	assert.NilError(t, err)
	assert.Equal(t, n, 1)

	assert.NilError(t, client.DeleteBookmark(ctx, list[1].ID))
	err = client.DeleteBookmark(ctx, list[1].ID)
	assert.ErrorContains(t, err, "Bookmark not found.")
	assert.Equal(t, backend.CountRequests("POST /api/bookmarks/bulk_move"), 1)
}

func TestMergedBookmarks(t *testing.T) {
	ctx := context.Background()
	client, backend := newClient(t)
	root := backend.RootID()
	a := backend.AddFolder("Clips", root)
	games := backend.AddFolder("Games", root)
	b := backend.AddFolder("clips ", games)
	backend.AddBookmark(model.Bookmark{FolderID: a, Title: "later", UploadDate: "2024-02-01"})
	backend.AddBookmark(model.Bookmark{FolderID: b, Title: "earlier", UploadDate: "2024-01-01"})

	list, err := client.MergedBookmarks(ctx, "clips")
	assert.NilError(t, err)
	assert.Equal(t, len(list), 2)
	assert.Equal(t, list[0].Title, "earlier")
	assert.Equal(t, list[0].FolderBreadcrumb, "Root > Games > clips ")

	list, err = client.MergedBookmarks(ctx, "nope")
	assert.NilError(t, err)
	assert.Check(t, is.Len(list, 0))
}

func TestMediaLog(t *testing.T) {
	ctx := context.Background()
	client, backend := newClient(t)

	assert.NilError(t, client.CreateMediaLogItem(ctx, api.NewMediaLogItem{
		Category: model.CategoryAnime, Title: "Frieren", Progress: "ep 12", Status: model.StatusCurrently,
	}))
	err := client.CreateMediaLogItem(ctx, api.NewMediaLogItem{Category: "podcasts", Title: "x"})
	assert.ErrorContains(t, err, "Invalid category.")
	err = client.CreateMediaLogItem(ctx, api.NewMediaLogItem{Category: model.CategoryBooks, Title: "  "})
	assert.ErrorContains(t, err, "Title is required.")

	items, err := client.MediaLog(ctx, model.CategoryAnime)
	assert.NilError(t, err)
	assert.Equal(t, len(items), 1)
	id := items[0].ID

	done := model.StatusCompleted
	assert.NilError(t, client.UpdateMediaLogItem(ctx, id, api.MediaLogUpdate{Status: &done}))
	item, _ := backend.MediaLogItem(id)
	assert.Equal(t, item.Status, model.StatusCompleted)
	assert.Equal(t, item.Progress, "ep 12")

	bad := model.Status("dropped")
	err = client.UpdateMediaLogItem(ctx, id, api.MediaLogUpdate{Status: &bad})
	assert.ErrorContains(t, err, "Invalid status.")

	items, err = client.MediaLog(ctx, model.CategoryBooks)
	assert.NilError(t, err)
	assert.Check(t, is.Len(items, 0))

	assert.NilError(t, client.DeleteMediaLogItem(ctx, id))
	err = client.DeleteMediaLogItem(ctx, id)
	assert.ErrorContains(t, err, "Entry not found.")
}

func TestSubtitles(t *testing.T) {
	ctx := context.Background()
	client, backend := newClient(t)
	id := backend.AddBookmark(model.Bookmark{FolderID: backend.RootID(), Title: "Boss: Rush!"})

	_, err := client.UploadSubtitles(ctx, id, "notes.txt", strings.NewReader("x"))
	assert.ErrorContains(t, err, "Only .srt files are allowed.")

	srt := "1\n00:00:01,000 --> 00:00:02,000\nhello\n"
	path, err := client.UploadSubtitles(ctx, id, "boss.srt", strings.NewReader(srt))
	assert.NilError(t, err)
	assert.Equal(t, path, "srt_uploads/bookmark_"+id.String()+"_boss.srt")

	var buf bytes.Buffer
	name, err := client.DownloadSubtitles(ctx, id, &buf)
	assert.NilError(t, err)
	assert.Equal(t, name, "Boss Rush.srt")
	assert.Equal(t, buf.String(), srt)

	assert.NilError(t, client.DeleteSubtitles(ctx, id))
	_, err = client.DownloadSubtitles(ctx, id, &buf)
	assert.ErrorContains(t, err, "No SRT file uploaded.")
}
