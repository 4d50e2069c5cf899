// Package fakeapi is an in-memory VODMarks backend for tests.
// It serves the same routes and error payloads as the real server.
package fakeapi

import (
	"cmp"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikbrunner/vodmarks/internal/model"
)

type folder struct {
	id     int64
	name   string
	parent int64 // 0 = none
}

type subtitle struct {
	name string
	data []byte
}

// Failure is an injected error response.
type Failure struct {
	Status  int
	Message string
}

// Server is a fake backend. The zero value is not usable; call New.
type Server struct {
	mu sync.Mutex

	folders   []folder // id order
	bookmarks []model.Bookmark
	mediaLog  []model.MediaLogItem
	subtitles map[model.ID]subtitle
	nextID    int64
	rootID    int64

	failures map[string]Failure // "METHOD /path" -> response
	requests []string

	// Meta fills in scraped metadata for a new video link.
	Meta func(url string) (model.Bookmark, error)
}

// New creates a backend holding only the root folder.
func New() *Server {
	s := &Server{
		subtitles: make(map[model.ID]subtitle),
		failures:  make(map[string]Failure),
	}
	s.rootID = s.addFolder("Root", 0)
	s.Meta = func(url string) (model.Bookmark, error) {
		return model.Bookmark{Title: url, Uploader: "fake", UploadDate: "2024-01-01", DurationSeconds: 60}, nil
	}
	return s
}

// Start serves the backend on a local test server.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.Handler())
}

// Handler returns the HTTP routes of the backend.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.handleTree)
		r.Get("/merged", s.handleMerged)
		r.Get("/merged_bookmarks", s.handleMergedBookmarks)
		r.Get("/bookmarks", s.handleBookmarks)
		r.Get("/folders_flat", s.handleFoldersFlat)

		r.Post("/folder", s.handleCreateFolder)
		r.Patch("/folder/{id}", s.handleRenameFolder)
		r.Delete("/folder/{id}", s.handleDeleteFolder)

		r.Post("/bookmark", s.handleCreateBookmark)
		r.Patch("/bookmark/{id}", s.handleMoveBookmark)
		r.Delete("/bookmark/{id}", s.handleDeleteBookmark)
		r.Post("/bookmarks/bulk_delete", s.handleBulkDelete)
		r.Post("/bookmarks/bulk_move", s.handleBulkMove)

		r.Post("/bookmark/{id}/upload_srt", s.handleUploadSRT)
		r.Get("/bookmark/{id}/srt", s.handleGetSRT)
		r.Delete("/bookmark/{id}/srt", s.handleDeleteSRT)

		r.Get("/media_log", s.handleMediaLog)
		r.Post("/media_log", s.handleCreateMediaLog)
		r.Patch("/media_log/{id}", s.handleUpdateMediaLog)
		r.Delete("/media_log/{id}", s.handleDeleteMediaLog)
	})
	return r
}

// record logs every request and serves injected failures.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.mu.Lock()
		s.requests = append(s.requests, key)
		f, failing := s.failures[key]
		s.mu.Unlock()

		if failing {
			sendError(w, f.Message, f.Status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Fail makes every request matching method and path answer with an error
// until Recover is called.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = Failure{Status: status, Message: message}
}

// Recover clears all injected failures.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]Failure)
}

// Requests returns the "METHOD /path" of every request served so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// CountRequests returns how many requests matched "METHOD /path".
func (s *Server) CountRequests(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r == key {
			n++
		}
	}
	return n
}

// RootID returns the id of the root folder.
func (s *Server) RootID() model.ID {
	return idOf(s.rootID)
}

// AddFolder creates a folder under parent and returns its id.
func (s *Server) AddFolder(name string, parent model.ID) model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return idOf(s.addFolder(name, mustInt(parent)))
}

// AddBookmark stores an entry and returns its id.
// FolderID must be set. EntryType defaults to youtube.
func (s *Server) AddBookmark(b model.Bookmark) model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addBookmark(b)
}

// AddMediaLogItem stores a media-log item and returns its id.
func (s *Server) AddMediaLogItem(item model.MediaLogItem) model.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	item.ID = idOf(s.nextID)
	if item.CreatedAt == "" {
		item.CreatedAt = now()
	}
	s.mediaLog = append(s.mediaLog, item)
	return item.ID
}

// Bookmark returns a stored entry.
func (s *Server) Bookmark(id model.ID) (model.Bookmark, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(id)
	if i < 0 {
		return model.Bookmark{}, false
	}
	return s.bookmarks[i], true
}

// BookmarkCount returns the number of stored entries.
func (s *Server) BookmarkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookmarks)
}

// HasFolder reports whether a folder exists.
func (s *Server) HasFolder(id model.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folderIndex(mustInt(id)) >= 0
}

// MediaLogItem returns a stored media-log item.
func (s *Server) MediaLogItem(id model.ID) (model.MediaLogItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.mediaLog {
		if item.ID == id {
			return item, true
		}
	}
	return model.MediaLogItem{}, false
}

func (s *Server) addFolder(name string, parent int64) int64 {
	s.nextID++
	s.folders = append(s.folders, folder{id: s.nextID, name: name, parent: parent})
	return s.nextID
}

func (s *Server) addBookmark(b model.Bookmark) model.ID {
	s.nextID++
	b.ID = idOf(s.nextID)
	if b.EntryType == "" {
		b.EntryType = model.EntryYouTube
	}
	if b.CreatedAt == "" {
		b.CreatedAt = now()
	}
	s.bookmarks = append(s.bookmarks, b)
	return b.ID
}

func (s *Server) folderIndex(id int64) int {
	return slices.IndexFunc(s.folders, func(f folder) bool { return f.id == id })
}

func (s *Server) bookmarkIndex(id model.ID) int {
	return slices.IndexFunc(s.bookmarks, func(b model.Bookmark) bool { return b.ID == id })
}

// descendants returns id and every folder below it.
func (s *Server) descendants(id int64) []int64 {
	out := []int64{id}
	for i := 0; i < len(out); i++ {
		for _, f := range s.folders {
			if f.parent == out[i] {
				out = append(out, f.id)
			}
		}
	}
	return out
}

func (s *Server) breadcrumb(id int64) string {
	var parts []string
	for id != 0 {
		i := s.folderIndex(id)
		if i < 0 {
			break
		}
		parts = append(parts, s.folders[i].name)
		id = s.folders[i].parent
	}
	slices.Reverse(parts)
	return strings.Join(parts, model.BreadcrumbSeparator)
}

func (s *Server) tree(parent int64) []model.FolderNode {
	nodes := []model.FolderNode{}
	for _, f := range s.folders {
		if f.parent != parent {
			continue
		}
		node := model.FolderNode{ID: idOf(f.id), Name: f.name, Children: s.tree(f.id)}
		if f.parent != 0 {
			pid := idOf(f.parent)
			node.ParentID = &pid
		}
		for _, b := range s.bookmarks {
			if b.FolderID == node.ID {
				node.Count++
			}
		}
		for _, child := range node.Children {
			node.Count += child.Count
		}
		nodes = append(nodes, node)
	}
	return nodes
}

type mergedGroup struct {
	key   string
	ids   []int64
	total int
}

// mergedGroups buckets non-root folders by normalized name, keeping
// buckets with at least two folders in first-seen order.
func (s *Server) mergedGroups() []mergedGroup {
	var keys []string
	buckets := make(map[string][]int64)
	for _, f := range s.folders {
		if f.parent == 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(f.name))
		if _, ok := buckets[key]; !ok {
			keys = append(keys, key)
		}
		buckets[key] = append(buckets[key], f.id)
	}

	var groups []mergedGroup
	for _, key := range keys {
		ids := buckets[key]
		if len(ids) < 2 {
			continue
		}
		g := mergedGroup{key: key, ids: ids}
		for _, b := range s.bookmarks {
			if slices.Contains(ids, mustInt(b.FolderID)) {
				g.total++
			}
		}
		groups = append(groups, g)
	}
	return groups
}

var titleCaser = cases.Title(language.Und)

func mergedName(key string) string {
	return titleCaser.String(key)
}

func sortBookmarks(list []model.Bookmark, byType bool) {
	slices.SortStableFunc(list, func(a, b model.Bookmark) int {
		if byType {
			if c := cmp.Compare(a.EntryType, b.EntryType); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.UploadDate, b.UploadDate)
	})
}

func idOf(n int64) model.ID {
	return model.ID(strconv.FormatInt(n, 10))
}

func mustInt(id model.ID) int64 {
	if id == "" {
		return 0
	}
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("fakeapi: non-numeric id %q", id))
	}
	return n
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
