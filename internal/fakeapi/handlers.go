package fakeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/nikbrunner/vodmarks/internal/model"
)

var (
	mediaCategories = []string{"anime", "movies", "tv", "manga", "books", "games"}
	mediaStatuses   = []string{"currently", "completed", "plan_to_start"}
)

func sendJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, map[string]string{"error": message}, statusCode)
}

func sendOK(w http.ResponseWriter, extra map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	sendJSON(w, body, http.StatusOK)
}

// urlID parses the {id} route parameter. Non-integer ids 404 like the
// real server's int converter.
func urlID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

func decodeBody(r *http.Request, v any) {
	_ = json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sendJSON(w, map[string]any{"root": s.rootID, "tree": s.tree(0)}, http.StatusOK)
}

func (s *Server) handleMerged(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := []model.MergedGroup{}
	for _, g := range s.mergedGroups() {
		groups = append(groups, model.MergedGroup{Key: g.key, Name: mergedName(g.key), TotalBookmarks: g.total})
	}
	sendJSON(w, map[string]any{"groups": groups}, http.StatusOK)
}

func (s *Server) handleMergedBookmarks(w http.ResponseWriter, r *http.Request) {
	key := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("key")))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Bookmark{}
	for _, g := range s.mergedGroups() {
		if g.key != key {
			continue
		}
		for _, b := range s.bookmarks {
			fid := mustInt(b.FolderID)
			if !slices.Contains(g.ids, fid) {
				continue
			}
			b.FolderName = s.folders[s.folderIndex(fid)].name
			b.FolderBreadcrumb = s.breadcrumb(fid)
			out = append(out, b)
		}
	}
	sortBookmarks(out, false)
	sendJSON(w, out, http.StatusOK)
}

func (s *Server) handleBookmarks(w http.ResponseWriter, r *http.Request) {
	fid, err := strconv.ParseInt(r.URL.Query().Get("folder_id"), 10, 64)
	if err != nil {
		sendError(w, "folder_id is required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.descendants(fid)
	out := []model.Bookmark{}
	for _, b := range s.bookmarks {
		if slices.Contains(ids, mustInt(b.FolderID)) {
			out = append(out, b)
		}
	}
	sortBookmarks(out, true)
	sendJSON(w, out, http.StatusOK)
}

func (s *Server) handleFoldersFlat(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.FolderRef{}
	for _, f := range s.folders {
		out = append(out, model.FolderRef{ID: idOf(f.id), Name: f.name, Breadcrumb: s.breadcrumb(f.id)})
	}
	sendJSON(w, out, http.StatusOK)
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string   `json:"name"`
		ParentID model.ID `json:"parent_id"`
	}
	decodeBody(r, &body)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addFolder(body.Name, mustInt(body.ParentID))
	sendOK(w, nil)
}

func (s *Server) handleRenameFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	decodeBody(r, &body)
	name := strings.TrimSpace(body.Name)
	if name == "" {
		sendError(w, "Name is required.", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.rootID {
		sendError(w, "Can't rename Root.", http.StatusBadRequest)
		return
	}
	i := s.folderIndex(id)
	if i < 0 {
		sendError(w, "Folder not found.", http.StatusNotFound)
		return
	}
	s.folders[i].name = name
	sendOK(w, nil)
}

func (s *Server) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id == s.rootID {
		sendError(w, "Can't delete Root.", http.StatusBadRequest)
		return
	}
	if s.folderIndex(id) < 0 {
		sendError(w, "Folder not found.", http.StatusNotFound)
		return
	}

	ids := s.descendants(id)
	s.bookmarks = slices.DeleteFunc(s.bookmarks, func(b model.Bookmark) bool {
		return slices.Contains(ids, mustInt(b.FolderID))
	})
	s.folders = slices.DeleteFunc(s.folders, func(f folder) bool {
		return slices.Contains(ids, f.id)
	})
	sendOK(w, map[string]any{"deleted_folders": len(ids)})
}

func (s *Server) handleCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FolderID  model.ID        `json:"folder_id"`
		EntryType model.EntryType `json:"entry_type"`
		URL       string          `json:"url"`
		Title     string          `json:"title"`
		Date      string          `json:"date"`
	}
	decodeBody(r, &body)

	if body.EntryType == model.EntryMedia {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.addBookmark(model.Bookmark{
			FolderID:   body.FolderID,
			EntryType:  model.EntryMedia,
			Title:      body.Title,
			UploadDate: body.Date,
		})
		sendOK(w, nil)
		return
	}

	meta, err := s.Meta(body.URL)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	meta.FolderID = body.FolderID
	meta.URL = body.URL
	meta.EntryType = model.EntryYouTube

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addBookmark(meta)
	sendOK(w, nil)
}

func (s *Server) handleMoveBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var body struct {
		FolderID *model.ID `json:"folder_id"`
	}
	decodeBody(r, &body)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(idOf(id))
	if i < 0 {
		sendError(w, "Bookmark not found.", http.StatusNotFound)
		return
	}
	if body.FolderID != nil {
		if s.folderIndex(mustInt(*body.FolderID)) < 0 {
			sendError(w, "Target folder not found.", http.StatusNotFound)
			return
		}
		s.bookmarks[i].FolderID = *body.FolderID
	}
	sendOK(w, nil)
}

func (s *Server) handleDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(idOf(id))
	if i < 0 {
		sendError(w, "Bookmark not found.", http.StatusNotFound)
		return
	}
	s.bookmarks = slices.Delete(s.bookmarks, i, i+1)
	sendOK(w, nil)
}

func (s *Server) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []model.ID `json:"ids"`
	}
	decodeBody(r, &body)
	if len(body.IDs) == 0 {
		sendError(w, "No bookmark IDs provided.", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.bookmarks)
	s.bookmarks = slices.DeleteFunc(s.bookmarks, func(b model.Bookmark) bool {
		return slices.Contains(body.IDs, b.ID)
	})
	sendOK(w, map[string]any{"deleted": before - len(s.bookmarks)})
}

func (s *Server) handleBulkMove(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs      []model.ID `json:"ids"`
		FolderID model.ID   `json:"folder_id"`
	}
	decodeBody(r, &body)
	if len(body.IDs) == 0 || body.FolderID.IsZero() {
		sendError(w, "IDs and folder_id required.", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.folderIndex(mustInt(body.FolderID)) < 0 {
		sendError(w, "Target folder not found.", http.StatusNotFound)
		return
	}
	for i := range s.bookmarks {
		if slices.Contains(body.IDs, s.bookmarks[i].ID) {
			s.bookmarks[i].FolderID = body.FolderID
		}
	}
	sendOK(w, nil)
}

func (s *Server) handleUploadSRT(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	bid := idOf(id)

	s.mu.Lock()
	exists := s.bookmarkIndex(bid) >= 0
	s.mu.Unlock()
	if !exists {
		sendError(w, "Bookmark not found.", http.StatusNotFound)
		return
	}

	file, header, err := r.FormFile("srt_file")
	if err != nil {
		sendError(w, "No file uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()
	if header.Filename == "" {
		sendError(w, "No file selected.", http.StatusBadRequest)
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".srt") {
		sendError(w, "Only .srt files are allowed.", http.StatusBadRequest)
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	path := filepath.ToSlash(filepath.Join("srt_uploads", fmt.Sprintf("bookmark_%d_%s", id, filepath.Base(header.Filename))))

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(bid)
	if i < 0 {
		sendError(w, "Bookmark not found.", http.StatusNotFound)
		return
	}
	s.subtitles[bid] = subtitle{name: header.Filename, data: data}
	s.bookmarks[i].SRTFilePath = path
	sendOK(w, map[string]any{"srt_file_path": path})
}

func (s *Server) handleGetSRT(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	bid := idOf(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(bid)
	if i < 0 {
		sendError(w, "Bookmark not found.", http.StatusNotFound)
		return
	}
	b := s.bookmarks[i]
	if b.SRTFilePath == "" {
		sendError(w, "No SRT file uploaded.", http.StatusNotFound)
		return
	}
	sub, ok := s.subtitles[bid]
	if !ok {
		sendError(w, "SRT file not found.", http.StatusNotFound)
		return
	}

	title := b.Title
	if title == "" {
		title = fmt.Sprintf("bookmark_%d", id)
	}
	w.Header().Set("Content-Type", "application/x-subrip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", safeFilename(title)+".srt"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sub.data)
}

func (s *Server) handleDeleteSRT(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	bid := idOf(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookmarkIndex(bid)
	if i < 0 {
		sendError(w, "Bookmark not found.", http.StatusNotFound)
		return
	}
	delete(s.subtitles, bid)
	s.bookmarks[i].SRTFilePath = ""
	sendOK(w, nil)
}

// safeFilename keeps letters, digits, spaces, dashes and underscores.
func safeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func (s *Server) handleMediaLog(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	filter := slices.Contains(mediaCategories, category)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.MediaLogItem{}
	for _, item := range s.mediaLog {
		if !filter || string(item.Category) == category {
			out = append(out, item)
		}
	}
	slices.SortStableFunc(out, func(a, b model.MediaLogItem) int {
		if c := strings.Compare(string(a.Category), string(b.Category)); c != 0 {
			return c
		}
		if c := strings.Compare(string(a.Status), string(b.Status)); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	sendJSON(w, out, http.StatusOK)
}

func (s *Server) handleCreateMediaLog(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Category string `json:"category"`
		Title    string `json:"title"`
		Progress string `json:"progress"`
		Status   string `json:"status"`
	}
	decodeBody(r, &body)
	category := strings.ToLower(strings.TrimSpace(body.Category))
	title := strings.TrimSpace(body.Title)
	status := strings.TrimSpace(body.Status)
	if status == "" {
		status = string(model.StatusPlanToStart)
	}
	if !slices.Contains(mediaCategories, category) {
		sendError(w, "Invalid category.", http.StatusBadRequest)
		return
	}
	if title == "" {
		sendError(w, "Title is required.", http.StatusBadRequest)
		return
	}
	if !slices.Contains(mediaStatuses, status) {
		sendError(w, "Invalid status.", http.StatusBadRequest)
		return
	}

	s.AddMediaLogItem(model.MediaLogItem{
		Category: model.Category(category),
		Title:    title,
		Progress: strings.TrimSpace(body.Progress),
		Status:   model.Status(status),
	})
	sendOK(w, nil)
}

func (s *Server) handleUpdateMediaLog(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	var body struct {
		Title    *string `json:"title"`
		Progress *string `json:"progress"`
		Status   *string `json:"status"`
	}
	decodeBody(r, &body)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.mediaLog, func(item model.MediaLogItem) bool { return item.ID == idOf(id) })
	if i < 0 {
		sendError(w, "Entry not found.", http.StatusNotFound)
		return
	}
	item := s.mediaLog[i]
	if body.Title != nil && strings.TrimSpace(*body.Title) != "" {
		item.Title = strings.TrimSpace(*body.Title)
	}
	if body.Progress != nil {
		item.Progress = *body.Progress
	}
	if body.Status != nil && strings.TrimSpace(*body.Status) != "" {
		item.Status = model.Status(strings.TrimSpace(*body.Status))
	}
	if !slices.Contains(mediaStatuses, string(item.Status)) {
		sendError(w, "Invalid status.", http.StatusBadRequest)
		return
	}
	s.mediaLog[i] = item
	sendOK(w, nil)
}

func (s *Server) handleDeleteMediaLog(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.mediaLog)
	s.mediaLog = slices.DeleteFunc(s.mediaLog, func(item model.MediaLogItem) bool { return item.ID == idOf(id) })
	if len(s.mediaLog) == before {
		sendError(w, "Entry not found.", http.StatusNotFound)
		return
	}
	sendOK(w, nil)
}
