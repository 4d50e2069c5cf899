package tui_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/vodmarks/internal/api"
	"github.com/nikbrunner/vodmarks/internal/app"
	"github.com/nikbrunner/vodmarks/internal/fakeapi"
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/prefs"
	"github.com/nikbrunner/vodmarks/internal/state"
	"github.com/nikbrunner/vodmarks/internal/tui"
	"github.com/nikbrunner/vodmarks/internal/tui/layout"
)

// harness drives an App the way a tea.Program would: commands run off the
// update loop and their messages are fed back in.
type harness struct {
	t       *testing.T
	app     tui.App
	ctrl    *app.Controller
	backend *fakeapi.Server
	sent    chan tea.Msg

	// confirmKey answers confirm modals while a command runs.
	confirmKey string
	copied     string
	opened     string
	copyErr    error

	root, gaming, clips, music model.ID
}

// newHarness builds Root > {Gaming > {Clips}, Music} and runs Init.
func newHarness(t *testing.T) *harness {
	t.Helper()
	backend := fakeapi.New()
	srv := backend.Start()
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL)
	assert.NilError(t, err)

	h := &harness{
		t:          t,
		backend:    backend,
		sent:       make(chan tea.Msg, 256),
		confirmKey: "y",
		root:       backend.RootID(),
	}
	h.gaming = backend.AddFolder("Gaming", h.root)
	h.clips = backend.AddFolder("Clips", h.gaming)
	h.music = backend.AddFolder("Music", h.root)

	bridge := tui.NewBridge()
	bridge.SetSend(func(msg tea.Msg) { h.sent <- msg })
	h.ctrl = app.New(state.New(prefs.NewMemory()), client, app.WithConfirmer(bridge), app.WithNotifier(bridge))

	h.app = tui.NewApp(tui.AppParams{
		Controller: h.ctrl,
		Clipboard: func(s string) error {
			h.copied = s
			return h.copyErr
		},
		Open: func(s string) error {
			h.opened = s
			return nil
		},
	}).WithDimensions(120, 40)

	h.exec(h.app.Init())
	return h
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys one at a time and runs the resulting commands.
func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.exec(h.update(keyMsg(k)))
	}
}

// typeText enters text into the focused input.
func (h *harness) typeText(text string) {
	h.t.Helper()
	h.exec(h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}))
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	m, cmd := h.app.Update(msg)
	h.app = m.(tui.App)
	return cmd
}

// exec runs cmd to completion, answering confirm requests on the way.
// Commands that do not finish in time (cursor blinks) are abandoned.
func (h *harness) exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case msg := <-done:
			h.flush()
			h.deliver(msg)
			h.flush()
			return
		case msg := <-h.sent:
			h.update(msg)
			if h.app.Mode() == tui.ModeConfirm && h.confirmKey != "" {
				h.update(keyMsg(h.confirmKey))
			}
		case <-timeout:
			return
		}
	}
}

// deliver feeds a command result back. Follow-up commands are timers and
// are dropped.
func (h *harness) deliver(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.exec(c)
		}
	default:
		h.update(msg)
	}
}

// flush feeds pending bridge messages.
func (h *harness) flush() {
	for {
		select {
		case msg := <-h.sent:
			h.update(msg)
		default:
			return
		}
	}
}

func (h *harness) view() string {
	return layout.StripANSI(h.app.View())
}

func (h *harness) storeView() state.View {
	var v state.View
	h.ctrl.Read(func(s *state.Store) { v = s.View() })
	return v
}

func (h *harness) entryTitles() []string {
	var titles []string
	h.ctrl.Read(func(s *state.Store) {
		for _, b := range s.ProjectedEntries() {
			titles = append(titles, b.Title)
		}
	})
	return titles
}

// addVODs stores two videos in Gaming.
func (h *harness) addVODs() (model.ID, model.ID) {
	a := h.backend.AddBookmark(model.Bookmark{FolderID: h.gaming, Title: "Boss Rush", URL: "https://youtu.be/a", DurationSeconds: 125})
	b := h.backend.AddBookmark(model.Bookmark{FolderID: h.gaming, Title: "Any% Speedrun", URL: "https://youtu.be/b"})
	return a, b
}

// openGaming opens the Gaming folder and focuses the list.
func (h *harness) openGaming() {
	h.t.Helper()
	h.press("j", "enter", "tab")
	assert.Assert(h.t, h.storeView().IsFolder(h.gaming))
}

func TestApp_InitLoadsTree(t *testing.T) {
	h := newHarness(t)

	view := h.view()
	assert.Check(t, is.Contains(view, "Root"))
	assert.Check(t, is.Contains(view, "Gaming"))
	assert.Check(t, is.Contains(view, "Clips"))
	assert.Check(t, is.Contains(view, "Select a folder"))
	assert.Check(t, is.Equal(h.app.FocusedPane(), tui.PaneSidebar))
}

func TestApp_Navigation_JK(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, h.app.Cursor(), 0)
	h.press("j")
	assert.Equal(t, h.app.Cursor(), 1)
	h.press("k")
	assert.Equal(t, h.app.Cursor(), 0)

	// Stays in bounds
	h.press("k")
	assert.Equal(t, h.app.Cursor(), 0)
}

func TestApp_Navigation_TopBottom(t *testing.T) {
	h := newHarness(t)

	h.press("G")
	assert.Equal(t, h.app.Cursor(), 3)

	// A single g does nothing
	h.press("g")
	assert.Equal(t, h.app.Cursor(), 3)
	h.press("g")
	assert.Equal(t, h.app.Cursor(), 0)
}

func TestApp_CollapseAndExpand(t *testing.T) {
	h := newHarness(t)
	h.press("j") // Gaming

	h.press("h")
	assert.Check(t, !strings.Contains(h.view(), "Clips"))
	h.press("G")
	assert.Check(t, is.Equal(h.app.Cursor(), 2), "Music moves up while Clips is hidden")

	h.press("k", "l")
	assert.Check(t, is.Contains(h.view(), "Clips"))
}

func TestApp_OpenFolderShowsEntries(t *testing.T) {
	h := newHarness(t)
	h.addVODs()

	h.press("j", "enter")

	assert.Assert(t, h.storeView().IsFolder(h.gaming))
	view := h.view()
	assert.Check(t, is.Contains(view, "Boss Rush"))
	assert.Check(t, is.Contains(view, "Any% Speedrun"))
	assert.Check(t, is.Contains(view, "2:05"))
}

func TestApp_AddFolder(t *testing.T) {
	h := newHarness(t)

	h.press("n")
	assert.Equal(t, h.app.Mode(), tui.ModeAddFolder)

	h.typeText("Speedruns")
	h.press("enter")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, is.Contains(h.view(), "Speedruns"))
}

func TestApp_FormStaysOpenOnError(t *testing.T) {
	h := newHarness(t)
	h.openGaming()

	h.press("a")
	assert.Assert(t, is.Equal(h.app.Mode(), tui.ModeAddVideo))

	// Empty URL is rejected and the form stays open
	h.press("enter")
	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeAddVideo))
	assert.Check(t, is.Equal(h.app.Message(), "Video URL is required."))

	h.press("esc")
	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
}

func TestApp_AddVideoNeedsFolder(t *testing.T) {
	h := newHarness(t)

	h.press("a")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, is.Contains(h.app.Message(), "Select a real folder first"))
}

func TestApp_AddVideo(t *testing.T) {
	h := newHarness(t)
	h.openGaming()

	h.press("a")
	h.typeText("https://youtu.be/new")
	h.press("enter")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, is.Equal(h.backend.BookmarkCount(), 1))
	assert.Check(t, is.DeepEqual(h.entryTitles(), []string{"https://youtu.be/new"}))
	assert.Check(t, is.Equal(h.app.Message(), "VOD added successfully!"))
}

func TestApp_DeleteEntryConfirmed(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()

	h.press("d")

	assert.Check(t, is.Equal(h.backend.BookmarkCount(), 1))
	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, is.Equal(h.app.Message(), "Entry deleted"))
}

func TestApp_DeleteEntryDeclined(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()
	h.confirmKey = "n"

	h.press("d")

	assert.Check(t, is.Equal(h.backend.BookmarkCount(), 2))
	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
}

func TestApp_SelectionAndBulkDelete(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.backend.AddBookmark(model.Bookmark{FolderID: h.gaming, Title: "Clutch", URL: "https://youtu.be/c"})
	h.openGaming()

	h.press("space", "j", "v")
	assert.Check(t, is.Contains(h.view(), "2 selected"))

	h.press("d")

	assert.Check(t, is.Equal(h.backend.BookmarkCount(), 1))
	assert.Check(t, !strings.Contains(h.view(), "selected"))
	assert.Check(t, is.Equal(h.app.Message(), "Deleted 2 entries"))
}

func TestApp_EscClearsSelectionThenQuery(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()

	h.press("/")
	h.typeText("boss")
	h.press("enter", "space")
	assert.Check(t, is.DeepEqual(h.entryTitles(), []string{"Boss Rush"}))
	assert.Check(t, is.Contains(h.view(), "1 selected"))

	h.press("esc")
	assert.Check(t, !strings.Contains(h.view(), "selected"))
	assert.Check(t, is.DeepEqual(h.entryTitles(), []string{"Boss Rush"}))

	h.press("esc")
	assert.Check(t, is.Len(h.entryTitles(), 2))
}

func TestApp_SearchKeepsQueryOnEsc(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()

	h.press("/")
	assert.Assert(t, is.Equal(h.app.Mode(), tui.ModeSearch))
	h.typeText("speed")
	h.press("esc")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, is.DeepEqual(h.entryTitles(), []string{"Any% Speedrun"}))
	assert.Check(t, is.Contains(h.view(), "filter: speed"))
}

func TestApp_SortCycles(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()

	h.press("o", "o", "o") // date asc, date desc, title A-Z
	assert.Check(t, is.DeepEqual(h.entryTitles(), []string{"Any% Speedrun", "Boss Rush"}))
	assert.Check(t, is.Contains(h.view(), "title A-Z"))
}

func TestApp_MoveEntry(t *testing.T) {
	h := newHarness(t)
	id, _ := h.addVODs()
	h.openGaming()

	h.press("m")
	assert.Assert(t, is.Equal(h.app.Mode(), tui.ModeMove))
	h.typeText("music")
	h.press("enter")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	bm, ok := h.backend.Bookmark(id)
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(bm.FolderID, h.music))
	assert.Check(t, is.Equal(h.app.Message(), "Moved to Music"))
}

func TestApp_FindJumpsToEntry(t *testing.T) {
	h := newHarness(t)
	h.backend.AddBookmark(model.Bookmark{FolderID: h.music, Title: "Lofi Mix", URL: "https://youtu.be/l"})
	h.addVODs()

	h.press("f")
	assert.Assert(t, is.Equal(h.app.Mode(), tui.ModeFind))
	h.typeText("lofi")
	h.press("enter")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, h.storeView().IsFolder(h.music))
	assert.Check(t, is.Equal(h.app.FocusedPane(), tui.PaneList))
	assert.Check(t, is.Contains(h.view(), "Lofi Mix"))
}

func TestApp_CopyAndOpenURL(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()

	h.press("y")
	assert.Check(t, is.Equal(h.copied, "https://youtu.be/a"))
	assert.Check(t, is.Equal(h.app.Message(), "Copied URL"))

	h.press("enter")
	assert.Check(t, is.Equal(h.opened, "https://youtu.be/a"))
}

func TestApp_CopyURLWithoutClipboard(t *testing.T) {
	h := newHarness(t)
	h.addVODs()
	h.openGaming()
	h.copyErr = errors.New("no clipboard")

	h.press("y")

	assert.Check(t, is.Equal(h.app.Message(), "Clipboard unavailable"))
}

func TestApp_DeleteFolderResetsView(t *testing.T) {
	h := newHarness(t)
	h.press("j", "enter") // open Gaming, cursor stays on Gaming

	h.press("d")

	assert.Check(t, !h.backend.HasFolder(h.gaming))
	assert.Check(t, is.Equal(h.storeView().Kind, state.ViewNone))
	assert.Check(t, is.Equal(h.app.Message(), `Deleted "Gaming"`))
	assert.Check(t, !strings.Contains(h.view(), "Clips"))
}

func TestApp_RenameFolder(t *testing.T) {
	h := newHarness(t)
	h.press("G") // Music

	h.press("r")
	assert.Assert(t, is.Equal(h.app.Mode(), tui.ModeRenameFolder))
	for range "Music" {
		h.press("backspace")
	}
	h.typeText("Soundtracks")
	h.press("enter")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	assert.Check(t, is.Contains(h.view(), "Soundtracks"))
}

func TestApp_MediaLogTab(t *testing.T) {
	h := newHarness(t)
	id := h.backend.AddMediaLogItem(model.MediaLogItem{Category: model.CategoryAnime, Title: "Frieren", Progress: "Ep 5", Status: model.StatusCurrently})
	h.backend.AddMediaLogItem(model.MediaLogItem{Category: model.CategoryMovies, Title: "Heat", Status: model.StatusCompleted})

	h.press("2")
	view := h.view()
	assert.Check(t, is.Contains(view, "Frieren · Ep 5"))
	assert.Check(t, is.Contains(view, "In Progress (1)"))
	assert.Check(t, !strings.Contains(view, "Heat"))

	// Cycle the status from the list
	h.press("tab", "c")
	item, ok := h.backend.MediaLogItem(id)
	assert.Assert(t, ok)
	assert.Check(t, is.Equal(item.Status, model.StatusCurrently.Next()))

	h.press("]")
	assert.Check(t, is.Contains(h.view(), "Heat"))
}

func TestApp_MediaLogAdd(t *testing.T) {
	h := newHarness(t)
	h.press("2")

	h.press("a")
	assert.Assert(t, is.Equal(h.app.Mode(), tui.ModeMediaLogAdd))
	h.typeText("Dandadan")
	h.press("tab")
	h.typeText("Ep 1")
	h.press("ctrl+s")
	h.press("enter")

	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
	view := h.view()
	assert.Check(t, is.Contains(view, "Dandadan · Ep 1"))
	assert.Check(t, is.Contains(view, model.StatusPlanToStart.Next().Label()))
}

func TestApp_HelpOverlay(t *testing.T) {
	h := newHarness(t)

	h.press("?")
	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeHelp))
	assert.Check(t, is.Contains(h.view(), "find anywhere"))

	h.press("?")
	assert.Check(t, is.Equal(h.app.Mode(), tui.ModeNormal))
}

func TestApp_Quit(t *testing.T) {
	h := newHarness(t)

	cmd := h.update(keyMsg("q"))

	assert.Assert(t, cmd != nil)
	_, ok := cmd().(tea.QuitMsg)
	assert.Check(t, ok)
}
