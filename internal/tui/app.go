package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nikbrunner/vodmarks/internal/app"
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/prefs"
	"github.com/nikbrunner/vodmarks/internal/project"
	"github.com/nikbrunner/vodmarks/internal/state"
	"github.com/nikbrunner/vodmarks/internal/tui/layout"
)

// snapshot is the store state the view renders from. It is re-read after
// every finished action so rendering never touches the store.
type snapshot struct {
	tab       state.Tab
	sidebar   []SidebarItem
	title     string
	view      state.View
	canAdd    bool
	entries   []model.Bookmark // projected
	loading   bool             // a view is open but its entries are not loaded yet
	query     string
	sortKey   project.SortKey
	selected  map[model.ID]bool
	category  model.Category
	mlLoaded  bool
	mlGroups  []project.StatusGroup
	mlItems   []model.MediaLogItem // flattened in group order
	mlQuery   string
	mlSortKey project.SortKey
	theme     prefs.Theme
	viewMode  prefs.ViewMode
}

func takeSnapshot(s *state.Store) snapshot {
	snap := snapshot{
		tab:       s.Tab(),
		sidebar:   sidebarItems(s),
		title:     s.ViewTitle(),
		view:      s.View(),
		canAdd:    s.CanAddEntries(),
		entries:   s.ProjectedEntries(),
		query:     s.Query(),
		sortKey:   s.SortKey(),
		selected:  make(map[model.ID]bool, s.SelectionCount()),
		category:  s.Category(),
		mlLoaded:  s.MediaLog() != nil,
		mlGroups:  s.ProjectedMediaLog(),
		mlQuery:   s.MediaLogQuery(),
		mlSortKey: s.MediaLogSortKey(),
		theme:     s.Theme(),
		viewMode:  s.ViewMode(),
	}
	snap.loading = snap.view.Kind != state.ViewNone && s.Entries() == nil
	for _, id := range s.SelectedIDs() {
		snap.selected[id] = true
	}
	for _, g := range snap.mlGroups {
		snap.mlItems = append(snap.mlItems, g.Items...)
	}
	return snap
}

// App is the main bubbletea model for vodmarks.
type App struct {
	ctrl         *app.Controller
	ctx          context.Context
	keys         KeyMap
	styles       Styles
	customStyles bool
	layoutConfig layout.LayoutConfig
	clipboard    func(string) error
	open         func(string) error
	logger       *zap.Logger

	snap        snapshot
	mode        Mode
	focusedPane Pane

	sidebarCursor  int
	listCursor     int
	categoryCursor int
	mlCursor       int

	// For gg command
	lastKeyWasG bool

	searchInput textinput.Model
	modal       ModalState
	move        MoveState
	find        FindState
	confirm     ConfirmState
	subs        SubtitleState

	messageText string
	messageType MessageType
	messageSeq  int

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Controller   *app.Controller
	Context      context.Context      // optional, used for every backend call
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, follows the stored theme if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Clipboard    func(string) error   // optional, system clipboard if nil
	Open         func(string) error   // optional, default browser if nil
	Logger       *zap.Logger          // optional
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	ctx := params.Context
	if ctx == nil {
		ctx = context.Background()
	}

	a := App{
		ctrl:         params.Controller,
		ctx:          ctx,
		keys:         keys,
		layoutConfig: layoutConfig,
		clipboard:    params.Clipboard,
		open:         params.Open,
		logger:       params.Logger,
		focusedPane:  PaneSidebar,
		searchInput:  newInput("Search...", layoutConfig.Input.QueryCharLimit, layoutConfig.Input.StandardWidth),
		modal:        NewModalState(layoutConfig),
		move:         NewMoveState(layoutConfig),
		find:         NewFindState(layoutConfig),
		width:        80,
		height:       24,
	}
	if a.clipboard == nil {
		a.clipboard = clipboard.WriteAll
	}
	if a.open == nil {
		a.open = OpenURL
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	if params.Styles != nil {
		a.styles = *params.Styles
		a.customStyles = true
	}

	a.sync()
	return a
}

// WithDimensions returns a copy of the app sized for a terminal.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Mode returns the current interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// FocusedPane returns the focused pane.
func (a App) FocusedPane() Pane {
	return a.focusedPane
}

// Cursor returns the cursor position in the focused pane.
func (a App) Cursor() int {
	switch {
	case a.snap.tab == state.TabMediaLog && a.focusedPane == PaneSidebar:
		return a.categoryCursor
	case a.snap.tab == state.TabMediaLog:
		return a.mlCursor
	case a.focusedPane == PaneSidebar:
		return a.sidebarCursor
	default:
		return a.listCursor
	}
}

// Message returns the text on the message line.
func (a App) Message() string {
	return a.messageText
}

// sync re-reads the store and clamps every cursor.
func (a *App) sync() {
	a.ctrl.Read(func(s *state.Store) {
		a.snap = takeSnapshot(s)
	})
	if !a.customStyles {
		a.styles = ThemeStyles(a.snap.theme)
	}
	a.sidebarCursor = clamp(a.sidebarCursor, len(a.snap.sidebar))
	a.listCursor = clamp(a.listCursor, len(a.snap.entries))
	a.categoryCursor = clamp(a.categoryCursor, len(model.Categories))
	a.mlCursor = clamp(a.mlCursor, len(a.snap.mlItems))
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.run(a.ctrl.LoadAll)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.subs.Viewport.Width = a.subtitleWidth()
		split := layout.CalculateSplit(a.width, a.layoutConfig.Pane)
		// Prompt and cursor take three cells
		a.searchInput.Width = max(1, layout.CalculateItemWidth(split.List, a.layoutConfig.Pane)-3)
		return nil

	case noticeMsg:
		a.messageText = msg.text
		a.messageType = msg.kind
		a.messageSeq++
		return clearNoticeAfter(a.messageSeq)

	case clearNoticeMsg:
		if msg.seq == a.messageSeq {
			a.messageText = ""
		}
		return nil

	case confirmRequestMsg:
		// A second request while one is open is declined.
		if a.mode == ModeConfirm {
			msg.reply <- false
			return nil
		}
		a.confirm = ConfirmState{Title: msg.title, Message: msg.message, reply: msg.reply, prev: a.mode}
		a.mode = ModeConfirm
		return nil

	case actionDoneMsg:
		a.sync()
		if msg.form != ModeNormal && a.mode == msg.form && msg.err == nil {
			a.closeModal()
		}
		if msg.focus != "" {
			for i, e := range a.snap.entries {
				if e.ID == msg.focus {
					a.listCursor = i
					a.focusedPane = PaneList
					break
				}
			}
		}
		return nil

	case moveTargetsMsg:
		if a.mode == ModeMove {
			a.move.Targets = msg.targets
			a.move.Loading = false
			a.move.applyFilter()
		}
		return nil

	case allEntriesMsg:
		if a.mode != ModeFind {
			return nil
		}
		a.find.Loading = false
		if msg.err != nil {
			a.closeModal()
			return func() tea.Msg { return noticeMsg{kind: MessageError, text: "Failed to load entries."} }
		}
		a.find.All = msg.list
		a.find.applyQuery()
		return nil

	case subtitlesMsg:
		if msg.err != nil {
			return nil
		}
		a.subs.Name = msg.name
		a.subs.Viewport = viewport.New(a.subtitleWidth(), a.layoutConfig.Modal.SubtitleHeight)
		a.subs.Viewport.SetContent(msg.content)
		a.mode = ModeSubtitles
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Keep the focused input's cursor blinking
	if input := a.activeInput(); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		return cmd
	}
	return nil
}

// activeInput returns the text input receiving keys in the current mode.
func (a *App) activeInput() *textinput.Model {
	switch {
	case a.mode == ModeSearch:
		return &a.searchInput
	case a.mode == ModeMove:
		return &a.move.FilterInput
	case a.mode == ModeFind:
		return &a.find.Input
	case a.mode.isForm():
		return a.modal.focused(a.mode)
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}

	switch {
	case a.mode == ModeConfirm:
		return a.handleConfirmKey(msg)
	case a.mode == ModeHelp:
		if key.Matches(msg, a.keys.Help, a.keys.Quit, a.keys.Clear) {
			a.mode = ModeNormal
		}
		return nil
	case a.mode == ModeSubtitles:
		return a.handleSubtitlesKey(msg)
	case a.mode == ModeSearch:
		return a.handleSearchKey(msg)
	case a.mode == ModeMove:
		return a.handleMoveKey(msg)
	case a.mode == ModeFind:
		return a.handleFindKey(msg)
	case a.mode.isForm():
		return a.handleFormKey(msg)
	}
	return a.handleNormalKey(msg)
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "y", "Y":
		a.confirm.answer(true)
	case "esc", "n", "N", "q":
		a.confirm.answer(false)
	default:
		return nil
	}
	a.mode = a.confirm.prev
	a.confirm = ConfirmState{}
	return nil
}

func (a *App) handleSubtitlesKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Clear, a.keys.Quit) {
		a.mode = ModeNormal
		a.subs = SubtitleState{}
		return nil
	}
	var cmd tea.Cmd
	a.subs.Viewport, cmd = a.subs.Viewport.Update(msg)
	return cmd
}

// handleSearchKey edits the list query. Enter and Esc leave the input;
// the query stays applied either way.
func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		a.searchInput.Blur()
		a.mode = ModeNormal
		return nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	query := a.searchInput.Value()
	tab := a.snap.tab
	a.ctrl.Update(func(s *state.Store) {
		if tab == state.TabMediaLog {
			s.SetMediaLogQuery(query)
		} else {
			s.SetQuery(query)
		}
	})
	a.sync()
	return cmd
}

func (a *App) handleMoveKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.closeModal()
		return nil
	case "up", "ctrl+k", "ctrl+p":
		if a.move.FolderIdx > 0 {
			a.move.FolderIdx--
		}
		return nil
	case "down", "ctrl+j", "ctrl+n":
		if a.move.FolderIdx < len(a.move.Filtered)-1 {
			a.move.FolderIdx++
		}
		return nil
	case "enter":
		if len(a.move.Filtered) == 0 {
			return nil
		}
		target := a.move.Filtered[a.move.FolderIdx].Folder.ID
		entryID := a.move.EntryID
		a.closeModal()
		if entryID == "" {
			return a.run(func(ctx context.Context) error { return a.ctrl.BulkMove(ctx, target) })
		}
		return a.run(func(ctx context.Context) error { return a.ctrl.MoveEntry(ctx, entryID, target) })
	}

	var cmd tea.Cmd
	a.move.FilterInput, cmd = a.move.FilterInput.Update(msg)
	a.move.applyFilter()
	return cmd
}

func (a *App) handleFindKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.closeModal()
		return nil
	case "up", "ctrl+k", "ctrl+p":
		if a.find.Cursor > 0 {
			a.find.Cursor--
		}
		return nil
	case "down", "ctrl+j", "ctrl+n":
		if a.find.Cursor < len(a.find.Results)-1 {
			a.find.Cursor++
		}
		return nil
	case "enter":
		if len(a.find.Results) == 0 {
			return nil
		}
		entry := *a.find.Results[a.find.Cursor].Bookmark
		a.closeModal()
		a.ctrl.Update(func(s *state.Store) {
			s.SetTab(state.TabBookmarks)
			s.SetQuery("")
		})
		a.searchInput.Reset()
		return a.jump(entry)
	}

	var cmd tea.Cmd
	a.find.Input, cmd = a.find.Input.Update(msg)
	a.find.applyQuery()
	return cmd
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.closeModal()
		return nil
	case "tab", "down":
		a.modal.focusField(a.mode, a.modal.focus+1)
		return nil
	case "shift+tab", "up":
		a.modal.focusField(a.mode, a.modal.focus-1)
		return nil
	case "ctrl+s":
		if a.mode == ModeMediaLogAdd {
			a.modal.Status = a.modal.Status.Next()
		}
		return nil
	case "enter":
		return a.submitForm()
	}

	input := a.modal.focused(a.mode)
	if input == nil {
		return nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return cmd
}

// submitForm runs the action of the open form. The form stays open until
// the action succeeds.
func (a *App) submitForm() tea.Cmd {
	m := a.modal
	ctrl := a.ctrl
	var fn func(ctx context.Context) error

	switch a.mode {
	case ModeAddFolder:
		fn = func(ctx context.Context) error { return ctrl.CreateFolder(ctx, m.NameInput.Value()) }
	case ModeRenameFolder:
		fn = func(ctx context.Context) error { return ctrl.RenameFolder(ctx, m.EditID, m.NameInput.Value()) }
	case ModeAddVideo:
		fn = func(ctx context.Context) error { return ctrl.AddVideo(ctx, m.URLInput.Value()) }
	case ModeAddMedia:
		fn = func(ctx context.Context) error { return ctrl.AddMedia(ctx, m.TitleInput.Value(), m.DateInput.Value()) }
	case ModeMediaLogAdd:
		fn = func(ctx context.Context) error {
			return ctrl.AddMediaLogItem(ctx, m.TitleInput.Value(), m.ProgressInput.Value(), m.Status)
		}
	case ModeMediaLogEdit:
		fn = func(ctx context.Context) error {
			return ctrl.EditMediaLogItem(ctx, m.EditID, m.TitleInput.Value(), m.ProgressInput.Value())
		}
	case ModeAttachSubtitles:
		path := expandHome(m.PathInput.Value())
		fn = func(ctx context.Context) error { return ctrl.AttachSubtitles(ctx, m.EditID, path) }
	default:
		return nil
	}
	return a.submit(a.mode, fn)
}

// expandHome resolves a leading ~ in a typed path.
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// openForm switches to a form mode with fresh inputs.
func (a *App) openForm(mode Mode) {
	a.modal.ResetInputs()
	a.mode = mode
	a.modal.focusField(mode, 0)
}

// closeModal returns to normal mode and resets every modal.
func (a *App) closeModal() {
	for _, f := range a.modal.fields(a.mode) {
		f.Blur()
	}
	a.modal.ResetInputs()
	a.move.Reset()
	a.find.Reset()
	a.mode = ModeNormal
}

func (a *App) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.setCursor(0)
			a.lastKeyWasG = false
			return nil
		}
		a.lastKeyWasG = true
		return nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit

	case key.Matches(msg, a.keys.Clear):
		return a.clear()

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
		return nil

	case key.Matches(msg, a.keys.Down):
		a.setCursor(a.Cursor() + 1)
		return nil

	case key.Matches(msg, a.keys.Up):
		a.setCursor(a.Cursor() - 1)
		return nil

	case key.Matches(msg, a.keys.Bottom):
		a.setCursor(a.paneLen() - 1)
		return nil

	case key.Matches(msg, a.keys.Focus):
		if a.focusedPane == PaneSidebar {
			a.focusedPane = PaneList
		} else {
			a.focusedPane = PaneSidebar
		}
		return nil

	case key.Matches(msg, a.keys.Bookmarks):
		a.ctrl.Update(func(s *state.Store) { s.SetTab(state.TabBookmarks) })
		a.syncSearchInput()
		a.sync()
		return nil

	case key.Matches(msg, a.keys.MediaLog):
		a.ctrl.Update(func(s *state.Store) { s.SetTab(state.TabMediaLog) })
		a.syncSearchInput()
		a.sync()
		if !a.snap.mlLoaded {
			return a.run(a.ctrl.RefreshMediaLog)
		}
		return nil

	case key.Matches(msg, a.keys.Search):
		a.mode = ModeSearch
		a.syncSearchInput()
		a.searchInput.CursorEnd()
		return a.searchInput.Focus()

	case key.Matches(msg, a.keys.Find):
		a.find.Reset()
		a.find.Loading = true
		a.mode = ModeFind
		return tea.Batch(a.find.Input.Focus(), a.loadAllEntries())

	case key.Matches(msg, a.keys.Sort):
		tab := a.snap.tab
		a.ctrl.Update(func(s *state.Store) {
			if tab == state.TabMediaLog {
				s.SetMediaLogSortKey(project.NextSortKey(project.MediaLogSortKeys, s.MediaLogSortKey()))
			} else {
				s.SetSortKey(project.NextSortKey(project.BookmarkSortKeys, s.SortKey()))
			}
		})
		a.sync()
		return nil

	case key.Matches(msg, a.keys.Theme):
		ctrl := a.ctrl
		return a.run(func(context.Context) error {
			ctrl.ToggleTheme()
			return nil
		})

	case key.Matches(msg, a.keys.Display):
		mode := prefs.ViewList
		if a.snap.viewMode == prefs.ViewList {
			mode = prefs.ViewCard
		}
		a.ctrl.SetViewMode(mode)
		a.sync()
		return nil

	case key.Matches(msg, a.keys.Refresh):
		if a.snap.tab == state.TabMediaLog {
			return a.run(a.ctrl.RefreshMediaLog)
		}
		ctrl := a.ctrl
		return a.run(func(ctx context.Context) error {
			if err := ctrl.LoadAll(ctx); err != nil {
				return err
			}
			return ctrl.Refresh(ctx)
		})
	}

	if a.snap.tab == state.TabMediaLog {
		return a.handleMediaLogKey(msg)
	}
	return a.handleBookmarkKey(msg)
}

// clear backs out one level: selection first, then the search query.
func (a *App) clear() tea.Cmd {
	if a.snap.tab == state.TabBookmarks && len(a.snap.selected) > 0 {
		a.ctrl.ClearSelection()
		a.sync()
		return nil
	}
	tab := a.snap.tab
	a.ctrl.Update(func(s *state.Store) {
		if tab == state.TabMediaLog {
			s.SetMediaLogQuery("")
		} else {
			s.SetQuery("")
		}
	})
	a.searchInput.Reset()
	a.sync()
	return nil
}

// syncSearchInput loads the active tab's query into the search input.
func (a *App) syncSearchInput() {
	query := ""
	a.ctrl.Read(func(s *state.Store) {
		if s.Tab() == state.TabMediaLog {
			query = s.MediaLogQuery()
		} else {
			query = s.Query()
		}
	})
	a.searchInput.SetValue(query)
}

func (a *App) paneLen() int {
	switch {
	case a.snap.tab == state.TabMediaLog && a.focusedPane == PaneSidebar:
		return len(model.Categories)
	case a.snap.tab == state.TabMediaLog:
		return len(a.snap.mlItems)
	case a.focusedPane == PaneSidebar:
		return len(a.snap.sidebar)
	default:
		return len(a.snap.entries)
	}
}

func (a *App) setCursor(cursor int) {
	cursor = clamp(cursor, a.paneLen())
	switch {
	case a.snap.tab == state.TabMediaLog && a.focusedPane == PaneSidebar:
		a.categoryCursor = cursor
	case a.snap.tab == state.TabMediaLog:
		a.mlCursor = cursor
	case a.focusedPane == PaneSidebar:
		a.sidebarCursor = cursor
	default:
		a.listCursor = cursor
	}
}

// currentSidebarItem returns the sidebar item under the cursor.
func (a *App) currentSidebarItem() (SidebarItem, bool) {
	if a.sidebarCursor >= len(a.snap.sidebar) {
		return SidebarItem{}, false
	}
	return a.snap.sidebar[a.sidebarCursor], true
}

// currentEntry returns the entry under the list cursor.
func (a *App) currentEntry() (model.Bookmark, bool) {
	if a.listCursor >= len(a.snap.entries) {
		return model.Bookmark{}, false
	}
	return a.snap.entries[a.listCursor], true
}

// currentMediaLogItem returns the media-log item under the cursor.
func (a *App) currentMediaLogItem() (model.MediaLogItem, bool) {
	if a.mlCursor >= len(a.snap.mlItems) {
		return model.MediaLogItem{}, false
	}
	return a.snap.mlItems[a.mlCursor], true
}

func (a *App) handleBookmarkKey(msg tea.KeyMsg) tea.Cmd {
	if a.focusedPane == PaneSidebar {
		if cmd, ok := a.handleSidebarKey(msg); ok {
			return cmd
		}
	}

	switch {
	case key.Matches(msg, a.keys.NewFolder):
		a.openForm(ModeAddFolder)
		return nil

	case key.Matches(msg, a.keys.AddVideo):
		if !a.snap.canAdd {
			return a.run(func(context.Context) error { return a.ctrl.CheckAddTarget() })
		}
		a.openForm(ModeAddVideo)
		return nil

	case key.Matches(msg, a.keys.AddMedia):
		if !a.snap.canAdd {
			return a.run(func(context.Context) error { return a.ctrl.CheckAddTarget() })
		}
		a.openForm(ModeAddMedia)
		return nil
	}

	if a.focusedPane != PaneList {
		return nil
	}
	return a.handleEntryKey(msg)
}

// handleSidebarKey handles keys specific to the folder sidebar.
// ok is false when the key is not a sidebar key.
func (a *App) handleSidebarKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	item, found := a.currentSidebarItem()
	if !found {
		return nil, false
	}

	switch {
	case key.Matches(msg, a.keys.Open):
		a.listCursor = 0
		if item.IsFolder() {
			id := item.Row.ID
			return a.run(func(ctx context.Context) error { return a.ctrl.SelectFolder(ctx, id) }), true
		}
		k := item.Group.Key
		return a.run(func(ctx context.Context) error { return a.ctrl.SelectMerged(ctx, k) }), true

	case key.Matches(msg, a.keys.Select):
		if item.IsFolder() && item.Row.HasChildren {
			a.ctrl.ToggleCollapsed(item.Row.ID)
			a.sync()
		}
		return nil, true

	case key.Matches(msg, a.keys.Collapse):
		if item.IsFolder() && item.Row.HasChildren && !item.Row.Collapsed {
			a.ctrl.ToggleCollapsed(item.Row.ID)
			a.sync()
		}
		return nil, true

	case key.Matches(msg, a.keys.Expand):
		if item.IsFolder() && item.Row.HasChildren && item.Row.Collapsed {
			a.ctrl.ToggleCollapsed(item.Row.ID)
			a.sync()
		}
		return nil, true

	case key.Matches(msg, a.keys.Rename):
		if !item.IsFolder() {
			return nil, true
		}
		a.openForm(ModeRenameFolder)
		a.modal.EditID = item.Row.ID
		a.modal.NameInput.SetValue(item.Row.Name)
		a.modal.NameInput.CursorEnd()
		return nil, true

	case key.Matches(msg, a.keys.Delete):
		if !item.IsFolder() {
			return nil, true
		}
		id := item.Row.ID
		return a.run(func(ctx context.Context) error { return a.ctrl.DeleteFolder(ctx, id) }), true
	}
	return nil, false
}

// handleEntryKey handles keys acting on the entry list.
func (a *App) handleEntryKey(msg tea.KeyMsg) tea.Cmd {
	entry, found := a.currentEntry()
	hasSelection := len(a.snap.selected) > 0

	switch {
	case key.Matches(msg, a.keys.Select):
		if found {
			a.ctrl.Update(func(s *state.Store) { s.ToggleEntrySelected(entry.ID) })
			a.sync()
		}
		return nil

	case key.Matches(msg, a.keys.Delete):
		if hasSelection {
			return a.run(a.ctrl.BulkDelete)
		}
		if found {
			return a.run(func(ctx context.Context) error { return a.ctrl.DeleteEntry(ctx, entry.ID) })
		}
		return nil

	case key.Matches(msg, a.keys.Move):
		if !hasSelection && !found {
			return nil
		}
		a.move.Reset()
		if !hasSelection {
			a.move.EntryID = entry.ID
		}
		a.move.Loading = true
		a.mode = ModeMove
		return tea.Batch(a.move.FilterInput.Focus(), a.loadMoveTargets())
	}

	if !found {
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Open, a.keys.Browser):
		if entry.URL == "" {
			return nil
		}
		return a.openURL(entry.URL)

	case key.Matches(msg, a.keys.YankURL):
		if entry.URL == "" {
			return nil
		}
		return a.copyURL(entry.URL)

	case key.Matches(msg, a.keys.Subtitles):
		if entry.IsMedia() {
			return nil
		}
		a.openForm(ModeAttachSubtitles)
		a.modal.EditID = entry.ID
		return nil

	case key.Matches(msg, a.keys.ShowSubs):
		if !entry.HasSubtitles() {
			return nil
		}
		return a.loadSubtitles(entry.ID)

	case key.Matches(msg, a.keys.RemoveSubs):
		if !entry.HasSubtitles() {
			return nil
		}
		return a.run(func(ctx context.Context) error { return a.ctrl.RemoveSubtitles(ctx, entry.ID) })
	}
	return nil
}

func (a *App) handleMediaLogKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.PrevCategory, a.keys.NextCategory):
		delta := 1
		if key.Matches(msg, a.keys.PrevCategory) {
			delta = -1
		}
		n := len(model.Categories)
		idx := 0
		for i, c := range model.Categories {
			if c == a.snap.category {
				idx = i
			}
		}
		a.categoryCursor = (idx + delta + n) % n
		return a.selectCategory(model.Categories[a.categoryCursor])

	case key.Matches(msg, a.keys.AddVideo):
		a.openForm(ModeMediaLogAdd)
		return nil
	}

	if a.focusedPane == PaneSidebar {
		if key.Matches(msg, a.keys.Open) {
			return a.selectCategory(model.Categories[a.categoryCursor])
		}
		return nil
	}

	item, found := a.currentMediaLogItem()
	if !found {
		return nil
	}

	switch {
	case key.Matches(msg, a.keys.Status):
		return a.run(func(ctx context.Context) error { return a.ctrl.CycleMediaLogStatus(ctx, item.ID) })

	case key.Matches(msg, a.keys.Edit):
		a.openForm(ModeMediaLogEdit)
		a.modal.EditID = item.ID
		a.modal.TitleInput.SetValue(item.Title)
		a.modal.ProgressInput.SetValue(item.Progress)
		return nil

	case key.Matches(msg, a.keys.Delete):
		return a.run(func(ctx context.Context) error { return a.ctrl.DeleteMediaLogItem(ctx, item.ID) })
	}
	return nil
}

func (a *App) selectCategory(c model.Category) tea.Cmd {
	a.mlCursor = 0
	return a.run(func(ctx context.Context) error { return a.ctrl.SelectCategory(ctx, c) })
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
