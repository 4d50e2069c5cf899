package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/search"
	"github.com/nikbrunner/vodmarks/internal/tui/layout"
)

// Mode is the current interaction mode of the app.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeAddFolder
	ModeRenameFolder
	ModeAddVideo
	ModeAddMedia
	ModeMove
	ModeFind
	ModeMediaLogAdd
	ModeMediaLogEdit
	ModeAttachSubtitles
	ModeSubtitles
	ModeConfirm
	ModeHelp
)

// isForm reports whether the mode shows a text-input modal.
func (m Mode) isForm() bool {
	switch m {
	case ModeAddFolder, ModeRenameFolder, ModeAddVideo, ModeAddMedia,
		ModeMediaLogAdd, ModeMediaLogEdit, ModeAttachSubtitles:
		return true
	}
	return false
}

// Pane identifies the focused pane in normal mode.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneList
)

// MessageType styles the message line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

func newInput(placeholder string, limit, width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = limit
	input.Width = width
	return input
}

// ModalState holds the inputs of the add/edit modals.
type ModalState struct {
	NameInput     textinput.Model // folder name
	URLInput      textinput.Model // video URL
	TitleInput    textinput.Model // media entry or media-log title
	DateInput     textinput.Model // media entry date
	ProgressInput textinput.Model // media-log progress
	PathInput     textinput.Model // .srt file path
	Status        model.Status    // media-log status for new items
	EditID        model.ID        // folder, entry or media-log item being edited
	focus         int
}

// NewModalState creates a new ModalState with initialized inputs.
func NewModalState(cfg layout.LayoutConfig) ModalState {
	return ModalState{
		NameInput:     newInput("Folder name", cfg.Input.NameCharLimit, cfg.Input.StandardWidth),
		URLInput:      newInput("https://www.youtube.com/watch?v=...", cfg.Input.URLCharLimit, cfg.Input.StandardWidth),
		TitleInput:    newInput("Title", cfg.Input.NameCharLimit, cfg.Input.StandardWidth),
		DateInput:     newInput("YYYY-MM-DD", cfg.Input.DateCharLimit, cfg.Input.StandardWidth),
		ProgressInput: newInput("e.g. Ep 5, Ch 12", cfg.Input.ProgressCharLimit, cfg.Input.StandardWidth),
		PathInput:     newInput("~/subs/episode.srt", cfg.Input.PathCharLimit, cfg.Input.StandardWidth),
		Status:        model.StatusPlanToStart,
	}
}

// ResetInputs clears all modal inputs for a new modal session.
func (m *ModalState) ResetInputs() {
	m.NameInput.Reset()
	m.URLInput.Reset()
	m.TitleInput.Reset()
	m.DateInput.Reset()
	m.ProgressInput.Reset()
	m.PathInput.Reset()
	m.Status = model.StatusPlanToStart
	m.EditID = ""
	m.focus = 0
}

// fields returns the inputs shown by a form mode, in tab order.
func (m *ModalState) fields(mode Mode) []*textinput.Model {
	switch mode {
	case ModeAddFolder, ModeRenameFolder:
		return []*textinput.Model{&m.NameInput}
	case ModeAddVideo:
		return []*textinput.Model{&m.URLInput}
	case ModeAddMedia:
		return []*textinput.Model{&m.TitleInput, &m.DateInput}
	case ModeMediaLogAdd, ModeMediaLogEdit:
		return []*textinput.Model{&m.TitleInput, &m.ProgressInput}
	case ModeAttachSubtitles:
		return []*textinput.Model{&m.PathInput}
	}
	return nil
}

// focusField focuses input idx of the mode's fields and blurs the rest.
func (m *ModalState) focusField(mode Mode, idx int) {
	fields := m.fields(mode)
	if len(fields) == 0 {
		return
	}
	m.focus = (idx + len(fields)) % len(fields)
	for i, f := range fields {
		if i == m.focus {
			f.Focus()
		} else {
			f.Blur()
		}
	}
}

// focused returns the focused input of the mode, or nil.
func (m *ModalState) focused(mode Mode) *textinput.Model {
	fields := m.fields(mode)
	if len(fields) == 0 {
		return nil
	}
	return fields[m.focus%len(fields)]
}

// MoveState holds state for the move-to-folder picker.
type MoveState struct {
	FilterInput textinput.Model
	Targets     []model.FolderRef
	Filtered    []search.FolderResult
	FolderIdx   int
	EntryID     model.ID // single entry; empty means the current selection
	Loading     bool
}

// NewMoveState creates a new MoveState with initialized input.
func NewMoveState(cfg layout.LayoutConfig) MoveState {
	return MoveState{
		FilterInput: newInput("Filter folders...", cfg.Input.QueryCharLimit, cfg.Input.StandardWidth),
	}
}

// Reset clears the move state for a new session.
func (m *MoveState) Reset() {
	m.FilterInput.Reset()
	m.Targets = nil
	m.Filtered = nil
	m.FolderIdx = 0
	m.EntryID = ""
	m.Loading = false
}

// Bulk reports whether the move applies to the selection.
func (m *MoveState) Bulk() bool {
	return m.EntryID == ""
}

// applyFilter re-runs the folder filter and clamps the cursor.
func (m *MoveState) applyFilter() {
	m.Filtered = search.FuzzySearchFolders(m.Targets, m.FilterInput.Value())
	if m.FolderIdx >= len(m.Filtered) {
		m.FolderIdx = len(m.Filtered) - 1
	}
	if m.FolderIdx < 0 {
		m.FolderIdx = 0
	}
}

// FindState holds state for the find-anywhere picker over all entries.
type FindState struct {
	Input   textinput.Model
	All     []model.Bookmark
	Results []search.SearchResult
	Cursor  int
	Loading bool
}

// NewFindState creates a new FindState with initialized input.
func NewFindState(cfg layout.LayoutConfig) FindState {
	return FindState{
		Input: newInput("Find in all folders...", cfg.Input.QueryCharLimit, cfg.Input.StandardWidth),
	}
}

// Reset clears the find state for a new session.
func (f *FindState) Reset() {
	f.Input.Reset()
	f.All = nil
	f.Results = nil
	f.Cursor = 0
	f.Loading = false
}

// applyQuery re-runs the fuzzy search and clamps the cursor.
func (f *FindState) applyQuery() {
	f.Results = search.FuzzySearchBookmarks(f.All, f.Input.Value())
	if f.Cursor >= len(f.Results) {
		f.Cursor = len(f.Results) - 1
	}
	if f.Cursor < 0 {
		f.Cursor = 0
	}
}

// ConfirmState holds a pending confirmation request.
type ConfirmState struct {
	Title   string
	Message string
	reply   chan<- bool
	prev    Mode
}

// answer sends the user's decision once.
func (c *ConfirmState) answer(ok bool) {
	if c.reply != nil {
		c.reply <- ok
		c.reply = nil
	}
}

// SubtitleState holds the subtitle viewer.
type SubtitleState struct {
	Name     string
	Viewport viewport.Model
}
