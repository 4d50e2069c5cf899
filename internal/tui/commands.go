package tui

import (
	"bytes"
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/vodmarks/internal/model"
)

// noticeTTL is how long a message stays on the message line.
const noticeTTL = 4 * time.Second

// noticeMsg shows a message on the message line.
type noticeMsg struct {
	kind MessageType
	text string
}

// clearNoticeMsg hides the message with the given sequence number.
type clearNoticeMsg struct{ seq int }

// confirmRequestMsg opens the confirm modal on behalf of a running action.
type confirmRequestMsg struct {
	title   string
	message string
	reply   chan<- bool
}

// actionDoneMsg reports a finished controller action. The store has
// already been updated, so the app only re-reads it.
type actionDoneMsg struct {
	err   error
	form  Mode     // form to close on success, ModeNormal for none
	focus model.ID // entry to put the cursor on, if present
}

// moveTargetsMsg delivers the folders for the move picker.
type moveTargetsMsg struct{ targets []model.FolderRef }

// allEntriesMsg delivers every entry for the find picker.
type allEntriesMsg struct {
	list []model.Bookmark
	err  error
}

// subtitlesMsg delivers downloaded subtitles for the viewer.
type subtitlesMsg struct {
	name    string
	content string
	err     error
}

// run executes a controller action off the update loop.
func (a App) run(fn func(ctx context.Context) error) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: fn(ctx)}
	}
}

// submit executes a form action; the form closes if it succeeds.
func (a App) submit(form Mode, fn func(ctx context.Context) error) tea.Cmd {
	ctx := a.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: fn(ctx), form: form}
	}
}

// jump opens the folder of an entry and puts the cursor on it.
func (a App) jump(entry model.Bookmark) tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: ctrl.SelectFolder(ctx, entry.FolderID), focus: entry.ID}
	}
}

func (a App) loadMoveTargets() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		return moveTargetsMsg{targets: ctrl.MoveTargets(ctx)}
	}
}

func (a App) loadAllEntries() tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		list, err := ctrl.AllBookmarks(ctx)
		return allEntriesMsg{list: list, err: err}
	}
}

func (a App) loadSubtitles(id model.ID) tea.Cmd {
	ctrl, ctx := a.ctrl, a.ctx
	return func() tea.Msg {
		var buf bytes.Buffer
		name, err := ctrl.FetchSubtitles(ctx, id, &buf)
		return subtitlesMsg{name: name, content: buf.String(), err: err}
	}
}

// copyURL copies a URL to the clipboard and reports the outcome.
func (a App) copyURL(url string) tea.Cmd {
	write := a.clipboard
	return func() tea.Msg {
		if err := write(url); err != nil {
			a.logger.Sugar().Warnf("clipboard unavailable: %s", err.Error())
			return noticeMsg{kind: MessageError, text: "Clipboard unavailable"}
		}
		return noticeMsg{kind: MessageSuccess, text: "Copied URL"}
	}
}

// openURL opens a URL in the browser and reports failures.
func (a App) openURL(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return noticeMsg{kind: MessageError, text: "Could not open browser"}
		}
		return nil
	}
}

func clearNoticeAfter(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}
