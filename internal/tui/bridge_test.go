package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/vodmarks/internal/tui/layout"
)

func TestBridge_DetachedDeclines(t *testing.T) {
	b := NewBridge()

	assert.Check(t, !b.Confirm(context.Background(), "Delete", "sure?"))
	b.Info("dropped") // must not block or panic
}

func TestBridge_ConfirmWaitsForReply(t *testing.T) {
	b := NewBridge()
	requests := make(chan confirmRequestMsg, 1)
	b.SetSend(func(msg tea.Msg) {
		if req, ok := msg.(confirmRequestMsg); ok {
			requests <- req
		}
	})

	result := make(chan bool, 1)
	go func() { result <- b.Confirm(context.Background(), "Delete Entry", "Are you sure?") }()

	req := <-requests
	assert.Check(t, is.Equal(req.title, "Delete Entry"))
	req.reply <- true

	assert.Check(t, <-result)
}

func TestBridge_ConfirmCancelled(t *testing.T) {
	b := NewBridge()
	b.SetSend(func(tea.Msg) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Check(t, !b.Confirm(ctx, "Delete", "sure?"))
}

func TestBridge_Notices(t *testing.T) {
	b := NewBridge()
	var got []noticeMsg
	b.SetSend(func(msg tea.Msg) { got = append(got, msg.(noticeMsg)) })

	b.Info("Fetching metadata...")
	b.Success("VOD added successfully!")
	b.Error("Failed to add VOD.")

	want := []noticeMsg{
		{kind: MessageInfo, text: "Fetching metadata..."},
		{kind: MessageSuccess, text: "VOD added successfully!"},
		{kind: MessageError, text: "Failed to add VOD."},
	}
	assert.Assert(t, is.Len(got, len(want)))
	for i := range want {
		assert.Check(t, is.Equal(got[i], want[i]))
	}
}

func TestConfirmState_AnswersOnce(t *testing.T) {
	reply := make(chan bool, 1)
	c := ConfirmState{reply: reply}

	c.answer(true)
	c.answer(false)

	assert.Check(t, <-reply)
	assert.Check(t, is.Len(reply, 0))
}

func TestModalState_FocusCycles(t *testing.T) {
	m := NewModalState(layout.DefaultConfig())

	m.focusField(ModeAddMedia, 0)
	assert.Check(t, m.TitleInput.Focused())
	m.focusField(ModeAddMedia, 1)
	assert.Check(t, m.DateInput.Focused())
	assert.Check(t, !m.TitleInput.Focused())
	m.focusField(ModeAddMedia, 2)
	assert.Check(t, m.TitleInput.Focused())
	m.focusField(ModeAddMedia, -1)
	assert.Check(t, m.DateInput.Focused())
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Check(t, is.Equal(expandHome("~/subs/a.srt"), "/home/tester/subs/a.srt"))
	assert.Check(t, is.Equal(expandHome(" /tmp/a.srt "), "/tmp/a.srt"))
	assert.Check(t, is.Equal(expandHome("~other/a.srt"), "~other/a.srt"))
}
