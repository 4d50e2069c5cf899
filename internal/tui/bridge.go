package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Bridge carries controller callbacks into the running program.
// It implements both app.Confirmer and app.Notifier. Until a program is
// attached, notices are dropped and confirmations are declined.
type Bridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// NewBridge creates a detached bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach routes messages to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.SetSend(p.Send)
}

// SetSend routes messages to send. A nil send detaches the bridge.
func (b *Bridge) SetSend(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

func (b *Bridge) post(msg tea.Msg) bool {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send == nil {
		return false
	}
	send(msg)
	return true
}

// Info implements app.Notifier.
func (b *Bridge) Info(msg string) { b.post(noticeMsg{kind: MessageInfo, text: msg}) }

// Success implements app.Notifier.
func (b *Bridge) Success(msg string) { b.post(noticeMsg{kind: MessageSuccess, text: msg}) }

// Error implements app.Notifier.
func (b *Bridge) Error(msg string) { b.post(noticeMsg{kind: MessageError, text: msg}) }

// Confirm implements app.Confirmer. It shows a confirm modal and blocks
// until the user answers or ctx is done.
func (b *Bridge) Confirm(ctx context.Context, title, message string) bool {
	reply := make(chan bool, 1)
	if !b.post(confirmRequestMsg{title: title, message: message, reply: reply}) {
		return false
	}
	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}
