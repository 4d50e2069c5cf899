// Package picker is a small standalone TUI for choosing one bookmark from
// quick-search results.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// Action is what the user asked to do with the chosen bookmark.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionCopy
)

// linesPerResult is the height of one rendered result.
const linesPerResult = 2

// Picker is a simple TUI for selecting from search results.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	offset    int
	action    Action
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.SearchResult, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.scroll()
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.results) == 0 {
				return p, nil
			}
			p.action = ActionOpen
			return p, tea.Quit

		case tea.KeyDown:
			p.move(1)
			return p, nil

		case tea.KeyUp:
			p.move(-1)
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.move(1)
				return p, nil
			case "k":
				p.move(-1)
				return p, nil
			case "y":
				if len(p.results) == 0 {
					return p, nil
				}
				p.action = ActionCopy
				return p, tea.Quit
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.results) {
		return
	}
	p.cursor = next
	p.scroll()
}

// visible returns how many results fit below the header and above the footer.
func (p Picker) visible() int {
	n := (p.height - 5) / linesPerResult
	if n < 1 {
		return 1
	}
	return n
}

// scroll keeps the cursor inside the visible window.
func (p *Picker) scroll() {
	n := p.visible()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+n {
		p.offset = p.cursor - n + 1
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	end := min(p.offset+p.visible(), len(p.results))
	for i := p.offset; i < end; i++ {
		bm := p.results[i].Bookmark
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(bm.DisplayTitle())))
		b.WriteString(fmt.Sprintf("   %s\n", metaStyle.Render(describe(bm))))
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("j/k: move  Enter: open  y: copy URL  q/Esc: cancel"))

	return b.String()
}

// describe renders the second line of a result: folder, length and URL.
func describe(bm *model.Bookmark) string {
	var parts []string
	if bm.FolderBreadcrumb != "" {
		parts = append(parts, bm.FolderBreadcrumb)
	}
	if bm.DurationSeconds > 0 {
		parts = append(parts, model.FormatDuration(bm.DurationSeconds))
	}
	if bm.URL != "" {
		parts = append(parts, bm.URL)
	}
	return strings.Join(parts, "  ·  ")
}

// SelectedBookmark returns the selected bookmark, or nil if cancelled.
func (p Picker) SelectedBookmark() *model.Bookmark {
	if p.cancelled || p.action == ActionNone {
		return nil
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Bookmark
	}
	return nil
}

// Action returns what to do with the selected bookmark.
func (p Picker) Action() Action {
	if p.cancelled {
		return ActionNone
	}
	return p.action
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
