package tui

import (
	"strings"

	"github.com/nikbrunner/vodmarks/internal/state"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for bottom bar: "j/k:move tab:pane"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, tab, etc.)
	Edit   []Hint // Edit hints (a, d, m, etc.)
	Action []Hint // Action hints (Enter, /, etc.)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		if a.snap.tab == state.TabMediaLog {
			return a.getMediaLogHints()
		}
		if a.focusedPane == PaneSidebar {
			return a.getSidebarHints()
		}
		return a.getListHints()
	case ModeSearch:
		return HintSet{
			Nav:    []Hint{{Key: "type", Desc: "filter"}},
			System: []Hint{{Key: "Enter/Esc", Desc: "done"}},
		}
	case ModeMove, ModeFind:
		return HintSet{
			Nav:    []Hint{{Key: "↑/↓", Desc: "move"}, {Key: "type", Desc: "filter"}},
			Action: []Hint{{Key: "Enter", Desc: "select"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case ModeMediaLogAdd:
		return HintSet{
			Nav:    []Hint{{Key: "Tab", Desc: "next field"}},
			Action: []Hint{{Key: "Enter", Desc: "save"}, {Key: "ctrl+s", Desc: "status"}},
			System: []Hint{{Key: "Esc", Desc: "cancel"}},
		}
	case ModeConfirm:
		return HintSet{
			Action: []Hint{{Key: "Enter/y", Desc: "confirm"}},
			System: []Hint{{Key: "Esc/n", Desc: "cancel"}},
		}
	case ModeSubtitles:
		return HintSet{
			Nav:    []Hint{{Key: "j/k", Desc: "scroll"}},
			System: []Hint{{Key: "Esc", Desc: "close"}},
		}
	case ModeHelp:
		// Help overlay covers screen, minimal hints
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	}
	if a.mode.isForm() {
		return a.getFormHints()
	}
	return HintSet{}
}

// getSidebarHints returns hints for the focused folder sidebar.
func (a App) getSidebarHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "h/l", Desc: "fold"},
			{Key: "tab", Desc: "list"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "open"},
			{Key: "f", Desc: "find"},
		},
		Edit: []Hint{
			{Key: "n", Desc: "new"},
			{Key: "r", Desc: "rename"},
			{Key: "d", Desc: "del"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// getListHints returns hints for the focused entry list.
func (a App) getListHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "tab", Desc: "folders"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "open"},
			{Key: "/", Desc: "filter"},
			{Key: "o", Desc: "sort"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
	if len(a.snap.selected) > 0 {
		hints.Edit = []Hint{
			{Key: "m", Desc: "move sel"},
			{Key: "d", Desc: "del sel"},
			{Key: "Esc", Desc: "clear"},
		}
		return hints
	}
	hints.Edit = []Hint{
		{Key: "a", Desc: "add"},
		{Key: "v", Desc: "select"},
		{Key: "m", Desc: "move"},
		{Key: "d", Desc: "del"},
	}
	return hints
}

// getMediaLogHints returns hints for the media log tab.
func (a App) getMediaLogHints() HintSet {
	return HintSet{
		Nav: []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "[/]", Desc: "category"},
		},
		Action: []Hint{
			{Key: "c", Desc: "status"},
			{Key: "/", Desc: "filter"},
		},
		Edit: []Hint{
			{Key: "a", Desc: "add"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "del"},
		},
		System: []Hint{
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// getFormHints returns hints shared by the text-input modals.
func (a App) getFormHints() HintSet {
	hints := HintSet{
		Action: []Hint{{Key: "Enter", Desc: "save"}},
		System: []Hint{{Key: "Esc", Desc: "cancel"}},
	}
	if len(a.modal.fields(a.mode)) > 1 {
		hints.Nav = []Hint{{Key: "Tab", Desc: "next field"}}
	}
	return hints
}

// getGlobalHints returns hints that apply everywhere in normal mode.
func (a App) getGlobalHints() []Hint {
	return []Hint{
		{Key: "1/2", Desc: "tabs"},
		{Key: "t", Desc: "theme"},
		{Key: "V", Desc: "display"},
		{Key: "R", Desc: "refresh"},
	}
}
