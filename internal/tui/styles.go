package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/vodmarks/internal/prefs"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Modal        lipgloss.Style
	Title        lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style // cursor row
	ItemMarked   lipgloss.Style // multi-selected entry
	ItemActive   lipgloss.Style // sidebar row of the open view
	Meta         lipgloss.Style
	URL          lipgloss.Style
	Badge        lipgloss.Style
	Count        lipgloss.Style
	Group        lipgloss.Style // media-log status heading
	Empty        lipgloss.Style
	Help         lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
	BulkBar      lipgloss.Style
	Info         lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
}

// palette is the set of colors a theme is built from.
type palette struct {
	primary lipgloss.Color
	subtle  lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	onFill  lipgloss.Color
	marked  lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

// Industrial design: grayscale with a single desaturated teal accent.
var (
	darkPalette = palette{
		primary: "#A0A0A0",
		subtle:  "#606060",
		accent:  "#5F8787",
		border:  "#505050",
		onFill:  "#1A1A1A",
		marked:  "#3A4A4A",
		success: "#66CC66",
		danger:  "#FF6666",
	}
	lightPalette = palette{
		primary: "#505050",
		subtle:  "#888888",
		accent:  "#4A7070",
		border:  "#888888",
		onFill:  "#F5F5F5",
		marked:  "#D5E0E0",
		success: "#338833",
		danger:  "#CC3333",
	}
)

// DefaultStyles returns the dark theme.
func DefaultStyles() Styles {
	return ThemeStyles(prefs.ThemeDark)
}

// ThemeStyles returns the styles for a theme.
func ThemeStyles(theme prefs.Theme) Styles {
	p := darkPalette
	if theme == prefs.ThemeLight {
		p = lightPalette
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Tab: lipgloss.NewStyle().
			Foreground(p.subtle).
			PaddingRight(2),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			PaddingRight(2),

		Item: lipgloss.NewStyle().
			Foreground(p.primary),

		ItemSelected: lipgloss.NewStyle().
			Background(p.accent).
			Foreground(p.onFill),

		ItemMarked: lipgloss.NewStyle().
			Background(p.marked).
			Foreground(p.primary),

		ItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Meta: lipgloss.NewStyle().
			Foreground(p.subtle),

		URL: lipgloss.NewStyle().
			Foreground(p.subtle).
			Italic(true),

		Badge: lipgloss.NewStyle().
			Foreground(p.accent),

		Count: lipgloss.NewStyle().
			Foreground(p.subtle),

		Group: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle),

		Help: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(p.accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),

		BulkBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Info: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.success),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.danger),
	}
}
