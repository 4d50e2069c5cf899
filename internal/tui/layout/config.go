package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + tab header (1) + pane borders (2) + help bar (2) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// SidebarWidthPercent is the folder sidebar share of the terminal width.
	SidebarWidthPercent int

	// MinSidebarWidth and MaxSidebarWidth clamp the sidebar width.
	MinSidebarWidth int
	MaxSidebarWidth int

	// MinListWidth is the narrowest the entry list may get.
	MinListWidth int

	// WidthOffset is subtracted from the terminal width before splitting.
	// Accounts for app padding (4) and the borders of both panes (4).
	WidthOffset int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int

	// IndentWidth is the per-depth indent of sidebar rows.
	IndentWidth int

	// CardHeight is the line count of one entry in card mode, including the gap.
	CardHeight int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// LargeWidthPercent is used for pickers and the subtitle viewer.
	LargeWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// MoveMaxVisible: max folders shown in the move picker.
	MoveMaxVisible int

	// FindMaxVisible: max results shown in the find-anywhere picker.
	FindMaxVisible int

	// SubtitleHeight: visible lines of the subtitle viewer.
	SubtitleHeight int

	// HelpColumnWidth: width of each help overlay column.
	HelpColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit     int
	URLCharLimit      int
	QueryCharLimit    int
	DateCharLimit     int
	ProgressCharLimit int
	PathCharLimit     int

	// StandardWidth is the display width of every modal input.
	StandardWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:     6, // app padding (1) + tab header (1) + pane borders (2) + help bar (2)
			MinHeight:           5,
			SidebarWidthPercent: 30,
			MinSidebarWidth:     24,
			MaxSidebarWidth:     40,
			MinListWidth:        30,
			WidthOffset:         8,
			ContentPadding:      2,
			IndentWidth:         2,
			CardHeight:          4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			LargeWidthPercent:   60,
			MinWidth:            50,
			MaxWidth:            90,
			MoveMaxVisible:      8,
			FindMaxVisible:      10,
			SubtitleHeight:      15,
			HelpColumnWidth:     24,
		},
		Input: InputConfig{
			NameCharLimit:     100,
			URLCharLimit:      500,
			QueryCharLimit:    100,
			DateCharLimit:     10,
			ProgressCharLimit: 50,
			PathCharLimit:     1024,
			StandardWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "…",
		},
	}
}
