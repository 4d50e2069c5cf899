package layout

// Split holds the widths of the sidebar and the entry list.
type Split struct {
	Sidebar int
	List    int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateSplit divides the terminal width between the sidebar and the list.
// The list never drops below MinListWidth; the sidebar gives way first.
func CalculateSplit(terminalWidth int, cfg PaneConfig) Split {
	available := terminalWidth - cfg.WidthOffset

	sidebar := terminalWidth * cfg.SidebarWidthPercent / 100
	if sidebar < cfg.MinSidebarWidth {
		sidebar = cfg.MinSidebarWidth
	}
	if sidebar > cfg.MaxSidebarWidth {
		sidebar = cfg.MaxSidebarWidth
	}

	list := available - sidebar
	if list < cfg.MinListWidth {
		list = cfg.MinListWidth
		sidebar = available - list
		if sidebar < 1 {
			sidebar = 1
		}
	}

	return Split{Sidebar: sidebar, List: list}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	width := paneWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateVisibleHeight computes the visible line count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateVisibleCount computes how many entries fit when each takes linesPerItem lines.
func CalculateVisibleCount(visibleHeight, linesPerItem int) int {
	if linesPerItem < 1 {
		linesPerItem = 1
	}
	count := visibleHeight / linesPerItem
	if count < 1 {
		return 1
	}
	return count
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
