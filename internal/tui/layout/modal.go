package layout

// Width returns the modal width for a terminal: percent of its width, held
// within [MinWidth, MaxWidth] and never closer than two columns to either edge.
func (c ModalConfig) Width(terminalWidth, percent int) int {
	width := min(max(terminalWidth*percent/100, c.MinWidth), c.MaxWidth)
	return max(1, min(width, terminalWidth-4))
}

// ListWindow returns the slice bounds of a picker list to draw.
// The list scrolls only once cursor moves past the last visible row.
func ListWindow(maxVisible, cursor, total int) (start, end int) {
	if total <= maxVisible {
		return 0, total
	}
	start = max(0, cursor-maxVisible+1)
	return start, min(start+maxVisible, total)
}
