package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/vodmarks/internal/model"
	"github.com/nikbrunner/vodmarks/internal/prefs"
	"github.com/nikbrunner/vodmarks/internal/project"
	"github.com/nikbrunner/vodmarks/internal/state"
	"github.com/nikbrunner/vodmarks/internal/tui/layout"
)

// renderView creates the complete two-pane view.
func (a App) renderView() string {
	switch {
	case a.mode == ModeHelp:
		return a.renderHelpOverlay()
	case a.mode == ModeConfirm:
		return a.place(a.renderConfirm())
	case a.mode == ModeMove:
		return a.place(a.renderMovePicker())
	case a.mode == ModeFind:
		return a.place(a.renderFindPicker())
	case a.mode == ModeSubtitles:
		return a.place(a.renderSubtitles())
	case a.mode.isForm():
		return a.place(a.renderForm())
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	split := layout.CalculateSplit(a.width, a.layoutConfig.Pane)

	var left, right string
	if a.snap.tab == state.TabMediaLog {
		left = a.renderCategoryPane(split.Sidebar, paneHeight)
		right = a.renderMediaLogPane(split.List, paneHeight)
	} else {
		left = a.renderSidebar(split.Sidebar, paneHeight)
		right = a.renderListPane(split.List, paneHeight)
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderTabs(), columns, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// place centers a modal on the screen.
func (a App) place(modal string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// paneStyle returns the border style for a pane of the given width and height.
func (a App) paneStyle(pane Pane, width, height int) lipgloss.Style {
	style := a.styles.Pane
	if a.focusedPane == pane && (a.mode == ModeNormal || a.mode == ModeSearch) {
		style = a.styles.PaneActive
	}
	return style.Width(width).Height(height)
}

// renderTabs renders the tab header.
func (a App) renderTabs() string {
	tabs := []struct {
		key   string
		label string
		tab   state.Tab
	}{
		{"1", "Bookmarks", state.TabBookmarks},
		{"2", "Media Log", state.TabMediaLog},
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("vodmarks") + "  ")
	for _, t := range tabs {
		style := a.styles.Tab
		if a.snap.tab == t.tab {
			style = a.styles.TabActive
		}
		b.WriteString(style.Render(t.key + " " + t.label))
	}
	return b.String()
}

// window returns the slice of lines that keeps cursorLine visible.
func window(lines []string, cursorLine, height int) []string {
	offset := layout.CalculateViewportOffset(cursorLine, len(lines), height)
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return lines[offset:end]
}

// renderSidebar renders the folder tree followed by the merged groups.
func (a App) renderSidebar(width, height int) string {
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	focused := a.focusedPane == PaneSidebar

	var lines []string
	cursorLine := 0
	dividerDone := false
	for i, item := range a.snap.sidebar {
		if !item.IsFolder() && !dividerDone {
			lines = append(lines, "", a.styles.Meta.Render("── Merged ──"))
			dividerDone = true
		}
		if i == a.sidebarCursor {
			cursorLine = len(lines)
		}
		lines = append(lines, a.renderSidebarItem(item, focused && i == a.sidebarCursor, itemWidth))
	}

	if len(lines) == 0 {
		lines = []string{a.styles.Empty.Render("Loading folders...")}
	}

	content := strings.Join(window(lines, cursorLine, height), "\n")
	return a.paneStyle(PaneSidebar, width, height).Render(content)
}

// renderSidebarItem renders one folder row or merged group.
func (a App) renderSidebarItem(item SidebarItem, isCursor bool, maxWidth int) string {
	var prefix string
	if item.IsFolder() {
		prefix = strings.Repeat(" ", item.Row.Depth*a.layoutConfig.Pane.IndentWidth)
		switch {
		case item.Row.HasChildren && item.Row.Collapsed:
			prefix += "▸ "
		case item.Row.HasChildren:
			prefix += "▾ "
		default:
			prefix += "  "
		}
	} else {
		prefix = "≡ "
	}
	suffix := " " + strconv.Itoa(item.Count())

	line, _ := layout.TruncateWithPrefixSuffix(item.Title(), maxWidth, prefix, suffix, a.layoutConfig.Text)

	switch {
	case isCursor:
		return a.styles.ItemSelected.Render(layout.PadRight(line, maxWidth))
	case item.Active:
		return a.styles.ItemActive.Render(line)
	default:
		return a.styles.Item.Render(line)
	}
}

// renderListPane renders the entry list of the active view.
func (a App) renderListPane(width, height int) string {
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	var header []string
	title := a.snap.title
	if title == "" {
		title = "vodmarks"
	}
	meta := fmt.Sprintf(" %d · %s", len(a.snap.entries), a.snap.sortKey.Label())
	titleLine, _ := layout.TruncateText(a.styles.Title.Render(title)+a.styles.Count.Render(meta), itemWidth, a.layoutConfig.Text)
	header = append(header, titleLine)

	switch {
	case a.mode == ModeSearch:
		header = append(header, a.searchInput.View())
	case a.snap.query != "":
		header = append(header, a.styles.Meta.Render("filter: "+a.snap.query))
	default:
		header = append(header, "")
	}

	if n := len(a.snap.selected); n > 0 {
		bar := fmt.Sprintf("%d selected · m move · d delete · esc clear", n)
		header = append(header, a.styles.BulkBar.Render(layout.JoinFitting([]string{bar}, "", itemWidth, a.layoutConfig.Text)))
	}

	body := a.renderEntries(itemWidth, layout.CalculateVisibleHeight(height, len(header)))
	content := strings.Join(append(header, body), "\n")
	return a.paneStyle(PaneList, width, height).Render(content)
}

// renderEntries renders the visible part of the entry list.
func (a App) renderEntries(width, height int) string {
	switch {
	case a.snap.view.Kind == state.ViewNone:
		return a.styles.Empty.Render("Select a folder")
	case a.snap.loading:
		return a.styles.Empty.Render("Loading...")
	case len(a.snap.entries) == 0 && a.snap.query != "":
		return a.styles.Empty.Render("No matches")
	case len(a.snap.entries) == 0:
		return a.styles.Empty.Render("No entries")
	}

	perItem := 1
	if a.snap.viewMode == prefs.ViewCard {
		perItem = a.layoutConfig.Pane.CardHeight
	}
	visible := layout.CalculateVisibleCount(height, perItem)
	offset := layout.CalculateViewportOffset(a.listCursor, len(a.snap.entries), visible)
	focused := a.focusedPane == PaneList

	var lines []string
	for i := offset; i < len(a.snap.entries) && i < offset+visible; i++ {
		entry := a.snap.entries[i]
		isCursor := focused && i == a.listCursor
		if a.snap.viewMode == prefs.ViewCard {
			lines = append(lines, a.renderCard(entry, isCursor, width)...)
		} else {
			lines = append(lines, a.renderRow(entry, isCursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

// entryMarker returns the selection marker for an entry.
func (a App) entryMarker(entry model.Bookmark) string {
	if a.snap.selected[entry.ID] {
		return "● "
	}
	return "  "
}

// styleEntryLine applies cursor or selection styling to a title line.
func (a App) styleEntryLine(entry model.Bookmark, line string, isCursor bool, width int) string {
	switch {
	case isCursor:
		return a.styles.ItemSelected.Render(layout.PadRight(line, width))
	case a.snap.selected[entry.ID]:
		return a.styles.ItemMarked.Render(line)
	default:
		return a.styles.Item.Render(line)
	}
}

// entryMeta lists the secondary details of an entry.
func (a App) entryMeta(entry model.Bookmark) []string {
	var parts []string
	if a.snap.view.Kind == state.ViewMerged && entry.FolderBreadcrumb != "" {
		parts = append(parts, entry.FolderBreadcrumb)
	}
	if entry.IsMedia() {
		parts = append(parts, "Media")
	} else if entry.Uploader != "" {
		parts = append(parts, entry.Uploader)
	}
	if entry.UploadDate != "" {
		parts = append(parts, entry.UploadDate)
	}
	if entry.DurationSeconds > 0 {
		parts = append(parts, model.FormatDuration(entry.DurationSeconds))
	}
	return parts
}

// renderCard renders an entry as a multi-line card.
func (a App) renderCard(entry model.Bookmark, isCursor bool, width int) []string {
	cfg := a.layoutConfig.Text
	titleLine, _ := layout.TruncateWithPrefixSuffix(entry.DisplayTitle(), width, a.entryMarker(entry), "", cfg)

	metaLine := layout.JoinFitting(a.entryMeta(entry), " · ", width-2, cfg)

	var badge string
	if entry.HasSubtitles() {
		badge = " [SRT]"
	}
	url := entry.URL
	if url == "" {
		url = "no link"
	}
	urlLine, _ := layout.TruncateWithPrefixSuffix(url, width-2, "", badge, cfg)
	if badge != "" && strings.HasSuffix(urlLine, badge) {
		urlLine = a.styles.URL.Render(strings.TrimSuffix(urlLine, badge)) + a.styles.Badge.Render(badge)
	} else {
		urlLine = a.styles.URL.Render(urlLine)
	}

	lines := []string{
		a.styleEntryLine(entry, titleLine, isCursor, width),
		"  " + a.styles.Meta.Render(metaLine),
		"  " + urlLine,
	}
	for len(lines) < a.layoutConfig.Pane.CardHeight {
		lines = append(lines, "")
	}
	return lines
}

// renderRow renders an entry as a single line.
func (a App) renderRow(entry model.Bookmark, isCursor bool, width int) string {
	var suffix string
	if entry.HasSubtitles() {
		suffix += " [SRT]"
	}
	if entry.DurationSeconds > 0 {
		suffix += "  " + model.FormatDuration(entry.DurationSeconds)
	} else if entry.IsMedia() && entry.UploadDate != "" {
		suffix += "  " + entry.UploadDate
	}
	line, _ := layout.TruncateWithPrefixSuffix(entry.DisplayTitle(), width, a.entryMarker(entry), suffix, a.layoutConfig.Text)
	return a.styleEntryLine(entry, line, isCursor, width)
}

// renderCategoryPane renders the media-log categories.
func (a App) renderCategoryPane(width, height int) string {
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	focused := a.focusedPane == PaneSidebar

	lines := []string{a.styles.Title.Render("Categories"), ""}
	cursorLine := 0
	for i, c := range model.Categories {
		if i == a.categoryCursor {
			cursorLine = len(lines)
		}
		line, _ := layout.TruncateText("  "+c.Label(), itemWidth, a.layoutConfig.Text)
		switch {
		case focused && i == a.categoryCursor:
			lines = append(lines, a.styles.ItemSelected.Render(layout.PadRight(line, itemWidth)))
		case c == a.snap.category:
			lines = append(lines, a.styles.ItemActive.Render(line))
		default:
			lines = append(lines, a.styles.Item.Render(line))
		}
	}
	return a.paneStyle(PaneSidebar, width, height).Render(strings.Join(window(lines, cursorLine, height), "\n"))
}

// renderMediaLogPane renders the active category grouped by status.
func (a App) renderMediaLogPane(width, height int) string {
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	meta := fmt.Sprintf(" %d · %s", len(a.snap.mlItems), a.snap.mlSortKey.Label())
	titleLine, _ := layout.TruncateText(a.styles.Title.Render(a.snap.category.Label())+a.styles.Count.Render(meta), itemWidth, a.layoutConfig.Text)
	header := []string{titleLine}
	switch {
	case a.mode == ModeSearch:
		header = append(header, a.searchInput.View())
	case a.snap.mlQuery != "":
		header = append(header, a.styles.Meta.Render("filter: "+a.snap.mlQuery))
	default:
		header = append(header, "")
	}

	visible := layout.CalculateVisibleHeight(height, len(header))
	var body string
	switch {
	case !a.snap.mlLoaded:
		body = a.styles.Empty.Render("Loading...")
	case len(a.snap.mlItems) == 0 && a.snap.mlQuery != "":
		body = a.styles.Empty.Render("No matches")
	case len(a.snap.mlItems) == 0:
		body = a.styles.Empty.Render("Nothing logged yet")
	default:
		body = strings.Join(a.renderStatusGroups(a.snap.mlGroups, itemWidth, visible), "\n")
	}

	content := strings.Join(append(header, body), "\n")
	return a.paneStyle(PaneList, width, height).Render(content)
}

// renderStatusGroups renders the status headings and their items.
func (a App) renderStatusGroups(groups []project.StatusGroup, width, height int) []string {
	focused := a.focusedPane == PaneList

	var lines []string
	cursorLine := 0
	idx := 0
	for gi, g := range groups {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, a.styles.Group.Render(fmt.Sprintf("%s (%d)", g.Status.Label(), len(g.Items))))
		for _, item := range g.Items {
			var suffix string
			if item.Progress != "" {
				suffix = " · " + item.Progress
			}
			line, _ := layout.TruncateWithPrefixSuffix(item.Title, width, "  ", suffix, a.layoutConfig.Text)
			if focused && idx == a.mlCursor {
				cursorLine = len(lines)
				line = a.styles.ItemSelected.Render(layout.PadRight(line, width))
			} else {
				line = a.styles.Item.Render(line)
			}
			lines = append(lines, line)
			idx++
		}
	}
	return window(lines, cursorLine, height)
}

// renderForm renders the text-input modals.
func (a App) renderForm() string {
	var title string
	var content strings.Builder

	field := func(label, view string) {
		if content.Len() > 0 {
			content.WriteString("\n\n")
		}
		content.WriteString(label + "\n" + view)
	}

	switch a.mode {
	case ModeAddFolder:
		title = "New Folder"
		if a.snap.view.Kind == state.ViewFolder {
			title = "New Folder in " + a.snap.title
		}
		field("Name:", a.modal.NameInput.View())
	case ModeRenameFolder:
		title = "Rename Folder"
		field("Name:", a.modal.NameInput.View())
	case ModeAddVideo:
		title = "Add VOD"
		field("URL:", a.modal.URLInput.View())
	case ModeAddMedia:
		title = "Add Media"
		field("Title:", a.modal.TitleInput.View())
		field("Date:", a.modal.DateInput.View())
	case ModeMediaLogAdd:
		title = "Add to " + a.snap.category.Label()
		field("Title:", a.modal.TitleInput.View())
		field("Progress:", a.modal.ProgressInput.View())
		field("Status:", a.styles.Badge.Render(a.modal.Status.Label()))
	case ModeMediaLogEdit:
		title = "Edit Entry"
		field("Title:", a.modal.TitleInput.View())
		field("Progress:", a.modal.ProgressInput.View())
	case ModeAttachSubtitles:
		title = "Upload Subtitles"
		field("File (.srt):", a.modal.PathInput.View())
	}

	hints := []Hint{{Key: "Enter", Desc: "save"}, {Key: "Esc", Desc: "cancel"}}
	if len(a.modal.fields(a.mode)) > 1 {
		hints = append(hints, Hint{Key: "Tab", Desc: "next"})
	}
	if a.mode == ModeMediaLogAdd {
		hints = append(hints, Hint{Key: "ctrl+s", Desc: "status"})
	}

	return a.renderModalBox(a.layoutConfig.Modal.DefaultWidthPercent, title, content.String(), hints)
}

// renderModalBox wraps modal content with a title, hints and a border.
func (a App) renderModalBox(widthPercent int, title, body string, hints []Hint) string {
	modalWidth := a.layoutConfig.Modal.Width(a.width, widthPercent)
	var b strings.Builder
	b.WriteString(a.styles.Title.Render(title) + "\n\n")
	b.WriteString(body)
	if a.messageText != "" {
		b.WriteString("\n\n" + a.renderMessageLine())
	}
	b.WriteString("\n\n" + a.renderHintsInline(hints))
	return a.styles.Modal.Width(modalWidth).Render(b.String())
}

// renderMovePicker renders the move-to-folder picker.
func (a App) renderMovePicker() string {
	title := "Move to Folder"
	if a.move.Bulk() {
		title = fmt.Sprintf("Move %d Entries", len(a.snap.selected))
	}
	modalWidth := a.layoutConfig.Modal.Width(a.width, a.layoutConfig.Modal.LargeWidthPercent)
	itemWidth := modalWidth - 6

	var body strings.Builder
	body.WriteString(a.move.FilterInput.View() + "\n\n")
	switch {
	case a.move.Loading:
		body.WriteString(a.styles.Empty.Render("Loading folders..."))
	case len(a.move.Filtered) == 0:
		body.WriteString(a.styles.Empty.Render("No matching folders"))
	default:
		start, end := layout.ListWindow(a.layoutConfig.Modal.MoveMaxVisible, a.move.FolderIdx, len(a.move.Filtered))
		for i := start; i < end; i++ {
			line, _ := layout.TruncateText(a.move.Filtered[i].Folder.Breadcrumb, itemWidth-2, a.layoutConfig.Text)
			if i == a.move.FolderIdx {
				body.WriteString(a.styles.ItemSelected.Render(layout.PadRight("▸ "+line, itemWidth)))
			} else {
				body.WriteString(a.styles.Item.Render("  " + line))
			}
			if i < end-1 {
				body.WriteString("\n")
			}
		}
	}

	return a.renderModalBox(a.layoutConfig.Modal.LargeWidthPercent, title, body.String(), []Hint{
		{Key: "Enter", Desc: "move"},
		{Key: "Esc", Desc: "cancel"},
	})
}

// renderFindPicker renders the find-anywhere picker.
func (a App) renderFindPicker() string {
	modalWidth := a.layoutConfig.Modal.Width(a.width, a.layoutConfig.Modal.LargeWidthPercent)
	itemWidth := modalWidth - 6

	var body strings.Builder
	body.WriteString(a.find.Input.View() + "\n\n")
	switch {
	case a.find.Loading:
		body.WriteString(a.styles.Empty.Render("Loading entries..."))
	case len(a.find.Results) == 0:
		body.WriteString(a.styles.Empty.Render("No matches"))
	default:
		start, end := layout.ListWindow(a.layoutConfig.Modal.FindMaxVisible, a.find.Cursor, len(a.find.Results))
		for i := start; i < end; i++ {
			bm := a.find.Results[i].Bookmark
			var suffix string
			if bm.FolderBreadcrumb != "" {
				suffix = "  " + bm.FolderBreadcrumb
			}
			line, _ := layout.TruncateText(bm.DisplayTitle(), itemWidth, a.layoutConfig.Text)
			if room := itemWidth - layout.VisibleLength(line); suffix != "" && room > 4 {
				crumb, _ := layout.TruncateText(suffix, room, a.layoutConfig.Text)
				line += a.styles.Meta.Render(crumb)
			}
			if i == a.find.Cursor {
				body.WriteString(a.styles.ItemSelected.Render(layout.PadRight(layout.StripANSI(line), itemWidth)))
			} else {
				body.WriteString(a.styles.Item.Render(line))
			}
			if i < end-1 {
				body.WriteString("\n")
			}
		}
	}

	title := "Find"
	if !a.find.Loading {
		title = fmt.Sprintf("Find (%d/%d)", len(a.find.Results), len(a.find.All))
	}
	return a.renderModalBox(a.layoutConfig.Modal.LargeWidthPercent, title, body.String(), []Hint{
		{Key: "Enter", Desc: "go to"},
		{Key: "Esc", Desc: "cancel"},
	})
}

// renderConfirm renders a pending confirmation.
func (a App) renderConfirm() string {
	return a.renderModalBox(a.layoutConfig.Modal.DefaultWidthPercent, a.confirm.Title, a.styles.Help.Render(a.confirm.Message), []Hint{
		{Key: "Enter", Desc: "confirm"},
		{Key: "Esc", Desc: "cancel"},
	})
}

// subtitleWidth is the content width of the subtitle viewer.
func (a App) subtitleWidth() int {
	width := a.layoutConfig.Modal.Width(a.width, a.layoutConfig.Modal.LargeWidthPercent) - 6
	if width < 1 {
		return 1
	}
	return width
}

// renderSubtitles renders the subtitle viewer.
func (a App) renderSubtitles() string {
	title := a.subs.Name
	if title == "" {
		title = "Subtitles"
	}
	scroll := fmt.Sprintf("%3.f%%", a.subs.Viewport.ScrollPercent()*100)
	body := a.subs.Viewport.View() + "\n" + a.styles.Meta.Render(scroll)
	return a.renderModalBox(a.layoutConfig.Modal.LargeWidthPercent, title, body, []Hint{
		{Key: "j/k", Desc: "scroll"},
		{Key: "Esc", Desc: "close"},
	})
}

// renderHelpBar renders the message line and the keyboard hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		msg, _ := layout.TruncateText(a.renderMessageLine(), a.width-4, a.layoutConfig.Text)
		lines = append(lines, msg)
	} else {
		lines = append(lines, "")
	}

	// Line 2: contextual hints, then global ones while they fit
	var parts []string
	for _, h := range a.getContextualHints().All() {
		parts = append(parts, a.renderHint(h))
	}
	if a.mode == ModeNormal {
		for _, h := range a.getGlobalHints() {
			parts = append(parts, a.renderHint(h))
		}
	}
	lines = append(lines, layout.JoinFitting(parts, " ", a.width-4, a.layoutConfig.Text))

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	switch a.messageType {
	case MessageError:
		return a.styles.Error.Render("✗ " + a.messageText)
	case MessageSuccess:
		return a.styles.Success.Render("✓ " + a.messageText)
	default:
		return a.styles.Info.Render(a.messageText)
	}
}

// renderHelpOverlay renders the full keybinding reference.
func (a App) renderHelpOverlay() string {
	// Brutalist style: no border, just raw columns
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString("j/k  move\n")
	left.WriteString("gg   top\n")
	left.WriteString("G    bottom\n")
	left.WriteString("tab  switch pane\n")
	left.WriteString("h/l  fold/unfold\n")
	left.WriteString("1/2  tabs\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("find") + "\n")
	left.WriteString("/    filter list\n")
	left.WriteString("f    find anywhere\n")
	left.WriteString("o    sort\n")
	left.WriteString("\n")
	left.WriteString(a.styles.Title.Render("folders") + "\n")
	left.WriteString("n    new folder\n")
	left.WriteString("r    rename\n")
	left.WriteString("d    delete\n")

	var middle strings.Builder
	middle.WriteString(a.styles.Title.Render("entries") + "\n")
	middle.WriteString("a    add VOD\n")
	middle.WriteString("A    add media\n")
	middle.WriteString("⏎/b  open url\n")
	middle.WriteString("y    yank url\n")
	middle.WriteString("m    move\n")
	middle.WriteString("d    delete\n")
	middle.WriteString("\n")
	middle.WriteString(a.styles.Title.Render("select") + "\n")
	middle.WriteString("v    toggle\n")
	middle.WriteString("Esc  clear\n")
	middle.WriteString("\n")
	middle.WriteString(a.styles.Title.Render("subtitles") + "\n")
	middle.WriteString("u    upload .srt\n")
	middle.WriteString("s    show\n")
	middle.WriteString("x    remove\n")

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("media log") + "\n")
	right.WriteString("[/]  category\n")
	right.WriteString("a    add\n")
	right.WriteString("c    cycle status\n")
	right.WriteString("e    edit\n")
	right.WriteString("d    delete\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Title.Render("app") + "\n")
	right.WriteString("t    theme\n")
	right.WriteString("V    card/list\n")
	right.WriteString("R    refresh\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/esc] close  [q] quit"))

	colWidth := a.layoutConfig.Modal.HelpColumnWidth
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colWidth).Render(left.String()), "  ",
		lipgloss.NewStyle().Width(colWidth).Render(middle.String()), "  ",
		lipgloss.NewStyle().Width(colWidth).Render(right.String()),
	)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}
