package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/irclogview/irclogview/internal/logparse"
	"github.com/irclogview/irclogview/internal/search"
)

// linesPerItem is the number of terminal lines each result occupies.
const linesPerItem = 2

// renderList renders the left panel: search results list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.results) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No results")
		return empty
	}

	var lines []string
	for i, r := range m.results {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		rows := formatResultLine(r, width, i == m.cursor)
		lines = append(lines, rows...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatResultLine formats a single search result as two lines:
//
//	line 1: [>] date  time  nick
//	line 2:    message text (dimmed)
func formatResultLine(r search.Result, width int, selected bool) []string {
	date := styleListDate.Render(r.File.Date.Format("2006-01-02"))

	// Keep only HH:MM of the timestamp, it may carry a date prefix.
	clock := r.Event.Time
	if i := strings.LastIndex(clock, "T"); i >= 0 {
		clock = clock[i+1:]
	}
	if len(clock) > 5 {
		clock = clock[:5]
	}

	who := r.Event.Nick
	if who == "" {
		who = r.Event.Kind.String()
	}
	whoMax := width - 2 - 10 - 6 - 2 // prefix + date + clock + padding
	if whoMax < 0 {
		whoMax = 0
	}
	if runewidth.StringWidth(who) > whoMax {
		who = runewidth.Truncate(who, whoMax, "")
	}

	// Line 1: date time nick
	line1 := fmt.Sprintf("%s %s %s", date, clock, styleListNick.Render(who))
	if selected {
		line1 = styleListSelected.Render("> ") + line1
	} else {
		line1 = "  " + line1
	}

	// Line 2: message text (dimmed, indented)
	text := r.Event.Text
	if r.Event.Kind == logparse.NickChange {
		text = r.Event.OldNick + " is now known as " + r.Event.NewNick
	}
	text = strings.ReplaceAll(text, "\t", " ")
	textMax := width - 4 // indent
	if textMax < 0 {
		textMax = 0
	}
	if runewidth.StringWidth(text) > textMax {
		text = runewidth.Truncate(text, textMax, "")
	}
	line2 := "    " + lipgloss.NewStyle().Foreground(colorDim).Render(text)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
