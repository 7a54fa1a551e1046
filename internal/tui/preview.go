package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/irclogview/irclogview/internal/preview"
	"github.com/irclogview/irclogview/internal/search"
)

// previewRenderedMsg is sent when an async preview render completes.
type previewRenderedMsg struct {
	path    string
	line    int
	content string
	hitLine int
	err     error
}

// loadPreviewCmd returns a tea.Cmd that renders the log preview async.
func loadPreviewCmd(r search.Result, searchOpts search.Options, query string, width int) tea.Cmd {
	return func() tea.Msg {
		content, hitLine, err := preview.RenderFile(r.File.Path, preview.Options{
			HitLine:   r.LineNumber,
			Context:   -1,
			Width:     width,
			Query:     query,
			Dircproxy: searchOpts.Dircproxy,
			Dialect:   searchOpts.Dialect,
		})
		return previewRenderedMsg{
			path:    r.File.Path,
			line:    r.LineNumber,
			content: content,
			hitLine: hitLine,
			err:     err,
		}
	}
}
