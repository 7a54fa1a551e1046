// Package preview renders a window of a log file as ANSI-coloured terminal
// text, used by the search TUI's preview pane and the preview subcommand.
package preview

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/irclogview/irclogview/internal/logparse"
)

const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
	colorHit   = "\033[43m" // yellow background
	colorBold  = "\033[1;31m"
)

// ansiPalette cycles through per-nick colours in first-seen order, the same
// policy the HTML renderer uses.
var ansiPalette = []string{
	"\033[1;36m", // cyan
	"\033[1;32m", // green
	"\033[1;33m", // yellow
	"\033[1;34m", // blue
	"\033[1;35m", // magenta
	"\033[1;31m", // red
}

type Options struct {
	HitLine   int // 1-based line to highlight, -1 for none
	Context   int // lines before/after the hit; <0 shows the whole file
	Width     int // wrap width, 0 for no wrap
	Query     string
	Dircproxy bool
	Dialect   logparse.Dialect
}

type nickColors struct {
	colors map[string]string
	next   int
}

func (n *nickColors) colorFor(nick string) string {
	if c, ok := n.colors[nick]; ok {
		return c
	}
	c := ansiPalette[n.next%len(ansiPalette)]
	n.next++
	n.colors[nick] = c
	return c
}

// RenderFile renders the log window around opts.HitLine. It returns the
// content and the 0-based display line of the hit (-1 when there is none).
func RenderFile(path string, opts Options) (string, int, error) {
	parser := &logparse.Parser{Dialect: opts.Dialect, Dircproxy: opts.Dircproxy}
	events, err := parser.ParseFile(path)
	if err != nil {
		return "", -1, fmt.Errorf("parse %s: %w", path, err)
	}

	if opts.Context == 0 {
		opts.Context = 10
	}
	start, end := 0, len(events)
	if opts.Context > 0 && opts.HitLine > 0 {
		start = opts.HitLine - 1 - opts.Context
		if start < 0 {
			start = 0
		}
		end = opts.HitLine + opts.Context
		if end > len(events) {
			end = len(events)
		}
	}

	nicks := &nickColors{colors: make(map[string]string)}
	var b strings.Builder
	hitDisplay := -1
	lineCount := 0

	writeLine := func(s string) {
		for _, wl := range wrapLine(s, opts.Width) {
			b.WriteString(wl)
			b.WriteString("\n")
			lineCount++
		}
	}

	writeLine(fmt.Sprintf("%s--- %s ---%s", colorDim, path, colorReset))
	if start > 0 {
		writeLine(fmt.Sprintf("%s... (%d lines before) ...%s", colorDim, start, colorReset))
	}

	for i := start; i < end; i++ {
		ev := events[i]
		isHit := i == opts.HitLine-1
		if isHit {
			hitDisplay = lineCount
		}
		writeLine(formatEvent(ev, nicks, opts.Query, isHit))
	}

	if rest := len(events) - end; rest > 0 {
		writeLine(fmt.Sprintf("%s... (%d lines after) ...%s", colorDim, rest, colorReset))
	}

	return b.String(), hitDisplay, nil
}

func formatEvent(ev logparse.Event, nicks *nickColors, query string, hit bool) string {
	var b strings.Builder
	if ev.Time != "" {
		b.WriteString(colorDim + ev.Time + colorReset + " ")
	}
	switch ev.Kind {
	case logparse.Message:
		c := nicks.colorFor(ev.Nick)
		fmt.Fprintf(&b, "%s<%s>%s ", c, ev.Nick, colorReset)
		b.WriteString(highlightKeywords(ev.Text, query))
	case logparse.NickChange:
		nicks.colors[ev.NewNick] = nicks.colorFor(ev.OldNick)
		b.WriteString(colorDim + highlightKeywords(ev.Text, query) + colorReset)
	default:
		b.WriteString(colorDim + highlightKeywords(ev.Text, query) + colorReset)
	}
	s := b.String()
	if hit {
		s = colorHit + s
	}
	return s
}

// highlightKeywords wraps case-insensitive matches of the query terms in
// bold red ANSI codes.
func highlightKeywords(text, query string) string {
	for _, term := range strings.Fields(query) {
		text = highlightTerm(text, term)
	}
	return text
}

// highlightTerm walks the original string rune by rune and compares
// rune-count windows with EqualFold. Byte offsets into a ToLower copy are
// not safe: case mapping can change UTF-8 length (U+023A is two bytes, its
// lowercase U+2C65 is three).
func highlightTerm(text, term string) string {
	n := utf8.RuneCountInString(term)
	if n == 0 {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if end, ok := foldPrefix(text[i:], term, n); ok {
			b.WriteString(colorBold)
			b.WriteString(text[i : i+end])
			b.WriteString(colorReset)
			i += end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		i += size
	}
	return b.String()
}

// foldPrefix reports whether s starts with a case-insensitive match of term
// and returns the matched byte length. The window spans n runes of s; simple
// case folding maps rune to rune, so equal rune counts suffice.
func foldPrefix(s, term string, n int) (int, bool) {
	end := 0
	for j := 0; j < n; j++ {
		if end >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	if strings.EqualFold(s[:end], term) {
		return end, true
	}
	return 0, false
}

// wrapLine breaks one line into pieces that fit maxWidth visible columns,
// skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)
		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}
		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}
	if len(result) == 0 {
		return []string{""}
	}
	return result
}
