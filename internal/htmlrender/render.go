// Package htmlrender turns classified log events into styled HTML pages.
//
// A Renderer owns all per-file state: the nick colour assignment and the
// anchor counters. One Renderer converts one file; rendering the same event
// sequence through a fresh Renderer is byte-for-byte reproducible.
package htmlrender

import (
	"fmt"
	"io"
	"strings"

	"github.com/irclogview/irclogview/internal/colorize"
	"github.com/irclogview/irclogview/internal/logparse"
)

// RenderedLine is one line's HTML fragment plus its permalink anchor.
// The anchor is empty for lines without timestamps.
type RenderedLine struct {
	Anchor string
	HTML   string
}

// Options configures a rendering run. All fields are pure inputs; the only
// baked-in fallbacks are auto style ("" means DefaultStyle) and the default
// event-kind colours.
type Options struct {
	Style     string
	Title     string
	FileName  string // page the per-line permalinks point back at
	Prev      Link
	Index     Link
	Next      Link
	Searchbox bool

	// KindColors overrides the display colour per event kind.
	KindColors map[logparse.Kind]string
}

var defaultKindColors = map[logparse.Kind]string{
	logparse.Part:       "#000099",
	logparse.Quit:       "#000099",
	logparse.Join:       "#009900",
	logparse.Server:     "#009900",
	logparse.NickChange: "#009900",
	logparse.Action:     "#CC00CC",
}

// Renderer converts events to rendered lines. Not safe for concurrent use;
// create one per file conversion.
type Renderer struct {
	style      Style
	meta       Metadata
	nickColors *colorize.Assignment
	kindColors map[logparse.Kind]string
	anchors    AnchorSequence
	lines      []RenderedLine
}

// New validates the options eagerly and returns a renderer with a fresh
// colour assignment. An unknown style name is the caller's mistake and is
// rejected before any line is touched.
func New(opts Options) (*Renderer, error) {
	style, err := StyleByName(opts.Style)
	if err != nil {
		return nil, err
	}
	kindColors := defaultKindColors
	if opts.KindColors != nil {
		kindColors = make(map[logparse.Kind]string, len(defaultKindColors))
		for k, c := range defaultKindColors {
			kindColors[k] = c
		}
		for k, c := range opts.KindColors {
			kindColors[k] = c
		}
	}
	return &Renderer{
		style: style,
		meta: Metadata{
			Title:     opts.Title,
			FileName:  opts.FileName,
			Prev:      opts.Prev,
			Index:     opts.Index,
			Next:      opts.Next,
			Searchbox: opts.Searchbox,
		},
		nickColors: colorize.New(),
		kindColors: kindColors,
		anchors:    make(AnchorSequence),
	}, nil
}

// Style returns the validated output style.
func (r *Renderer) Style() Style { return r.style }

// RenderLine converts one event to a fragment and records it for the page.
func (r *Renderer) RenderLine(ev logparse.Event) RenderedLine {
	return r.renderLine(ev, r.anchorFor(ev.Time))
}

// RenderLineAt renders ev with a precomputed page anchor instead of drawing
// one from the renderer's own sequence. Search result pages use it so their
// permalinks carry the anchors the day page actually assigned.
func (r *Renderer) RenderLineAt(ev logparse.Event, anchor string) RenderedLine {
	return r.renderLine(ev, anchor)
}

func (r *Renderer) renderLine(ev logparse.Event, anchor string) RenderedLine {
	f := Fields{
		Anchor: anchor,
		Kind:   ev.Kind,
		Link:   r.meta.FileName,
	}
	if ev.Time != "" {
		f.Display = ShortTime(ev.Time)
	}

	var html string
	if ev.Kind == logparse.Message {
		f.Nick = Escape(ev.Nick)
		f.Color = r.nickColors.ColorFor(ev.Nick)
		f.Text = r.prepareText(ev.Text)
		html = r.style.NickLine(f)
	} else {
		if ev.Kind == logparse.NickChange {
			r.nickColors.Rename(ev.OldNick, ev.NewNick)
		}
		f.Color = r.kindColors[ev.Kind]
		f.Text = r.prepareText(ev.Text)
		html = r.style.EventLine(f)
	}

	line := RenderedLine{Anchor: f.Anchor, HTML: html}
	r.lines = append(r.lines, line)
	return line
}

// prepareText escapes the raw text and, for HTML styles, linkifies URLs and
// preserves double spaces.
func (r *Renderer) prepareText(text string) string {
	text = Escape(text)
	if r.style.linkifyText() {
		text = Linkify(text)
		text = strings.ReplaceAll(text, "  ", "&nbsp;&nbsp;")
	}
	return text
}

// anchorFor issues a unique page anchor for a timestamp.
func (r *Renderer) anchorFor(ts string) string {
	return r.anchors.Next(ts)
}

// AnchorSequence issues the page anchors for a stream of timestamps. Lines
// sharing a timestamp get -2, -3, ... suffixes; the counter restarts for
// every distinct timestamp value and never chains onto earlier suffixes.
// Feeding a file's events through a fresh sequence reproduces the anchors
// its rendered page carries.
type AnchorSequence map[string]int

// Next returns the anchor for the next line bearing ts; "" stays "".
func (a AnchorSequence) Next(ts string) string {
	if ts == "" {
		return ""
	}
	a[ts]++
	if n := a[ts]; n > 1 {
		return fmt.Sprintf("t%s-%d", ts, n)
	}
	return "t" + ts
}

// Page assembles everything rendered so far.
func (r *Renderer) Page() *Page {
	return &Page{Meta: r.meta, Lines: r.lines, style: r.style}
}

// Page is one finished document: metadata plus the ordered rendered lines.
type Page struct {
	Meta  Metadata
	Lines []RenderedLine
	style Style
}

// HTML returns the complete document, well-formed even with zero lines.
func (p *Page) HTML() string {
	var b strings.Builder
	b.WriteString(p.style.Head(p.Meta))
	for _, l := range p.Lines {
		b.WriteString(l.HTML)
	}
	b.WriteString(p.style.Foot(p.Meta))
	return b.String()
}

// WriteTo writes the document to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.HTML())
	return int64(n), err
}

// RenderPage converts a whole event sequence in one call.
func RenderPage(events []logparse.Event, opts Options) (*Page, error) {
	r, err := New(opts)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		r.RenderLine(ev)
	}
	return r.Page(), nil
}
