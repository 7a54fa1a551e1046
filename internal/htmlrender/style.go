package htmlrender

import (
	"fmt"
	"strings"

	"github.com/irclogview/irclogview/internal/logparse"
)

// generator is stamped into page headers and footers.
const generator = "irclogview"

// Link is a navigation target. An empty URL means the link element is
// omitted from the page entirely; there are no dead links.
type Link struct {
	Title string
	URL   string
}

// Metadata describes the page shell around the rendered lines.
type Metadata struct {
	Title     string
	FileName  string // target page for per-line anchor self-links
	Prev      Link
	Index     Link
	Next      Link
	Searchbox bool
}

// Fields carries one classified line, prepared for a style template.
// Nick and Text arrive escaped (and, for HTML styles, linkified).
type Fields struct {
	Anchor  string // "" when the line had no timestamp
	Display string // shortened display time
	Kind    logparse.Kind
	Nick    string
	Color   string // "" when no colour applies
	Text    string
	Link    string // page the anchor self-link points at
}

// Style is one output layout. Styles are flat variants sharing the same
// classified data; they differ only in the markup they emit.
type Style interface {
	Name() string
	Description() string
	Head(meta Metadata) string
	Foot(meta Metadata) string
	NickLine(f Fields) string
	EventLine(f Fields) string
	// linkifyText reports whether message text should get anchor markup.
	// Wiki output leaves URLs alone; MediaWiki links them itself.
	linkifyText() bool
}

var styles = []Style{
	simpleStyle{},
	xhtmlStyle{},
	tableStyle{},
	wikiStyle{},
}

// DefaultStyle is used when no style is configured.
const DefaultStyle = "table"

// Styles lists the available output styles in a stable order.
func Styles() []Style {
	return styles
}

// StyleByName resolves a configured style name. Unknown names are a
// configuration error and are rejected before any line is processed.
func StyleByName(name string) (Style, error) {
	if name == "" {
		name = DefaultStyle
	}
	for _, s := range styles {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown style: %s", name)
}

// cssClass maps event kinds to the CSS classes irclog.css knows about.
var cssClass = map[logparse.Kind]string{
	logparse.Action:     "action",
	logparse.Join:       "join",
	logparse.Part:       "part",
	logparse.Quit:       "part",
	logparse.NickChange: "nickchange",
	logparse.Server:     "servermsg",
	logparse.Comment:    "other",
	logparse.Other:      "other",
}

// shared shell pieces for the xhtml and table styles

func xhtmlShellHead(meta Metadata, prefix string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <link rel="stylesheet" href="irclog.css" />
  <meta name="generator" content="%s" />
</head>
<body>
<h1>%s</h1>
`, Escape(meta.Title), generator, Escape(meta.Title))
	if meta.Searchbox {
		b.WriteString(searchboxHTML)
	}
	b.WriteString(navbar(meta))
	b.WriteString(prefix)
	b.WriteString("\n")
	return b.String()
}

func xhtmlShellFoot(meta Metadata, suffix string) string {
	var b strings.Builder
	b.WriteString(suffix)
	b.WriteString("\n")
	b.WriteString(navbar(meta))
	fmt.Fprintf(&b, `<div class="generatedby">
<p>Generated by %s</p>
</div>
</body>
</html>
`, generator)
	return b.String()
}

const searchboxHTML = `<div class="searchbox">
<form action="search" method="get">
<input type="text" name="q" id="searchtext" />
<input type="submit" value="Search" id="searchbutton" />
</form>
</div>
`

// navbar renders the prev/index/next navigation row. Links without a URL
// are omitted; when none have one the whole row disappears.
func navbar(meta Metadata) string {
	var links []string
	for _, l := range []Link{meta.Prev, meta.Index, meta.Next} {
		if l.URL == "" {
			continue
		}
		title := l.Title
		if title == "" {
			title = Escape(l.URL)
		}
		links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`, Escape(l.URL), title))
	}
	if len(links) == 0 {
		return ""
	}
	return `<div class="navigation"> ` + strings.Join(links, " ") + ` </div>` + "\n"
}

// timeLink renders the clickable timestamp pointing back at this line.
func timeLink(f Fields) string {
	return fmt.Sprintf(`<a href="%s#%s" class="time">%s</a>`,
		Escape(f.Link), f.Anchor, f.Display)
}
