package htmlrender

import "fmt"

// xhtmlStyle emits one <p> per line, styled via irclog.css.
type xhtmlStyle struct{}

func (xhtmlStyle) Name() string        { return "xhtml" }
func (xhtmlStyle) Description() string { return "Paragraph markup styled with CSS" }
func (xhtmlStyle) linkifyText() bool   { return true }

func (xhtmlStyle) Head(meta Metadata) string {
	return xhtmlShellHead(meta, `<div class="irclog">`)
}

func (xhtmlStyle) Foot(meta Metadata) string {
	return xhtmlShellFoot(meta, `</div>`)
}

func (xhtmlStyle) NickLine(f Fields) string {
	nick := fmt.Sprintf(`<span class="nick" style="color: %s">&lt;%s&gt;</span>`, f.Color, f.Nick)
	text := fmt.Sprintf(`<span class="text">%s</span>`, f.Text)
	if f.Anchor == "" {
		return fmt.Sprintf("<p class=\"comment\">%s %s</p>\n", nick, text)
	}
	return fmt.Sprintf("<p id=\"%s\" class=\"comment\">%s %s %s</p>\n",
		f.Anchor, timeLink(f), nick, text)
}

func (xhtmlStyle) EventLine(f Fields) string {
	class := cssClass[f.Kind]
	if f.Anchor == "" {
		return fmt.Sprintf("<p class=\"%s\">%s</p>\n", class, f.Text)
	}
	return fmt.Sprintf("<p id=\"%s\" class=\"%s\">%s %s</p>\n",
		f.Anchor, class, timeLink(f), f.Text)
}
