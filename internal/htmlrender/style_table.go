package htmlrender

import "fmt"

// tableStyle is the default layout: a two-column table with the nick in a
// coloured header cell and a timestamp permalink on the right.
type tableStyle struct{}

func (tableStyle) Name() string        { return "table" }
func (tableStyle) Description() string { return "Two-column table styled with CSS (default)" }
func (tableStyle) linkifyText() bool   { return true }

func (tableStyle) Head(meta Metadata) string {
	return xhtmlShellHead(meta, `<table class="irclog">`)
}

func (tableStyle) Foot(meta Metadata) string {
	return xhtmlShellFoot(meta, `</table>`)
}

func (tableStyle) NickLine(f Fields) string {
	if f.Anchor == "" {
		return fmt.Sprintf(`<tr>`+
			`<th class="nick" style="background: %s">%s</th>`+
			`<td class="text" colspan="2" style="color: %s">%s</td>`+
			"</tr>\n",
			f.Color, f.Nick, f.Color, f.Text)
	}
	return fmt.Sprintf(`<tr id="%s">`+
		`<th class="nick" style="background: %s">%s</th>`+
		`<td class="text" style="color: %s">%s</td>`+
		`<td class="time">%s</td>`+
		"</tr>\n",
		f.Anchor, f.Color, f.Nick, f.Color, f.Text, timeLink(f))
}

func (tableStyle) EventLine(f Fields) string {
	class := cssClass[f.Kind]
	if f.Anchor == "" {
		return fmt.Sprintf("<tr><td class=\"%s\" colspan=\"3\">%s</td></tr>\n", class, f.Text)
	}
	return fmt.Sprintf(`<tr id="%s">`+
		`<td class="%s" colspan="2">%s</td>`+
		`<td>%s</td>`+
		"</tr>\n",
		f.Anchor, class, f.Text, timeLink(f))
}
