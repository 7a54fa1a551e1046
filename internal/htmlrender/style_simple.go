package htmlrender

import "fmt"

// simpleStyle is a teletype-flavoured list with one coloured <font> tag per
// speaker and no stylesheet dependency.
type simpleStyle struct{}

func (simpleStyle) Name() string        { return "simple" }
func (simpleStyle) Description() string { return "Plain list with coloured nicks" }
func (simpleStyle) linkifyText() bool   { return true }

func (simpleStyle) Head(meta Metadata) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<title>%s</title>
	<meta charset="UTF-8">
	<meta name="generator" content="%s">
	<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body text="#000000" bgcolor="#ffffff"><tt>
`, Escape(meta.Title), generator)
}

func (simpleStyle) Foot(Metadata) string {
	return fmt.Sprintf("<br>Generated by %s\n</tt></body></html>\n", generator)
}

func (simpleStyle) NickLine(f Fields) string {
	return fmt.Sprintf(`%s<font color="%s">&lt;%s&gt;</font> <font color="#000000">%s</font><br>`+"\n",
		anchorTag(f.Anchor), f.Color, f.Nick, f.Text)
}

func (simpleStyle) EventLine(f Fields) string {
	text := f.Text
	if f.Color != "" {
		text = fmt.Sprintf(`<font color="%s">%s</font>`, f.Color, text)
	}
	return fmt.Sprintf("%s%s<br>\n", anchorTag(f.Anchor), text)
}

func anchorTag(anchor string) string {
	if anchor == "" {
		return ""
	}
	return fmt.Sprintf(`<a id="%s"></a>`, anchor)
}
