package htmlrender

import "fmt"

// wikiStyle produces MediaWiki table syntax. URLs are left bare; the wiki
// engine links them itself.
type wikiStyle struct{}

func (wikiStyle) Name() string        { return "wiki" }
func (wikiStyle) Description() string { return "MediaWiki table markup" }
func (wikiStyle) linkifyText() bool   { return false }

func (wikiStyle) Head(Metadata) string {
	return "{|\n"
}

func (wikiStyle) Foot(Metadata) string {
	return fmt.Sprintf("|}\n\nGenerated by %s\n", generator)
}

func (wikiStyle) NickLine(f Fields) string {
	if f.Anchor == "" {
		return fmt.Sprintf("|-\n! style=\"background-color: %s\" | %s\n"+
			"| style=\"color: %s\" colspan=\"2\" | %s\n",
			f.Color, f.Nick, f.Color, f.Text)
	}
	return fmt.Sprintf("|- id=\"%s\"\n! style=\"background-color: %s\" | %s\n"+
		"| style=\"color: %s\" | %s\n|| [[#%s|%s]]\n",
		f.Anchor, f.Color, f.Nick, f.Color, f.Text, f.Anchor, f.Display)
}

func (wikiStyle) EventLine(f Fields) string {
	if f.Anchor == "" {
		return fmt.Sprintf("|-\n| colspan=\"3\" | %s\n", f.Text)
	}
	return fmt.Sprintf("|- id=\"%s\"\n| colspan=\"2\" | %s\n|| [[#%s|%s]]\n",
		f.Anchor, f.Text, f.Anchor, f.Display)
}
