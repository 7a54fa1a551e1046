package htmlrender

import (
	"regexp"
	"strings"
)

// Escape replaces ampersands, pointies and quotes, and drops control
// characters (logs from the wild contain ^B bold markers and worse).
func Escape(s string) string {
	s = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	).Replace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r > 0x1F {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// urlRE matches URLs inside already-escaped text. The tail only admits a
// dot or comma when more URL follows, so sentence punctuation right after
// a URL stays outside the link. `&` is consumed only as a literal `&amp;`,
// which also stops the URL at escaped pointies (`&lt;`, `&gt;`).
var urlRE = regexp.MustCompile(`((?:https?|ftp)://|\bwww\.)(?:[.,]*(?:&amp;|[^ '")>&.,]))*`)

// Linkify wraps URLs in the escaped text with nofollow anchors. Trailing
// punctuation in the set . , ) > " ' is re-emitted as plain text after the
// anchor. Input must already be Escape()d; the anchor markup added here is
// the only raw HTML in the result.
func Linkify(escaped string) string {
	return urlRE.ReplaceAllStringFunc(escaped, func(m string) string {
		href := m
		if strings.HasPrefix(m, "www.") {
			href = "http://" + m
		}
		return `<a href="` + href + `" rel="nofollow">` + m + `</a>`
	})
}

// ShortTime strips the date (ISO form only) and seconds from a display
// timestamp: "2005-02-04T12:45:17" becomes "12:45".
func ShortTime(ts string) string {
	if i := strings.LastIndex(ts, "T"); i >= 0 {
		ts = ts[i+1:]
	}
	if strings.Count(ts, ":") > 1 {
		parts := strings.SplitN(ts, ":", 3)
		ts = parts[0] + ":" + parts[1]
	}
	return ts
}
