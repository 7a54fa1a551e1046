package server

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/irclogview/irclogview/internal/htmlrender"
	"github.com/irclogview/irclogview/internal/search"
)

var embeddedCSS = htmlrender.CSS

const searchLimit = 100

func pageHeader(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>%s</title>
  <link rel="stylesheet" href="irclog.css" />
</head>
<body>
`, htmlrender.Escape(title))
}

const pageFooter = `<div class="generatedby">
<p>Generated by irclogview</p>
</div>
</body>
</html>
`

func searchForm(w io.Writer, query string) {
	fmt.Fprintf(w, `<form action="" method="get">
<input type="text" name="q" value="%s" />
<input type="submit" value="Search" />
</form>
`, htmlrender.Escape(query))
}

// search renders the search form, or the results page when a query is
// present. Results are grouped by day, newest day first, each group shown
// with the table style and permalinks into that day's page.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	dir, ok := s.logDir(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	query := r.URL.Query().Get("q")
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if query == "" {
		io.WriteString(w, pageHeader("Search IRC logs"))
		io.WriteString(w, "<h1>Search IRC logs</h1>\n")
		searchForm(w, "")
		io.WriteString(w, pageFooter)
		return
	}

	started := time.Now()
	results, stats, err := search.Search(dir, s.cfg.Pattern, search.Options{
		Query:     query,
		Limit:     searchLimit,
		Dircproxy: s.cfg.Dircproxy,
		Dialect:   s.cfg.Dialect,
	})
	if err != nil {
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	io.WriteString(w, pageHeader("Search IRC logs"))
	fmt.Fprintf(w, "<h1>IRC log search results for %s</h1>\n", htmlrender.Escape(query))
	searchForm(w, query)
	writeResults(w, results)
	fmt.Fprintf(w, "<p>%s (%.1f seconds).</p>\n", stats, time.Since(started).Seconds())
	io.WriteString(w, pageFooter)
}

func writeResults(w io.Writer, results []search.Result) {
	if len(results) == 0 {
		return
	}
	io.WriteString(w, `<ul class="searchresults">`+"\n")

	var day string
	var renderer *htmlrender.Renderer
	for _, res := range results {
		if res.File.Link != day {
			if renderer != nil {
				io.WriteString(w, "</table>\n  </li>\n")
			}
			day = res.File.Link
			fmt.Fprintf(w, "  <li><a href=\"%s\">%s</a>:\n<table class=\"irclog\">\n",
				htmlrender.Escape(url.PathEscape(day)), htmlrender.Escape(res.File.Title))
			// One renderer per day: fresh colours, permalinks aimed at
			// that day's page with the anchors the scan assigned.
			renderer, _ = htmlrender.New(htmlrender.Options{
				Style:    "table",
				FileName: day,
			})
		}
		io.WriteString(w, renderer.RenderLineAt(res.Event, res.Anchor).HTML)
	}
	if renderer != nil {
		io.WriteString(w, "</table>\n  </li>\n")
	}
	io.WriteString(w, "</ul>\n")
}

func writeChannelListing(w io.Writer, names []string) {
	io.WriteString(w, pageHeader("IRC logs"))
	io.WriteString(w, "<h1>IRC logs</h1>\n<ul>\n")
	for _, name := range names {
		fmt.Fprintf(w, "<li><a href=\"%s/\">%s</a></li>\n",
			htmlrender.Escape(url.PathEscape(name)), htmlrender.Escape(name))
	}
	io.WriteString(w, "</ul>\n")
	io.WriteString(w, pageFooter)
}
