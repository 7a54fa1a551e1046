package logfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/irclogview/irclogview/internal/htmlrender"
	"github.com/irclogview/irclogview/internal/logparse"
)

// BatchOptions configures one batch run over a log directory.
type BatchOptions struct {
	Pattern     string // log file glob, default "*.log"
	Style       string
	TitlePrefix string // prepended to each day's title, e.g. "IRC logs for "
	IndexTitle  string // title of index.html
	Force       bool   // regenerate even when up to date
	Searchbox   bool
	Dircproxy   bool
	Dialect     logparse.Dialect
	OutputDir   string // default: the log directory itself
}

// Process converts every new or outdated log in dir, writes the index page,
// refreshes the latest-log symlink and ships the stylesheet. Pages link to
// each other in date order.
func Process(dir string, opts BatchOptions) error {
	files, err := Find(dir, opts.Pattern)
	if err != nil {
		return err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = dir
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	indexTitle := opts.IndexTitle
	if indexTitle == "" {
		indexTitle = "IRC logs"
	}

	for i, f := range files {
		if !opts.Force && f.UpToDate(outDir) {
			continue
		}
		var prev, next htmlrender.Link
		if i > 0 {
			prev = htmlrender.Link{Title: files[i-1].Title, URL: files[i-1].Link}
		}
		if i < len(files)-1 {
			next = htmlrender.Link{Title: files[i+1].Title, URL: files[i+1].Link}
		}
		ropts := htmlrender.Options{
			Style:     opts.Style,
			Title:     opts.TitlePrefix + f.Title,
			FileName:  f.Link,
			Prev:      prev,
			Index:     htmlrender.Link{Title: indexTitle, URL: "index.html"},
			Next:      next,
			Searchbox: opts.Searchbox,
		}
		parser := &logparse.Parser{Dialect: opts.Dialect, Dircproxy: opts.Dircproxy}
		if err := ConvertFile(f.Path, filepath.Join(outDir, f.Link), parser, ropts); err != nil {
			return err
		}
	}

	if err := writeIndexFile(outDir, indexTitle, files); err != nil {
		return err
	}
	if len(files) > 0 {
		// Symlinks are best effort; some filesystems cannot have them.
		_ = MoveSymlink(files[len(files)-1].Link, filepath.Join(outDir, "latest.log.html"))
	}
	return EnsureCSS(outDir, htmlrender.CSS)
}

// ConvertFile parses one log and writes its HTML page.
func ConvertFile(inPath, outPath string, parser *logparse.Parser, opts htmlrender.Options) error {
	events, err := parser.ParseFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	page, err := htmlrender.RenderPage(events, opts)
	if err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if _, err := page.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return out.Close()
}

func writeIndexFile(outDir, title string, files []LogFile) error {
	out, err := os.Create(filepath.Join(outDir, "index.html"))
	if err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	if err := WriteIndex(out, title, files); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteIndex emits the archive index page, newest day first. The empty
// xhtml shell is rendered once and the day list is spliced into its
// (otherwise empty) irclog division.
func WriteIndex(w io.Writer, title string, files []LogFile) error {
	page, err := htmlrender.RenderPage(nil, htmlrender.Options{
		Style: "xhtml",
		Title: title,
	})
	if err != nil {
		return err
	}
	shell := page.HTML()
	const marker = "<div class=\"irclog\">\n"
	split := strings.Index(shell, marker)
	if split < 0 {
		return fmt.Errorf("index shell has no irclog division")
	}
	split += len(marker)

	var b strings.Builder
	b.WriteString(shell[:split])
	b.WriteString("<ul>\n")
	for j := len(files) - 1; j >= 0; j-- {
		f := files[j]
		fmt.Fprintf(&b, "<li><a href=\"%s\">%s</a></li>\n",
			htmlrender.Escape(f.Link), htmlrender.Escape(f.Title))
	}
	b.WriteString("</ul>\n")
	b.WriteString(shell[split:])
	_, err = io.WriteString(w, b.String())
	return err
}
