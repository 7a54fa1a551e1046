// Package logfiles finds dated IRC log files and drives batch conversion:
// one HTML page per day, chained prev/next navigation, an index page, a
// latest-log symlink and the shared stylesheet.
package logfiles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// dateRE picks the last YYYY-MM-DD or YYYYMMDD in a filename.
var dateRE = regexp.MustCompile(`^.*(\d{4})-?(\d{2})-?(\d{2})`)

// LogFile is one dated channel log.
type LogFile struct {
	Path  string
	Date  time.Time
	Link  string // output filename, also the navigation target
	Title string // "2013-03-18 (Monday)"
}

// New derives the date, output link and title from a log file name.
// Filenames without a recognizable date are an error; the batch driver
// needs dates to order pages and chain navigation.
func New(path string) (LogFile, error) {
	base := filepath.Base(path)
	m := dateRE.FindStringSubmatch(base)
	if m == nil {
		return LogFile{}, fmt.Errorf("log filename has no date: %s", base)
	}
	date, err := time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3])
	if err != nil {
		return LogFile{}, fmt.Errorf("log filename has no valid date: %s", base)
	}
	return LogFile{
		Path:  path,
		Date:  date,
		Link:  OutputName(base),
		Title: date.Format("2006-01-02 (Monday)"),
	}, nil
}

// OutputName maps a log filename to its HTML page name, dropping a .gz
// suffix first.
func OutputName(name string) string {
	return strings.TrimSuffix(name, ".gz") + ".html"
}

// Find lists the log files in dir matching the glob pattern, oldest first.
func Find(dir, pattern string) ([]LogFile, error) {
	if pattern == "" {
		pattern = "*.log"
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad log pattern %q: %w", pattern, err)
	}
	var files []LogFile
	for _, path := range matches {
		f, err := New(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		if !files[i].Date.Equal(files[j].Date) {
			return files[i].Date.Before(files[j].Date)
		}
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// UpToDate reports whether the HTML page in outDir exists and is strictly
// newer than the log. Equal mtimes err on the safe side and regenerate.
func (f LogFile) UpToDate(outDir string) bool {
	logInfo, err := os.Stat(f.Path)
	if err != nil {
		return false
	}
	htmlInfo, err := os.Stat(filepath.Join(outDir, f.Link))
	if err != nil {
		return false
	}
	return htmlInfo.ModTime().After(logInfo.ModTime())
}

// MoveSymlink atomically points linkPath at target, replacing any previous
// link. The temp-then-rename dance avoids a window with no link at all.
func MoveSymlink(target, linkPath string) error {
	tmp := linkPath + ".tmp"
	os.Remove(tmp)
	if err := os.Symlink(target, tmp); err != nil {
		return err
	}
	return os.Rename(tmp, linkPath)
}

// EnsureCSS writes the stylesheet into dir unless one is already there.
func EnsureCSS(dir string, css []byte) error {
	path := filepath.Join(dir, "irclog.css")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, css, 0o644)
}
