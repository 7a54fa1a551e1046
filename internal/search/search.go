// Package search greps the log archive for a query. There is no index:
// every search is a fresh linear scan over the log files, newest day first.
package search

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/irclogview/irclogview/internal/htmlrender"
	"github.com/irclogview/irclogview/internal/logfiles"
	"github.com/irclogview/irclogview/internal/logparse"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

type Options struct {
	Query     string
	Limit     int // max matches, default 100; <0 means unlimited
	Dircproxy bool
	Dialect   logparse.Dialect
}

// Result is a single matching utterance.
type Result struct {
	File       logfiles.LogFile
	Event      logparse.Event
	LineNumber int    // 1-based line in the source log
	Anchor     string // the line's anchor on the rendered day page, "" if none
}

// Stats counts how much work a scan did.
type Stats struct {
	Files   int
	Lines   int
	Matches int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d matches in %d log files with %d lines",
		s.Matches, s.Files, s.Lines)
}

// Search scans dir for the query, case-insensitively. Results come newest
// file first, in log order within each file.
func Search(dir, pattern string, opts Options) ([]Result, Stats, error) {
	var stats Stats
	if opts.Limit == 0 {
		opts.Limit = 100
	}
	query := strings.ToLower(opts.Query)
	if query == "" {
		return nil, stats, nil
	}

	files, err := logfiles.Find(dir, pattern)
	if err != nil {
		return nil, stats, err
	}

	parser := &logparse.Parser{Dialect: opts.Dialect, Dircproxy: opts.Dircproxy}
	var results []Result
	for i := len(files) - 1; i >= 0; i-- {
		stats.Files++
		done, err := scanFile(files[i], parser, query, opts.Limit, &results, &stats)
		if err != nil {
			return nil, stats, err
		}
		if done {
			break
		}
	}
	return results, stats, nil
}

func scanFile(f logfiles.LogFile, parser *logparse.Parser, query string,
	limit int, results *[]Result, stats *Stats) (bool, error) {

	r, err := logparse.OpenLogFile(f.Path)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", f.Path, err)
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	// Every timestamped line advances the sequence, matching or not, so a
	// hit's anchor lands on the same line the rendered page gives it.
	anchors := make(htmlrender.AnchorSequence)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		stats.Lines++
		ev := parser.ParseLine(logparse.DecodeLine(scanner.Bytes()))
		anchor := anchors.Next(ev.Time)
		if !matches(ev, query) {
			continue
		}
		stats.Matches++
		*results = append(*results, Result{File: f, Event: ev, LineNumber: lineNum, Anchor: anchor})
		if limit > 0 && stats.Matches >= limit {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return false, nil
}

func matches(ev logparse.Event, query string) bool {
	text := ev.Text
	if ev.Kind == logparse.Message {
		text = ev.Nick + " " + ev.Text
	}
	return strings.Contains(strings.ToLower(text), query)
}
