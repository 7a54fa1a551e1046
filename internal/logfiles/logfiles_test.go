package logfiles

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		path      string
		wantLink  string
		wantTitle string
	}{
		{"/logs/#chan.2013-03-18.log", "#chan.2013-03-18.log.html", "2013-03-18 (Monday)"},
		{"/logs/chan.20130318.log.gz", "chan.20130318.log.html", "2013-03-18 (Monday)"},
		{"chan-2005-01-02.log", "chan-2005-01-02.log.html", "2005-01-02 (Sunday)"},
	}
	for _, tt := range tests {
		f, err := New(tt.path)
		if err != nil {
			t.Errorf("New(%q): %v", tt.path, err)
			continue
		}
		if f.Link != tt.wantLink {
			t.Errorf("New(%q).Link = %q, want %q", tt.path, f.Link, tt.wantLink)
		}
		if f.Title != tt.wantTitle {
			t.Errorf("New(%q).Title = %q, want %q", tt.path, f.Title, tt.wantTitle)
		}
	}
}

func TestNewRejectsDatelessNames(t *testing.T) {
	for _, path := range []string{"channel.log", "notes.txt", "2013-13-99.log"} {
		if _, err := New(path); err == nil {
			t.Errorf("New(%q) should fail", path)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"chan.2013-03-18.log", "chan.2013-03-18.log.html"},
		{"chan.2013-03-18.log.gz", "chan.2013-03-18.log.html"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindSortsByDate(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"chan.2013-03-19.log",
		"chan.2013-03-17.log",
		"chan.2013-03-18.log",
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := Find(dir, "*.log")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"chan.2013-03-17.log", "chan.2013-03-18.log", "chan.2013-03-19.log"}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d", len(files), len(want))
	}
	for i, w := range want {
		if filepath.Base(files[i].Path) != w {
			t.Errorf("file %d: %s, want %s", i, filepath.Base(files[i].Path), w)
		}
	}
}

func TestUpToDate(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "chan.2013-03-18.log")
	if err := os.WriteFile(logPath, []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := New(logPath)
	if err != nil {
		t.Fatal(err)
	}

	if f.UpToDate(dir) {
		t.Error("up to date without an HTML page")
	}

	htmlPath := filepath.Join(dir, f.Link)
	if err := os.WriteFile(htmlPath, []byte("<html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	os.Chtimes(logPath, now, now)
	os.Chtimes(htmlPath, now.Add(time.Minute), now.Add(time.Minute))
	if !f.UpToDate(dir) {
		t.Error("not up to date with a newer HTML page")
	}

	// Equal mtimes regenerate.
	os.Chtimes(htmlPath, now, now)
	if f.UpToDate(dir) {
		t.Error("up to date with equal mtimes")
	}
}

func TestEnsureCSS(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureCSS(dir, []byte("body {}")); err != nil {
		t.Fatal(err)
	}
	body, err := os.ReadFile(filepath.Join(dir, "irclog.css"))
	if err != nil || string(body) != "body {}" {
		t.Fatalf("css = %q, %v", body, err)
	}

	// An existing stylesheet is never overwritten.
	if err := EnsureCSS(dir, []byte("other")); err != nil {
		t.Fatal(err)
	}
	body, _ = os.ReadFile(filepath.Join(dir, "irclog.css"))
	if string(body) != "body {}" {
		t.Errorf("existing css overwritten: %q", body)
	}
}
