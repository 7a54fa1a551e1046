package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/irclogview/irclogview/internal/logparse"
)

func writeArchive(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	logs := map[string]string{
		"chan.2013-03-17.log": "[10:30] <jane> hello world\n[10:31] <joe> nothing here\n",
		"chan.2013-03-18.log": "[09:00] <joe> hello again\n[09:01] *** jane has joined #chan\n",
	}
	for name, body := range logs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestSearchNewestFileFirst(t *testing.T) {
	dir := writeArchive(t)

	results, stats, err := Search(dir, "*.log", Options{Query: "hello"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if got := results[0].File.Date.Format("2006-01-02"); got != "2013-03-18" {
		t.Errorf("first result from %s, want newest day", got)
	}
	if results[0].Event.Nick != "joe" || results[1].Event.Nick != "jane" {
		t.Errorf("results = %+v", results)
	}
	if stats.Matches != 2 || stats.Files != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	dir := writeArchive(t)
	results, _, err := Search(dir, "*.log", Options{Query: "HELLO"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

// A message matches on its nick too, not just the text.
func TestSearchMatchesNick(t *testing.T) {
	dir := writeArchive(t)
	results, _, err := Search(dir, "*.log", Options{Query: "jane"})
	if err != nil {
		t.Fatal(err)
	}
	// jane's message, plus the join notice mentioning her.
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(results), results)
	}
}

func TestSearchLimit(t *testing.T) {
	dir := writeArchive(t)
	results, stats, err := Search(dir, "*.log", Options{Query: "hello", Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("got %d results, want 1", len(results))
	}
	if stats.Matches != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSearchUnlimited(t *testing.T) {
	dir := writeArchive(t)
	results, _, err := Search(dir, "*.log", Options{Query: "o", Limit: -1})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) < 4 {
		t.Errorf("got %d results, want all lines containing 'o'", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	dir := writeArchive(t)
	results, stats, err := Search(dir, "*.log", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if results != nil || stats.Files != 0 {
		t.Errorf("empty query scanned the archive: %+v %+v", results, stats)
	}
}

// A result's anchor must be the one the rendered page carries, so counting
// includes the non-matching lines that share the timestamp.
func TestSearchAnchors(t *testing.T) {
	dir := t.TempDir()
	body := "[10:30] <jane> needle one\n" +
		"[10:30] <joe> unrelated\n" +
		"[10:30] <jane> needle two\n" +
		"[10:31] <jane> needle three\n"
	if err := os.WriteFile(filepath.Join(dir, "chan.2013-03-18.log"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	results, _, err := Search(dir, "*.log", Options{Query: "needle"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	want := []string{"t10:30", "t10:30-3", "t10:31"}
	for i, w := range want {
		if results[i].Anchor != w {
			t.Errorf("result %d: anchor %q, want %q", i, results[i].Anchor, w)
		}
	}
}

func TestSearchLineNumbers(t *testing.T) {
	dir := writeArchive(t)
	results, _, err := Search(dir, "*.log", Options{Query: "nothing here"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].LineNumber != 2 {
		t.Errorf("line number %d, want 2", results[0].LineNumber)
	}
	if results[0].Event.Kind != logparse.Message {
		t.Errorf("kind = %v", results[0].Event.Kind)
	}
}
