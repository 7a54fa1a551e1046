package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chan.2013-03-18.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderFileWholeFile(t *testing.T) {
	path := writeLog(t,
		"[10:30] <jane> hello",
		"[10:31] <joe> hi there",
		"[10:32] * jane waves",
	)

	content, hit, err := RenderFile(path, Options{HitLine: 2, Context: -1})
	if err != nil {
		t.Fatal(err)
	}
	if hit < 0 {
		t.Error("hit line not located")
	}
	for _, want := range []string{"<jane>", "<joe>", "hi there", path} {
		if !strings.Contains(content, want) {
			t.Errorf("preview missing %q", want)
		}
	}
	if strings.Contains(content, "lines before") || strings.Contains(content, "lines after") {
		t.Error("whole-file preview shows elision markers")
	}
}

func TestRenderFileContextWindow(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, "[10:30] <jane> filler")
	}
	lines[25] = "[10:30] <jane> needle"
	path := writeLog(t, lines...)

	content, hit, err := RenderFile(path, Options{HitLine: 26, Context: 2})
	if err != nil {
		t.Fatal(err)
	}
	if hit < 0 {
		t.Error("hit line not located")
	}
	if !strings.Contains(content, "needle") {
		t.Error("hit line missing from window")
	}
	if !strings.Contains(content, "lines before") || !strings.Contains(content, "lines after") {
		t.Error("elision markers missing")
	}
	// 2 lines of context either side plus the hit.
	if got := strings.Count(content, "filler"); got != 4 {
		t.Errorf("window has %d filler lines, want 4", got)
	}
}

func TestRenderFileHighlightsQuery(t *testing.T) {
	path := writeLog(t, "[10:30] <jane> the needle is here")
	content, _, err := RenderFile(path, Options{HitLine: 1, Context: -1, Query: "NEEDLE"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, colorBold+"needle"+colorReset) {
		t.Error("query match not highlighted")
	}
}

// Case mapping may change UTF-8 byte length: Ⱥ (two bytes) lowercases to
// ⱥ (three bytes). A match after such a rune must not slice out of range.
func TestHighlightKeywordsLengthChangingRune(t *testing.T) {
	got := highlightKeywords("Ⱥ abc", "abc")
	want := "Ⱥ " + colorBold + "abc" + colorReset
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlightKeywordsFoldsMultibyte(t *testing.T) {
	got := highlightKeywords("say Ⱥbc now", "ⱥbc")
	want := "say " + colorBold + "Ⱥbc" + colorReset + " now"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHighlightKeywordsNoMatch(t *testing.T) {
	if got := highlightKeywords("nothing here", "zzz"); got != "nothing here" {
		t.Errorf("got %q", got)
	}
}

func TestRenderFileLengthChangingRune(t *testing.T) {
	path := writeLog(t, "[10:30] <jane> Ⱥ needle after it")
	content, _, err := RenderFile(path, Options{HitLine: 1, Context: -1, Query: "needle"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, colorBold+"needle"+colorReset) {
		t.Error("match after length-changing rune not highlighted")
	}
}

func TestRenderFileMissing(t *testing.T) {
	if _, _, err := RenderFile(filepath.Join(t.TempDir(), "nope.log"), Options{}); err == nil {
		t.Error("missing file accepted")
	}
}

func TestWrapLineSkipsAnsi(t *testing.T) {
	line := "\033[1;36mabcdef\033[0m"
	got := wrapLine(line, 3)
	if len(got) != 2 {
		t.Fatalf("got %d pieces, want 2: %q", len(got), got)
	}
	// Escape codes carry no width; only the six letters count.
	if !strings.Contains(got[0], "abc") || !strings.Contains(got[1], "def") {
		t.Errorf("pieces = %q", got)
	}
}

func TestWrapLineNoWidth(t *testing.T) {
	got := wrapLine("anything at all", 0)
	if len(got) != 1 || got[0] != "anything at all" {
		t.Errorf("got %q", got)
	}
}
