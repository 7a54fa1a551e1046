package logparse

import (
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		line string
		want Dialect
	}{
		{"[10:30] <jane> hello", DialectClock},
		{"10:30:45 <jane> hello", DialectClock},
		{"2005-02-04T10:30:45 <jane> hello", DialectISO8601},
		{"[2005-02-04T10:30:45] <jane> hello", DialectISO8601},
		{"[18 Jan 10:30] <jane> hello", DialectDircproxy},
		{"01-Jan-2005 10:30:00  <jane> hello", DialectSupybot},
		{"Jan  5 10:30:45 <jane> hello", DialectSyslog},
		{"Jan 15 10:30:45 <jane> hello", DialectSyslog},
		{"1100000000 <jane> hello", DialectEpoch},
		{"<jane> hello", DialectNone},
		{"*** jane has joined #chan", DialectNone},
		{"", DialectNone},
	}
	for _, tt := range tests {
		if got := Detect(tt.line); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// A dircproxy timestamp starts with two digits; the epoch grammar must not
// steal it.
func TestDetectPriority(t *testing.T) {
	if got := Detect("18 Jan 10:30 <jane> hello"); got != DialectDircproxy {
		t.Errorf("Detect = %v, want dircproxy", got)
	}
}

func TestDialectByName(t *testing.T) {
	for _, name := range []string{"", "auto"} {
		d, err := DialectByName(name)
		if err != nil || d != DialectNone {
			t.Errorf("DialectByName(%q) = %v, %v; want none, nil", name, d, err)
		}
	}
	d, err := DialectByName("supybot")
	if err != nil || d != DialectSupybot {
		t.Errorf("DialectByName(supybot) = %v, %v", d, err)
	}
	if _, err := DialectByName("cuneiform"); err == nil {
		t.Error("DialectByName(cuneiform) should fail")
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Event
	}{
		{
			"plain message",
			"[10:30] <jane> hello world",
			Event{Time: "10:30", Kind: Message, Nick: "jane", Text: "hello world"},
		},
		{
			"message with hostmask",
			"<jane!~jane@example.com> hi",
			Event{Kind: Message, Nick: "jane", Text: "hi"},
		},
		{
			"pointy brackets in text",
			"10:30 <jane> saying <something> weird",
			Event{Time: "10:30", Kind: Message, Nick: "jane", Text: "saying <something> weird"},
		},
		{
			"pointy bracket in nick takes shortest nick",
			"<we>ird> hello",
			Event{Kind: Message, Nick: "we", Text: "ird> hello"},
		},
		{
			"action",
			"[10:30] * jane waves",
			Event{Time: "10:30", Kind: Action, Nick: "jane", Text: "* jane waves"},
		},
		{
			"join",
			"[10:30] *** jane has joined #chan",
			Event{Time: "10:30", Kind: Join, Nick: "jane", Text: "*** jane has joined #chan"},
		},
		{
			"irssi join",
			"10:30 -!- jane [~jane@host] has joined #chan",
			Event{Time: "10:30", Kind: Join, Nick: "jane", Text: "-!- jane [~jane@host] has joined #chan"},
		},
		{
			"part",
			"[10:30] <-- jane has left #chan",
			Event{Time: "10:30", Kind: Part, Nick: "jane", Text: "<-- jane has left #chan"},
		},
		{
			"quit is not part",
			"[10:30] *** jane has quit IRC",
			Event{Time: "10:30", Kind: Quit, Nick: "jane", Text: "*** jane has quit IRC"},
		},
		{
			"nick change",
			"[10:30] *** jane is now known as janet",
			Event{Time: "10:30", Kind: NickChange, Nick: "janet", Text: "*** jane is now known as janet", OldNick: "jane", NewNick: "janet"},
		},
		{
			"server notice",
			"[10:30] --- Topic for #chan set by ops",
			Event{Time: "10:30", Kind: Server, Text: "--- Topic for #chan set by ops"},
		},
		{
			"blank line becomes comment",
			"   \t",
			Event{Kind: Comment},
		},
		{
			"unattributable line becomes other",
			"[10:30] something the parser has never seen",
			Event{Time: "10:30", Kind: Other, Text: "something the parser has never seen"},
		},
		{
			"malformed nick without closing bracket",
			"<jane hello",
			Event{Kind: Other, Text: "<jane hello"},
		},
		{
			"epoch timestamp rewritten as ISO",
			"1100000000 <jane> hello",
			Event{Time: "2004-11-09T11:33:20", Kind: Message, Nick: "jane", Text: "hello"},
		},
		{
			"trailing whitespace trimmed",
			"[10:30] <jane> hello   \r",
			Event{Time: "10:30", Kind: Message, Nick: "jane", Text: "hello"},
		},
	}

	p := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ParseLine(tt.line); got != tt.want {
				t.Errorf("ParseLine(%q)\n got %+v\nwant %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLineDircproxy(t *testing.T) {
	p := &Parser{Dircproxy: true}

	got := p.ParseLine("[18 Jan 10:00] <jane!ident@10.0.0.1> +hello")
	want := Event{Time: "18 Jan 10:00", Kind: Message, Nick: "jane", Text: "hello"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// No marker: text survives untouched.
	got = p.ParseLine("<jane> hello")
	if got.Text != "hello" || got.Nick != "jane" {
		t.Errorf("got %+v", got)
	}
}

func TestParseLineForcedDialect(t *testing.T) {
	// With a forced dialect, other grammars are not tried.
	p := &Parser{Dialect: DialectISO8601}
	got := p.ParseLine("[10:30] <jane> hello")
	if got.Time != "" {
		t.Errorf("clock timestamp recognized under forced iso8601: %+v", got)
	}
	if got.Kind != Other {
		// the unstripped "[10:30] " prefix hides the nick bracket
		t.Errorf("got kind %v, want other", got.Kind)
	}
}

func TestParseAll(t *testing.T) {
	input := strings.Join([]string{
		"[10:30] <jane> hello",
		"",
		"[10:31] * jane waves",
	}, "\n")

	p := &Parser{}
	events, err := p.ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	wantKinds := []Kind{Message, Comment, Action}
	for i, k := range wantKinds {
		if events[i].Kind != k {
			t.Errorf("event %d: kind %v, want %v", i, events[i].Kind, k)
		}
	}
}
