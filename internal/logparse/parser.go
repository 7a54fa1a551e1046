package logparse

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

var (
	nickRE          = regexp.MustCompile(`^<(.*?)(!.*?)?>\s`)
	dircproxyNickRE = regexp.MustCompile(`^<(.*?)(!.*)?>\s[+-]?`)
	joinRE          = regexp.MustCompile(`^(?:\*\*\*|-->|-!-)\s.*joined`)
	partQuitRE      = regexp.MustCompile(`^(?:\*\*\*|<--|-!-)\s.*(quit|left)`)
	servmsgRE       = regexp.MustCompile(`^(?:\*\*\*|---|-!-)\s`)
	nickChangeRE    = regexp.MustCompile(`^(?:\*\*\*|---|-!-)\s+(.*?) (?:are|is) now known as (.*)`)
	noticeNickRE    = regexp.MustCompile(`^(?:\*\*\*|-->|<--|---|-!-)\s+([^\s!(]+)`)
)

// Parser classifies decoded log lines into events. The zero value
// auto-detects the timestamp dialect per line.
type Parser struct {
	// Dialect forces a single timestamp grammar. DialectNone means
	// auto-detection (a file may legitimately mix formats).
	Dialect Dialect

	// Dircproxy strips ident/IP suffixes from nicks and a single leading
	// + or - marker from message text.
	Dircproxy bool
}

// ParseLine maps one log line to exactly one event. Malformed lines are
// never an error: they degrade to Comment (blank) or Other (unattributable)
// events carrying the raw text.
func (p *Parser) ParseLine(raw string) Event {
	line := strings.TrimRight(raw, " \t\r\n")
	if line == "" {
		return Event{Kind: Comment, Text: line}
	}

	d := p.Dialect
	if d == DialectNone {
		d = Detect(line)
	}
	ts, rest := splitTimestamp(line, d)

	nre := nickRE
	if p.Dircproxy {
		nre = dircproxyNickRE
	}
	if m := nre.FindStringSubmatch(rest); m != nil {
		return Event{
			Time: ts,
			Kind: Message,
			Nick: m[1],
			Text: rest[len(m[0]):],
		}
	}

	if strings.HasPrefix(rest, "* ") || strings.HasPrefix(rest, "*\t") {
		return Event{Time: ts, Kind: Action, Nick: actionNick(rest), Text: rest}
	}
	if joinRE.MatchString(rest) {
		return Event{Time: ts, Kind: Join, Nick: noticeNick(rest), Text: rest}
	}
	if m := partQuitRE.FindStringSubmatch(rest); m != nil {
		kind := Part
		if m[1] == "quit" {
			kind = Quit
		}
		return Event{Time: ts, Kind: kind, Nick: noticeNick(rest), Text: rest}
	}
	if m := nickChangeRE.FindStringSubmatch(rest); m != nil {
		return Event{
			Time:    ts,
			Kind:    NickChange,
			Nick:    m[2],
			Text:    rest,
			OldNick: m[1],
			NewNick: m[2],
		}
	}
	if servmsgRE.MatchString(rest) {
		return Event{Time: ts, Kind: Server, Text: rest}
	}

	return Event{Time: ts, Kind: Other, Text: rest}
}

// ParseAll decodes and parses every line of r, one event per line.
func (p *Parser) ParseAll(r io.Reader) ([]Event, error) {
	var events []Event
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		events = append(events, p.ParseLine(DecodeLine(scanner.Bytes())))
	}
	return events, scanner.Err()
}

func actionNick(line string) string {
	fields := strings.Fields(line)
	if len(fields) > 1 {
		return fields[1]
	}
	return ""
}

func noticeNick(line string) string {
	if m := noticeNickRE.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}
