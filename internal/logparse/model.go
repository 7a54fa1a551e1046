package logparse

// Kind classifies what a log line means.
type Kind int

const (
	Message Kind = iota // <nick> said something
	Action              // * nick does something
	Join
	Part
	Quit
	NickChange
	Server  // other *** / --- / -!- notices
	Comment // blank or contentless line, kept verbatim
	Other   // unrecognized line, kept verbatim
)

var kindNames = map[Kind]string{
	Message:    "message",
	Action:     "action",
	Join:       "join",
	Part:       "part",
	Quit:       "quit",
	NickChange: "nickchange",
	Server:     "server",
	Comment:    "comment",
	Other:      "other",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "other"
}

// Event is the parsed form of a single log line. Every input line maps to
// exactly one Event; lines the parser cannot attribute keep their raw text.
type Event struct {
	Time    string // display timestamp, "" when the line carried none
	Kind    Kind
	Nick    string // speaker or affected nick, "" when not attributed
	Text    string
	OldNick string // NickChange only
	NewNick string // NickChange only
}
