package logparse

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Dialect identifies the timestamp grammar a log line was written in.
// Different IRC loggers (classic clients, dircproxy, supybot, ii, ...)
// prefix lines differently; a single file may mix dialects.
type Dialect int

const (
	DialectNone      Dialect = iota // no timestamp at all
	DialectClock                    // [HH:MM] or HH:MM:SS, bracketed or bare
	DialectISO8601                  // YYYY-MM-DDTHH:MM:SS
	DialectDircproxy                // [DD Mon HH:MM]
	DialectSupybot                  // DD-Mon-YYYY HH:MM:SS
	DialectSyslog                   // Mon DD HH:MM:SS
	DialectEpoch                    // unix epoch prefix (ii-style logger)
)

var dialectNames = map[Dialect]string{
	DialectNone:      "none",
	DialectClock:     "clock",
	DialectISO8601:   "iso8601",
	DialectDircproxy: "dircproxy",
	DialectSupybot:   "supybot",
	DialectSyslog:    "syslog",
	DialectEpoch:     "epoch",
}

func (d Dialect) String() string {
	if s, ok := dialectNames[d]; ok {
		return s
	}
	return "none"
}

// DialectByName resolves a user-supplied dialect name. The empty string
// means auto-detection.
func DialectByName(name string) (Dialect, error) {
	if name == "" || name == "auto" {
		return DialectNone, nil
	}
	for d, s := range dialectNames {
		if s == name && d != DialectNone {
			return d, nil
		}
	}
	return DialectNone, fmt.Errorf("unknown dialect: %s", name)
}

var (
	clockRE     = regexp.MustCompile(`^\[?(\d\d:\d\d(?::\d\d)?)\]? +`)
	iso8601RE   = regexp.MustCompile(`^\[?(\d{4}-\d{2}-\d{2}T\d\d:\d\d(?::\d\d)?)\]? +`)
	dircproxyRE = regexp.MustCompile(`^\[?(\d{2} [A-Z][a-z]{2} \d\d:\d\d(?::\d\d)?)\]? +`)
	supybotRE   = regexp.MustCompile(`^\[?(\d{2}-[A-Z][a-z]{2}-\d{4} \d\d:\d\d(?::\d\d)?)\]? +`)
	syslogRE    = regexp.MustCompile(`^\[?([A-Z][a-z]{2} [ \d]\d \d\d:\d\d(?::\d\d)?)\]? +`)
	epochRE     = regexp.MustCompile(`^(\d+) +`)
)

var dialectRegexps = []struct {
	dialect Dialect
	re      *regexp.Regexp
}{
	{DialectClock, clockRE},
	{DialectISO8601, iso8601RE},
	{DialectDircproxy, dircproxyRE},
	{DialectSupybot, supybotRE},
	{DialectSyslog, syslogRE},
	{DialectEpoch, epochRE},
}

// Detect reports which timestamp dialect the line starts with. The priority
// order is fixed; the first matching grammar wins. A line matching nothing
// reports DialectNone, which is not an error.
func Detect(line string) Dialect {
	for _, d := range dialectRegexps {
		if d.re.MatchString(line) {
			return d.dialect
		}
	}
	return DialectNone
}

// splitTimestamp strips the dialect's timestamp prefix from the line and
// returns the display timestamp plus the remaining text. For DialectEpoch
// the numeric prefix is rewritten as an ISO 8601 UTC timestamp.
func splitTimestamp(line string, d Dialect) (ts, rest string) {
	if d == DialectNone {
		return "", line
	}
	for _, dr := range dialectRegexps {
		if dr.dialect != d {
			continue
		}
		m := dr.re.FindStringSubmatch(line)
		if m == nil {
			return "", line
		}
		ts = m[1]
		rest = line[len(m[0]):]
		if d == DialectEpoch {
			secs, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				return "", line
			}
			ts = time.Unix(secs, 0).UTC().Format("2006-01-02T15:04:05")
		}
		return ts, rest
	}
	return "", line
}
