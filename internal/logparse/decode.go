package logparse

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/charmap"
)

// DecodeLine converts one raw log line to a string. XChat's hybrid encoding
// scheme means a file can contain both UTF-8 and legacy 8-bit text: valid
// UTF-8 is taken as-is, anything else falls back to CP1252 byte-for-byte.
// Decoding never fails.
func DecodeLine(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		// CP1252 maps every byte; this is unreachable, but stay safe.
		return string(b)
	}
	return string(decoded)
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	gerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gerr
}

// OpenLogFile opens a log file for parsing, transparently decompressing
// .gz archives. The file is opened as raw bytes; decoding happens per line
// in DecodeLine.
func OpenLogFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipFile{Reader: zr, f: f}, nil
}

// ParseFile opens, decodes and parses a whole log file.
func (p *Parser) ParseFile(path string) ([]Event, error) {
	f, err := OpenLogFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.ParseAll(f)
}
