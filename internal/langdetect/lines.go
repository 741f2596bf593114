package langdetect

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineStream yields lines of text. Read returns io.EOF once the source is exhausted.
type LineStream interface {
	Read() (string, error)
}

// PlainTextLineStream reads newline separated lines of any length from an
// io.Reader.
type PlainTextLineStream struct {
	reader *bufio.Reader
	done   bool
}

// NewPlainTextLineStream wraps r. Line terminators ("\n" or "\r\n") are stripped.
func NewPlainTextLineStream(r io.Reader) *PlainTextLineStream {
	return &PlainTextLineStream{reader: bufio.NewReader(r)}
}

// Read returns the next line. A final line without a terminator is returned
// before io.EOF.
func (p *PlainTextLineStream) Read() (string, error) {
	if p.done {
		return "", io.EOF
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		p.done = true
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// SliceLineStream yields the elements of a slice.
type SliceLineStream struct {
	lines []string
	pos   int
}

// NewSliceLineStream creates a stream over lines.
func NewSliceLineStream(lines ...string) *SliceLineStream {
	return &SliceLineStream{lines: lines}
}

// Read returns the next element.
func (s *SliceLineStream) Read() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}
