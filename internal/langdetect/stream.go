package langdetect

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/modelkit/internal/artifact"
)

// ErrExhausted is wrapped by the error returned when the line source has no more
// lines.
var ErrExhausted = errors.New("empty lines, or lines with only a category string are not allowed")

// SampleStream reads samples from a LineStream. It is not safe for concurrent use.
type SampleStream struct {
	lines  LineStream
	closed error
}

// NewSampleStream creates a sample stream over lines.
func NewSampleStream(lines LineStream) *SampleStream {
	return &SampleStream{lines: lines}
}

// Read returns the next sample.
//
// A line is split at its first tab. If that tab is not the first character, the
// text before it is the language code and everything after it is the context,
// which may be empty or contain more tabs. Any other line yields (nil, nil).
//
// When the source is exhausted Read returns a *artifact.FormatError wrapping
// ErrExhausted, and keeps returning it.
func (s *SampleStream) Read() (*Sample, error) {
	if s.closed != nil {
		return nil, s.closed
	}

	line, err := s.lines.Read()
	if errors.Is(err, io.EOF) {
		s.closed = &artifact.FormatError{Err: ErrExhausted}
		return nil, s.closed
	}
	if err != nil {
		return nil, fmt.Errorf("read sample line: %w", err)
	}

	code, context, ok := strings.Cut(line, "\t")
	if !ok || code == "" {
		return nil, nil
	}
	return &Sample{Language: Language{Code: code}, Context: context}, nil
}

// Closed reports whether the underlying source has been exhausted.
func (s *SampleStream) Closed() bool {
	return s.closed != nil
}

// ReadAll reads samples until the source is exhausted and returns them together
// with the number of skipped lines. Exhaustion ends the read without error.
func ReadAll(s *SampleStream) (samples []Sample, skipped int, err error) {
	for {
		sample, err := s.Read()
		if errors.Is(err, ErrExhausted) {
			return samples, skipped, nil
		}
		if err != nil {
			return samples, skipped, err
		}
		if sample == nil {
			skipped++
			continue
		}
		samples = append(samples, *sample)
	}
}
