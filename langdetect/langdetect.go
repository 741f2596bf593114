// Package langdetect reads language detection training samples from
// tab-delimited text.
//
// Example usage:
//
//	stream := langdetect.NewSampleStream(langdetect.NewPlainTextLineStream(file))
//	for {
//	    sample, err := stream.Read()
//	    if errors.Is(err, langdetect.ErrExhausted) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if sample == nil {
//	        continue // line without a label
//	    }
//	    fmt.Println(sample.Language, sample.Context)
//	}
package langdetect

import (
	"io"

	"github.com/born-ml/modelkit/internal/langdetect"
)

// Language identifies a language by code.
type Language = langdetect.Language

// Sample is a piece of text labeled with its language.
type Sample = langdetect.Sample

// LineStream yields lines of text.
type LineStream = langdetect.LineStream

// SampleStream reads samples from a LineStream.
type SampleStream = langdetect.SampleStream

// Errors.
var (
	ErrExhausted     = langdetect.ErrExhausted
	ErrEmptyLanguage = langdetect.ErrEmptyLanguage
)

// NewSample creates a sample. The language code must not be empty.
func NewSample(lang Language, context string) (*Sample, error) {
	return langdetect.NewSample(lang, context)
}

// NewPlainTextLineStream reads lines from r.
func NewPlainTextLineStream(r io.Reader) LineStream {
	return langdetect.NewPlainTextLineStream(r)
}

// NewSliceLineStream yields the given lines.
func NewSliceLineStream(lines ...string) LineStream {
	return langdetect.NewSliceLineStream(lines...)
}

// NewSampleStream creates a sample stream over lines.
func NewSampleStream(lines LineStream) *SampleStream {
	return langdetect.NewSampleStream(lines)
}

// ReadAll reads every sample and counts the skipped lines.
func ReadAll(s *SampleStream) ([]Sample, int, error) {
	return langdetect.ReadAll(s)
}
