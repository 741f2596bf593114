package langdetect

import (
	"errors"
)

// ErrEmptyLanguage is returned when a sample is built without a language code.
var ErrEmptyLanguage = errors.New("language code must not be empty")

// Language identifies a language by code, for example "en" or "pt-BR".
type Language struct {
	Code string
}

// String returns the code.
func (l Language) String() string {
	return l.Code
}

// Sample is one piece of training text labeled with its language.
// Two samples are equal when both language and context are equal.
type Sample struct {
	Language Language
	Context  string
}

// NewSample creates a sample. The language code must not be empty.
func NewSample(lang Language, context string) (*Sample, error) {
	if lang.Code == "" {
		return nil, ErrEmptyLanguage
	}
	return &Sample{Language: lang, Context: context}, nil
}

// String formats the sample the way it is read: code, tab, context.
func (s Sample) String() string {
	return s.Language.Code + "\t" + s.Context
}
