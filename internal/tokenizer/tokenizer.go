package tokenizer

import (
	"fmt"
	"strings"
)

// WhitespaceName is the name of the Whitespace tokenizer. New also accepts "".
const WhitespaceName = "whitespace"

// Tokenizer splits text into tokens.
type Tokenizer interface {
	// Tokenize returns the tokens of text in order.
	Tokenize(text string) ([]string, error)

	// Name returns the name New accepts to rebuild this tokenizer.
	Name() string
}

// Whitespace splits text on runs of Unicode white space.
type Whitespace struct{}

// Tokenize implements Tokenizer.
func (Whitespace) Tokenize(text string) ([]string, error) {
	return strings.Fields(text), nil
}

// Name returns WhitespaceName.
func (Whitespace) Name() string {
	return WhitespaceName
}

// New returns the tokenizer called name: Whitespace for "" or "whitespace",
// otherwise a TikToken for the encoding or model name.
func New(name string) (Tokenizer, error) {
	if name == "" || name == WhitespaceName {
		return Whitespace{}, nil
	}

	tok, err := NewTikToken(name)
	if err == nil {
		return tok, nil
	}
	if byModel, modelErr := NewTikTokenForModel(name); modelErr == nil {
		return byModel, nil
	}
	return nil, fmt.Errorf("unknown tokenizer %q: %w", name, err)
}
