// Package tokenizer splits text into tokens for dictionary lookups.
//
// Supported tokenizers:
//   - Whitespace: splits on Unicode white space
//   - TikToken: OpenAI BPE encodings (cl100k_base, p50k_base, r50k_base)
//
// Example usage:
//
//	import "github.com/born-ml/modelkit/tokenizer"
//
//	tok, err := tokenizer.New("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens, err := tok.Tokenize("Hello, world!")
package tokenizer

import (
	"github.com/born-ml/modelkit/internal/tokenizer"
)

// Tokenizer splits text into tokens.
type Tokenizer = tokenizer.Tokenizer

// Whitespace splits text on white space.
type Whitespace = tokenizer.Whitespace

// WhitespaceName is the name of the Whitespace tokenizer.
const WhitespaceName = tokenizer.WhitespaceName

// New returns the tokenizer called name.
func New(name string) (Tokenizer, error) {
	return tokenizer.New(name)
}

// NewTikToken creates a new TikToken tokenizer with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (Tokenizer, error) {
	tok, err := tokenizer.NewTikToken(encodingName)
	if err != nil {
		return nil, err
	}
	return tok, nil
}

// NewTikTokenForModel creates a TikToken tokenizer for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (Tokenizer, error) {
	tok, err := tokenizer.NewTikTokenForModel(modelName)
	if err != nil {
		return nil, err
	}
	return tok, nil
}
