// Package tokenizer splits text into tokens for dictionary lookups.
//
// Two tokenizers are provided:
//   - Whitespace: splits on Unicode white space
//   - TikToken: BPE pieces of an OpenAI encoding (cl100k_base, p50k_base, r50k_base)
//
// A bundle records the tokenizer name in its manifest and New rebuilds it on load:
//
//	tok, err := tokenizer.New("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tokens, err := tok.Tokenize("Hello, world!")
package tokenizer
