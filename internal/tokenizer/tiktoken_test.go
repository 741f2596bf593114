package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadTikToken skips the test when the encoding cannot be fetched.
func loadTikToken(t *testing.T, encoding string) *TikToken {
	t.Helper()
	tok, err := NewTikToken(encoding)
	if err != nil {
		t.Skipf("tiktoken encoding %q unavailable: %v", encoding, err)
	}
	return tok
}

func TestTikToken_NewTikToken(t *testing.T) {
	tok := loadTikToken(t, "cl100k_base")
	assert.Equal(t, "cl100k_base", tok.Name())

	_, err := NewTikToken("invalid_encoding_xyz")
	assert.Error(t, err)
}

func TestTikToken_Tokenize(t *testing.T) {
	tok := loadTikToken(t, "cl100k_base")

	tests := []struct {
		name string
		text string
	}{
		{
			name: "simple text",
			text: "Hello, world!",
		},
		{
			name: "with newlines",
			text: "Hello\nWorld\n",
		},
		{
			name: "unicode",
			text: "Hello 世界! 🌍",
		},
		{
			name: "long text",
			text: "The quick brown fox jumps over the lazy dog. " +
				"This is a longer piece of text to test tokenization.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces, err := tok.Tokenize(tt.text)
			require.NoError(t, err)
			require.NotEmpty(t, pieces)

			// Pieces cover the input without gaps.
			assert.Equal(t, tt.text, strings.Join(pieces, ""))
		})
	}
}

func TestTikToken_EmptyInput(t *testing.T) {
	tok := loadTikToken(t, "cl100k_base")

	pieces, err := tok.Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, pieces)
}

func TestTikToken_NewTikTokenForModel(t *testing.T) {
	loadTikToken(t, "cl100k_base")

	tok, err := NewTikTokenForModel("gpt-4")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", tok.Name())

	_, err = NewTikTokenForModel("invalid-model-xyz")
	assert.Error(t, err)
}
