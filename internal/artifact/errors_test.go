package artifact

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *FormatError
		want string
	}{
		{
			name: "reason only",
			err:  &FormatError{Reason: "bad magic"},
			want: "invalid format: bad magic",
		},
		{
			name: "entry and key",
			err:  &FormatError{Entry: "x.bin", Key: "bin", Reason: "no serializer"},
			want: `invalid format: entry "x.bin": type "bin": no serializer`,
		},
		{
			name: "wrapped cause",
			err:  &FormatError{Reason: "read", Err: io.ErrUnexpectedEOF},
			want: "invalid format: read: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrFormat))
		})
	}
}

func TestFormatError_Unwrap(t *testing.T) {
	err := &FormatError{Err: io.ErrUnexpectedEOF}
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestCompatibilityError_ListsTags(t *testing.T) {
	err := &CompatibilityError{Unknown: []string{"NN", "VB"}}

	assert.Equal(t, "tag dictionary contains tags unknown to the model: NN VB", err.Error())
	assert.True(t, errors.Is(err, ErrIncompatible))
	assert.False(t, errors.Is(err, ErrFormat))
}

func TestTypeMismatchError_Message(t *testing.T) {
	err := &TypeMismatchError{Name: "tags.tagdict", Want: "*dictionary.TagDictionary", Got: "*artifact.Blob"}

	assert.Contains(t, err.Error(), `"tags.tagdict"`)
	assert.Contains(t, err.Error(), "*artifact.Blob")
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}
