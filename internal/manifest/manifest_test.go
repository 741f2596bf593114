package manifest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/modelkit/internal/artifact"
)

func TestNew(t *testing.T) {
	m := New("tagger", "en")

	assert.Equal(t, Version, m.ManifestVersion)
	assert.NotEqual(t, uuid.Nil, m.ArchiveID)
	assert.Equal(t, artifact.KindManifest, m.Kind())
	assert.NoError(t, m.Validate())
}

func TestSerializer_RoundTrip(t *testing.T) {
	m := New("tagger", "pt")
	m.Factory = "acme.upper"
	m.Tokenizer = "cl100k_base"
	m.SetProperty("trainer", "maxent")

	data, err := Serializer.Encode(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), "factory: acme.upper")

	decoded, err := Serializer.Decode(data)
	require.NoError(t, err)
	got := decoded.(*Manifest)
	assert.True(t, m.Equal(got))

	v, ok := got.Property("trainer")
	assert.True(t, ok)
	assert.Equal(t, "maxent", v)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"not yaml", "component: [unclosed", "failed to parse manifest"},
		{"no version", "component: tagger\n", "missing manifest_version"},
		{"future version", "manifest_version: \"9.0\"\ncomponent: tagger\n", "unsupported manifest version"},
		{"no component", "manifest_version: \"1.0\"\n", "missing component"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, artifact.ErrFormat)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSerializer_WrongType(t *testing.T) {
	_, err := Serializer.Encode(artifact.NewBlob("x", nil))
	assert.ErrorIs(t, err, artifact.ErrTypeMismatch)
}
