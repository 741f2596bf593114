package artifact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveMissing(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve("unknown")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerializerNotFound))
	assert.Contains(t, err.Error(), `"unknown"`)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	reg := NewRegistry()
	first := BlobSerializer("first")
	second := BlobSerializer("second")

	reg.Register("kind", first)
	reg.Register("kind", second)

	s, err := reg.Resolve("kind")
	require.NoError(t, err)
	a, err := s.Decode([]byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, Kind("second"), a.Kind())
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_MergeAndClone(t *testing.T) {
	base := NewRegistry()
	base.Register("a", BlobSerializer("a"))

	clone := base.Clone()
	clone.Register("b", BlobSerializer("b"))
	assert.False(t, base.Has("b"))

	override := NewRegistry()
	override.Register("a", BlobSerializer("override"))
	base.Merge(override)
	base.Merge(nil)

	s, err := base.Resolve("a")
	require.NoError(t, err)
	a, err := s.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, Kind("override"), a.Kind())
	assert.Equal(t, []Kind{"a", "b"}, clone.Keys())
}

func TestBlobSerializer_RoundTrip(t *testing.T) {
	s := BlobSerializer("ext.weights")
	orig := NewBlob("ext.weights", []byte{0, 1, 2, 255})

	data, err := s.Encode(orig)
	require.NoError(t, err)
	decoded, err := s.Decode(data)
	require.NoError(t, err)

	assert.True(t, orig.Equal(decoded.(*Blob)))
}

type otherArtifact struct{}

func (otherArtifact) Kind() Kind { return "other" }

func TestBlobSerializer_WrongType(t *testing.T) {
	_, err := BlobSerializer("x").Encode(otherArtifact{})

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestKind_IsBuiltin(t *testing.T) {
	assert.True(t, KindTagDict.IsBuiltin())
	assert.True(t, KindModel.IsBuiltin())
	assert.False(t, Kind("ext").IsBuiltin())
}
