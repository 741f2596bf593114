package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PutKeepsInsertionOrder(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Put("b", NewBlob("x", []byte("1"))))
	require.NoError(t, m.Put("a", NewBlob("x", []byte("2"))))
	require.NoError(t, m.Put("c", NewBlob("x", []byte("3"))))

	assert.Equal(t, []string{"b", "a", "c"}, m.Names())
	assert.Equal(t, 3, m.Len())
}

func TestMap_PutReplacesInPlace(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Put("a", NewBlob("x", []byte("old"))))
	require.NoError(t, m.Put("b", NewBlob("x", nil)))
	require.NoError(t, m.Put("a", NewBlob("x", []byte("new"))))

	assert.Equal(t, []string{"a", "b"}, m.Names())
	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got.(*Blob).Data)
}

func TestMap_PutRejectsInvalid(t *testing.T) {
	m := NewMap()
	assert.Error(t, m.Put("", NewBlob("x", nil)))
	assert.Error(t, m.Put("name", nil))
	assert.Equal(t, 0, m.Len())
}

func TestMap_Delete(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Put("a", NewBlob("x", nil)))
	require.NoError(t, m.Put("b", NewBlob("x", nil)))

	m.Delete("a")
	m.Delete("missing")

	assert.Equal(t, []string{"b"}, m.Names())
	_, ok := m.Artifact("a")
	assert.False(t, ok)
}

func TestMap_AllStopsEarly(t *testing.T) {
	m := NewMap()
	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, m.Put(n, NewBlob("x", nil)))
	}

	var seen []string
	for name := range m.All() {
		seen = append(seen, name)
		if name == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMap_Merge(t *testing.T) {
	base := NewMap()
	require.NoError(t, base.Put("a", NewBlob("x", []byte("base"))))

	other := NewMap()
	require.NoError(t, other.Put("a", NewBlob("x", []byte("other"))))
	require.NoError(t, other.Put("b", NewBlob("x", nil)))

	base.Merge(other)
	base.Merge(nil)

	assert.Equal(t, []string{"a", "b"}, base.Names())
	got, _ := base.Get("a")
	assert.Equal(t, []byte("other"), got.(*Blob).Data)
}
