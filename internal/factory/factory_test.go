package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/modelkit/internal/artifact"
)

// countingProvider records how often each name is looked up.
type countingProvider struct {
	m     *artifact.Map
	calls map[string]int
}

func newCountingProvider(m *artifact.Map) *countingProvider {
	return &countingProvider{m: m, calls: make(map[string]int)}
}

func (p *countingProvider) Artifact(name string) (artifact.Artifact, bool) {
	p.calls[name]++
	return p.m.Artifact(name)
}

func TestBase_ZeroValue(t *testing.T) {
	var b Base

	_, ok := b.Artifact("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, b.ArtifactMap().Len())
	assert.NoError(t, b.Validate())
	assert.Equal(t, 0, b.Serializers().Len())
	assert.Empty(t, b.Name())
}

func TestBase_CachesProviderLookups(t *testing.T) {
	m := artifact.NewMap()
	require.NoError(t, m.Put("x", artifact.NewBlob("ext", []byte("1"))))
	p := newCountingProvider(m)

	var b Base
	b.Attach(p)

	for range 3 {
		a, ok := b.Artifact("x")
		require.True(t, ok)
		assert.Equal(t, artifact.Kind("ext"), a.Kind())
	}
	assert.Equal(t, 1, p.calls["x"])

	_, ok := b.Artifact("missing")
	assert.False(t, ok)
	_, _ = b.Artifact("missing")
	assert.Equal(t, 2, p.calls["missing"])
}

func TestBase_SetOverridesProvider(t *testing.T) {
	m := artifact.NewMap()
	require.NoError(t, m.Put("x", artifact.NewBlob("from-provider", nil)))

	var b Base
	b.Attach(m)
	b.Set("x", artifact.NewBlob("in-memory", nil))

	a, _ := b.Artifact("x")
	assert.Equal(t, artifact.Kind("in-memory"), a.Kind())

	b.Forget("x")
	a, _ = b.Artifact("x")
	assert.Equal(t, artifact.Kind("from-provider"), a.Kind())

	b.Set("x", nil)
	assert.Equal(t, 0, b.ArtifactMap().Len())
}

func TestBase_AttachClearsCache(t *testing.T) {
	first := artifact.NewMap()
	require.NoError(t, first.Put("x", artifact.NewBlob("first", nil)))
	second := artifact.NewMap()
	require.NoError(t, second.Put("x", artifact.NewBlob("second", nil)))

	var b Base
	b.Attach(first)
	_, _ = b.Artifact("x")
	b.Attach(second)

	a, _ := b.Artifact("x")
	assert.Equal(t, artifact.Kind("second"), a.Kind())
	assert.Same(t, second, b.Provider())
}

func TestBase_ArtifactMapHoldsResolvedValues(t *testing.T) {
	m := artifact.NewMap()
	require.NoError(t, m.Put("loaded", artifact.NewBlob("ext", nil)))
	require.NoError(t, m.Put("untouched", artifact.NewBlob("ext", nil)))

	var b Base
	b.Attach(m)
	b.Set("memory", artifact.NewBlob("ext", nil))
	_, _ = b.Artifact("loaded")

	assert.Equal(t, []string{"memory", "loaded"}, b.ArtifactMap().Names())
}
