package factory

import (
	"slices"

	"github.com/born-ml/modelkit/internal/artifact"
)

// Reserved entry names.
const (
	ModelEntryName   = "tagger.model"
	TagDictEntryName = "tags.tagdict"
	NGramEntryName   = "ngram.dictionary"
)

// Factory supplies serializers and default artifacts for a bundle and validates a
// loaded artifact set.
type Factory interface {
	// Name returns the extension name this factory is registered under, or "" for
	// the built-in default.
	Name() string

	// Serializers returns the serializers this factory adds to the bundle defaults.
	// Entries override defaults with the same key.
	Serializers() *artifact.Registry

	// ArtifactMap returns the artifacts the factory holds in memory, keyed by
	// their entry names. Absent values are omitted.
	ArtifactMap() *artifact.Map

	// Validate checks the attached artifacts for mutual consistency.
	Validate() error

	// Attach sets the read-only source artifacts are resolved from.
	Attach(p artifact.Provider)
}

// Base implements artifact lookup and caching for factories. The zero value is
// ready to use.
type Base struct {
	provider artifact.Provider
	values   map[string]artifact.Artifact // set in memory
	cache    map[string]artifact.Artifact // resolved from provider
	order    []string
}

var _ artifact.Provider = (*Base)(nil)

// Name returns "".
func (b *Base) Name() string {
	return ""
}

// Serializers returns an empty registry.
func (b *Base) Serializers() *artifact.Registry {
	return artifact.NewRegistry()
}

// ArtifactMap returns every value held in memory, whether set directly or already
// resolved from the provider.
func (b *Base) ArtifactMap() *artifact.Map {
	m := artifact.NewMap()
	for _, name := range b.order {
		if a, ok := b.held(name); ok {
			_ = m.Put(name, a) // held never returns nil values
		}
	}
	return m
}

// Validate accepts any artifact set.
func (b *Base) Validate() error {
	return nil
}

// Attach sets the provider and drops values cached from a previous one.
func (b *Base) Attach(p artifact.Provider) {
	b.provider = p
	clear(b.cache)
}

// Provider returns the attached provider, or nil.
func (b *Base) Provider() artifact.Provider {
	return b.provider
}

// Artifact resolves name from the in-memory values, then the cache, then the
// provider. A value found in the provider is cached.
func (b *Base) Artifact(name string) (artifact.Artifact, bool) {
	if a, ok := b.held(name); ok {
		return a, true
	}
	if b.provider == nil {
		return nil, false
	}
	a, ok := b.provider.Artifact(name)
	if !ok || a == nil {
		return nil, false
	}
	if b.cache == nil {
		b.cache = make(map[string]artifact.Artifact)
	}
	b.cache[name] = a
	b.track(name)
	return a, true
}

// Set installs an in-memory value, replacing any previous one. A nil value is the
// same as Forget.
func (b *Base) Set(name string, a artifact.Artifact) {
	if a == nil {
		b.Forget(name)
		return
	}
	if b.values == nil {
		b.values = make(map[string]artifact.Artifact)
	}
	b.values[name] = a
	delete(b.cache, name)
	b.track(name)
}

// Forget drops the in-memory and cached value of name so the next lookup goes to
// the provider.
func (b *Base) Forget(name string) {
	delete(b.values, name)
	delete(b.cache, name)
}

func (b *Base) held(name string) (artifact.Artifact, bool) {
	if a, ok := b.values[name]; ok {
		return a, true
	}
	a, ok := b.cache[name]
	return a, ok
}

func (b *Base) track(name string) {
	if !slices.Contains(b.order, name) {
		b.order = append(b.order, name)
	}
}
