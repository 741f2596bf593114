package bundle

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/artifact"
	"github.com/born-ml/modelkit/internal/dictionary"
	"github.com/born-ml/modelkit/internal/factory"
	"github.com/born-ml/modelkit/internal/manifest"
	"github.com/born-ml/modelkit/internal/model"
	"github.com/born-ml/modelkit/internal/tokenizer"
)

// Bundle is a model together with its factory and auxiliary artifacts.
type Bundle struct {
	manifest  *manifest.Manifest
	model     model.Model
	factory   factory.Tagger
	artifacts *artifact.Map
	logger    *zap.Logger

	tokOnce sync.Once
	tok     tokenizer.Tokenizer
	tokErr  error
}

// DefaultSerializers returns the serializers every bundle starts from. Factory
// serializers are merged over them.
func DefaultSerializers() *artifact.Registry {
	reg := artifact.NewRegistry()
	reg.Register(artifact.KindModel, model.Serializer)
	reg.Register(artifact.KindDictionary, dictionary.DictionarySerializer)
	reg.Register(artifact.KindManifest, manifest.Serializer)
	return reg
}

// New builds a bundle for component and language from a model and a factory. A nil
// factory means the default TaggerFactory.
//
// The artifact map holds the manifest, the model and then the factory's artifacts.
// It is attached to the factory and validated.
func New(component, language string, m model.Model, f factory.Tagger, opts ...Option) (*Bundle, error) {
	o := buildOptions(opts)
	if m == nil {
		return nil, fmt.Errorf("bundle %q: model must not be nil", component)
	}
	if f == nil {
		f = factory.NewTaggerFactory(nil, nil)
	}

	man := manifest.New(component, language)
	man.Factory = f.Name()
	man.Tokenizer = o.tokenizer
	for k, v := range o.properties {
		man.SetProperty(k, v)
	}
	if err := man.Validate(); err != nil {
		return nil, err
	}

	artifacts := artifact.NewMap()
	if err := artifacts.Put(manifest.EntryName, man); err != nil {
		return nil, err
	}
	if err := artifacts.Put(factory.ModelEntryName, m); err != nil {
		return nil, err
	}
	for name, a := range f.ArtifactMap().All() {
		if name == manifest.EntryName || name == factory.ModelEntryName {
			return nil, &artifact.FormatError{Entry: name, Reason: "factory artifact uses a reserved entry name"}
		}
		if err := artifacts.Put(name, a); err != nil {
			return nil, err
		}
	}

	b := newBundle(man, m, f, artifacts, o.logger)
	f.Attach(artifacts)
	if err := f.Validate(); err != nil {
		b.logger.Warn("bundle validation failed", zap.Error(err))
		return nil, fmt.Errorf("bundle %q: %w", component, err)
	}
	return b, nil
}

func newBundle(man *manifest.Manifest, m model.Model, f factory.Tagger, artifacts *artifact.Map, logger *zap.Logger) *Bundle {
	return &Bundle{
		manifest:  man,
		model:     m,
		factory:   f,
		artifacts: artifacts,
		logger:    logger.With(zap.String("component", "bundle"), zap.String("bundle", man.Component)),
	}
}

// Manifest returns the manifest.
func (b *Bundle) Manifest() *manifest.Manifest {
	return b.manifest
}

// Model returns the model.
func (b *Bundle) Model() model.Model {
	return b.model
}

// Factory returns the factory the bundle was built or loaded with.
func (b *Bundle) Factory() factory.Tagger {
	return b.factory
}

// Language returns the language code from the manifest.
func (b *Bundle) Language() string {
	return b.manifest.Language
}

// Artifacts returns every artifact that is saved with the bundle: the loaded or
// constructed entries overlaid with the factory's current values.
func (b *Bundle) Artifacts() *artifact.Map {
	m := artifact.NewMap()
	m.Merge(b.artifacts)
	m.Merge(b.factory.ArtifactMap())
	return m
}

// Serializers returns the default serializers merged with the factory's.
func (b *Bundle) Serializers() *artifact.Registry {
	reg := DefaultSerializers()
	reg.Merge(b.factory.Serializers())
	return reg
}

// Names returns the entry names in save order.
func (b *Bundle) Names() []string {
	return b.Artifacts().Names()
}

// Tokenizer returns the tokenizer named in the manifest. It is built on first use.
func (b *Bundle) Tokenizer() (tokenizer.Tokenizer, error) {
	b.tokOnce.Do(func() {
		b.tok, b.tokErr = tokenizer.New(b.manifest.Tokenizer)
	})
	return b.tok, b.tokErr
}
