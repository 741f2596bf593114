// Package factory provides tagger factories and the registry extensions are
// resolved from by name.
//
// An extension embeds *factory.TaggerFactory, overrides what it needs and
// registers a constructor:
//
//	type StopwordTagger struct {
//	    *factory.TaggerFactory
//	}
//
//	func (s *StopwordTagger) Name() string { return "StopwordTagger" }
//
//	func init() {
//	    factory.RegisterExtension("StopwordTagger",
//	        func(ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (factory.Tagger, error) {
//	            return &StopwordTagger{factory.NewTaggerFactory(ngram, tags)}, nil
//	        })
//	}
package factory

import (
	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/dictionary"
	"github.com/born-ml/modelkit/internal/factory"
	"github.com/born-ml/modelkit/internal/model"
)

// Reserved entry names.
const (
	ModelEntryName   = factory.ModelEntryName
	TagDictEntryName = factory.TagDictEntryName
	NGramEntryName   = factory.NGramEntryName
)

// Factory is the contract of every bundle factory.
type Factory = factory.Factory

// Tagger is the contract of a tagger factory.
type Tagger = factory.Tagger

// Base implements artifact lookup for factories.
type Base = factory.Base

// TaggerFactory is the default Tagger.
type TaggerFactory = factory.TaggerFactory

// SequenceValidator reports whether a tag may be assigned to a word.
type SequenceValidator = factory.SequenceValidator

// TaggerConstructor is the constructor shape extensions register.
type TaggerConstructor = factory.TaggerConstructor

// Extensions is a registry of named extension constructors.
type Extensions = factory.Extensions

// ResolutionError reports why an extension could not be created.
type ResolutionError = factory.ResolutionError

// ErrResolution matches every *ResolutionError.
var ErrResolution = factory.ErrResolution

// DefaultExtensions is the process-wide extension registry.
var DefaultExtensions = factory.DefaultExtensions

// NewTaggerFactory creates the default factory. Either dictionary may be nil.
func NewTaggerFactory(ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) *TaggerFactory {
	return factory.NewTaggerFactory(ngram, tags)
}

// NewExtensions creates an empty extension registry.
func NewExtensions(logger *zap.Logger) *Extensions {
	return factory.NewExtensions(logger)
}

// RegisterExtension registers ctor in DefaultExtensions.
func RegisterExtension(name string, ctor TaggerConstructor) {
	factory.RegisterExtension(name, ctor)
}

// CreateExtended creates the extension called name, or the default factory when
// name is empty.
func CreateExtended(name string, ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (Tagger, error) {
	return factory.CreateExtended(name, ngram, tags)
}

// CheckTagsCompatible reports the tags of d that m cannot emit.
func CheckTagsCompatible(d *dictionary.TagDictionary, m model.Model) error {
	return factory.CheckTagsCompatible(d, m)
}
