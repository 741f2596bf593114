package factory

import (
	"github.com/born-ml/modelkit/internal/artifact"
	"github.com/born-ml/modelkit/internal/dictionary"
)

// SequenceValidator reports whether tag may be assigned to word.
type SequenceValidator func(word, tag string) bool

// Tagger is the factory contract of a part-of-speech tagger bundle. Extensions
// implement it, usually by embedding *TaggerFactory.
type Tagger interface {
	Factory

	// TagDictionary returns the tag dictionary, or nil if there is none.
	TagDictionary() *dictionary.TagDictionary

	// Dictionary returns the n-gram dictionary, or nil if there is none.
	Dictionary() *dictionary.Dictionary

	// ResetTagDictionary discards the cached tag dictionary so the next
	// TagDictionary call resolves it from the attached provider again.
	ResetTagDictionary()

	// CreateEmptyTagDictionary installs a fresh empty tag dictionary and returns it.
	CreateEmptyTagDictionary() *dictionary.TagDictionary

	// SequenceValidator returns the tag admission check used during decoding.
	SequenceValidator() SequenceValidator
}

// TaggerFactory is the default Tagger.
type TaggerFactory struct {
	Base
}

var _ Tagger = (*TaggerFactory)(nil)

// NewTaggerFactory creates a factory holding the given dictionaries. Either may be nil.
func NewTaggerFactory(ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) *TaggerFactory {
	f := &TaggerFactory{}
	if tags != nil {
		f.Set(TagDictEntryName, tags)
	}
	if ngram != nil {
		f.Set(NGramEntryName, ngram)
	}
	return f
}

// Serializers adds the tag dictionary serializer. The n-gram dictionary uses the
// bundle's default dictionary serializer.
func (f *TaggerFactory) Serializers() *artifact.Registry {
	reg := f.Base.Serializers()
	reg.Register(artifact.KindTagDict, dictionary.TagDictionarySerializer)
	return reg
}

// ArtifactMap returns the dictionaries held in memory.
func (f *TaggerFactory) ArtifactMap() *artifact.Map {
	m := artifact.NewMap()
	if d := f.TagDictionary(); d != nil {
		_ = m.Put(TagDictEntryName, d)
	}
	if d := f.Dictionary(); d != nil {
		_ = m.Put(NGramEntryName, d)
	}
	return m
}

// TagDictionary returns the tag dictionary. A value of the wrong type under the
// reserved name is reported by Validate and reads as nil here.
func (f *TaggerFactory) TagDictionary() *dictionary.TagDictionary {
	a, ok := f.Artifact(TagDictEntryName)
	if !ok {
		return nil
	}
	d, _ := a.(*dictionary.TagDictionary)
	return d
}

// Dictionary returns the n-gram dictionary.
func (f *TaggerFactory) Dictionary() *dictionary.Dictionary {
	a, ok := f.Artifact(NGramEntryName)
	if !ok {
		return nil
	}
	d, _ := a.(*dictionary.Dictionary)
	return d
}

// ResetTagDictionary drops the cached tag dictionary.
func (f *TaggerFactory) ResetTagDictionary() {
	f.Forget(TagDictEntryName)
}

// CreateEmptyTagDictionary replaces the tag dictionary with an empty one.
func (f *TaggerFactory) CreateEmptyTagDictionary() *dictionary.TagDictionary {
	d := dictionary.NewTagDictionary()
	f.Set(TagDictEntryName, d)
	return d
}

// SequenceValidator admits a tag when there is no tag dictionary, the word is not
// in it, or the dictionary lists the tag for the word.
func (f *TaggerFactory) SequenceValidator() SequenceValidator {
	d := f.TagDictionary()
	return func(word, tag string) bool {
		if d == nil {
			return true
		}
		tags, ok := d.Tags(word)
		if !ok {
			return true
		}
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
		return false
	}
}

// Validate checks the tag dictionary against the model outcomes and the type of
// the n-gram dictionary.
func (f *TaggerFactory) Validate() error {
	return ValidateArtifacts(&f.Base)
}
