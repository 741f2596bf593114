// Package artifact defines the values a model bundle is made of and how they are
// serialized.
//
// Every artifact reports a Kind, the key its Serializer is registered under.
// Bundles hold artifacts in an ordered Map keyed by archive entry name.
//
// Example usage:
//
//	reg := artifact.NewRegistry()
//	reg.Register("stopwords", artifact.BlobSerializer("stopwords"))
//
//	m := artifact.NewMap()
//	_ = m.Put("stop.words", artifact.NewBlob("stopwords", data))
package artifact

import (
	"github.com/born-ml/modelkit/internal/artifact"
)

// Kind is a serializer type key.
type Kind = artifact.Kind

// Built-in kinds.
const (
	KindModel      = artifact.KindModel
	KindTagDict    = artifact.KindTagDict
	KindDictionary = artifact.KindDictionary
	KindManifest   = artifact.KindManifest
)

// Artifact is a value stored in a bundle.
type Artifact = artifact.Artifact

// Blob carries an artifact of an extension kind as raw bytes.
type Blob = artifact.Blob

// Map is an ordered set of named artifacts.
type Map = artifact.Map

// Provider gives read-only access to artifacts by name.
type Provider = artifact.Provider

// Serializer converts an artifact to and from bytes.
type Serializer = artifact.Serializer

// SerializerFuncs adapts a pair of functions to Serializer.
type SerializerFuncs = artifact.SerializerFuncs

// Registry maps kinds to serializers.
type Registry = artifact.Registry

// Error types.
type (
	FormatError        = artifact.FormatError
	TypeMismatchError  = artifact.TypeMismatchError
	CompatibilityError = artifact.CompatibilityError
)

// Error categories, matched with errors.Is.
var (
	ErrFormat             = artifact.ErrFormat
	ErrTypeMismatch       = artifact.ErrTypeMismatch
	ErrIncompatible       = artifact.ErrIncompatible
	ErrSerializerNotFound = artifact.ErrSerializerNotFound
)

// NewMap creates an empty artifact map.
func NewMap() *Map {
	return artifact.NewMap()
}

// NewRegistry creates an empty serializer registry.
func NewRegistry() *Registry {
	return artifact.NewRegistry()
}

// NewBlob creates a blob of the given kind. data is copied.
func NewBlob(kind Kind, data []byte) *Blob {
	return artifact.NewBlob(kind, data)
}

// BlobSerializer returns a pass-through serializer for blobs of kind.
func BlobSerializer(kind Kind) Serializer {
	return artifact.BlobSerializer(kind)
}
