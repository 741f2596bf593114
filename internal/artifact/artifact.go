package artifact

import "bytes"

// Kind identifies an artifact type and the serializer that handles it.
type Kind string

// Built-in artifact kinds.
const (
	KindModel      Kind = "model"
	KindTagDict    Kind = "tagdict"
	KindDictionary Kind = "dictionary"
	KindManifest   Kind = "manifest"
)

// IsBuiltin reports whether k is one of the kinds the framework ships serializers for.
func (k Kind) IsBuiltin() bool {
	switch k {
	case KindModel, KindTagDict, KindDictionary, KindManifest:
		return true
	default:
		return false
	}
}

// String returns the kind as a type key.
func (k Kind) String() string {
	return string(k)
}

// Artifact is a value that can be stored in a Map and written to an archive.
type Artifact interface {
	// Kind returns the serializer type key for this value.
	Kind() Kind
}

// Blob is the extension slot: an opaque payload tagged with a caller-defined kind.
type Blob struct {
	Type Kind
	Data []byte
}

// NewBlob returns a Blob holding a copy of data.
func NewBlob(kind Kind, data []byte) *Blob {
	return &Blob{Type: kind, Data: bytes.Clone(data)}
}

// Kind returns the blob's type key.
func (b *Blob) Kind() Kind {
	return b.Type
}

// Equal reports whether two blobs carry the same kind and bytes.
func (b *Blob) Equal(other *Blob) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Type == other.Type && bytes.Equal(b.Data, other.Data)
}
