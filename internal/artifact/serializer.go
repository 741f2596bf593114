package artifact

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrSerializerNotFound is returned when no serializer is registered for a type key.
var ErrSerializerNotFound = errors.New("no serializer registered")

// Serializer converts an artifact to and from its archive representation.
//
// Implementations must be stateless so one instance can serve every artifact of a kind.
type Serializer interface {
	Decode(data []byte) (Artifact, error)
	Encode(a Artifact) ([]byte, error)
}

// SerializerFuncs adapts a pair of functions to the Serializer interface.
type SerializerFuncs struct {
	DecodeFunc func(data []byte) (Artifact, error)
	EncodeFunc func(a Artifact) ([]byte, error)
}

// Decode calls DecodeFunc.
func (f SerializerFuncs) Decode(data []byte) (Artifact, error) {
	return f.DecodeFunc(data)
}

// Encode calls EncodeFunc.
func (f SerializerFuncs) Encode(a Artifact) ([]byte, error) {
	return f.EncodeFunc(a)
}

// BlobSerializer returns a pass-through serializer for an extension kind carried as *Blob.
func BlobSerializer(kind Kind) Serializer {
	return SerializerFuncs{
		DecodeFunc: func(data []byte) (Artifact, error) {
			return NewBlob(kind, data), nil
		},
		EncodeFunc: func(a Artifact) ([]byte, error) {
			b, ok := a.(*Blob)
			if !ok {
				return nil, &TypeMismatchError{Want: "*artifact.Blob", Got: fmt.Sprintf("%T", a)}
			}
			return bytes.Clone(b.Data), nil
		},
	}
}

// Registry maps artifact type keys to serializers.
//
// Registering an existing key replaces it, which is how a factory subtype overrides
// the serializer of a built-in kind.
type Registry struct {
	serializers map[Kind]Serializer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{serializers: make(map[Kind]Serializer)}
}

// Register stores s under key. Last write wins.
func (r *Registry) Register(key Kind, s Serializer) {
	r.serializers[key] = s
}

// Resolve returns the serializer for key.
func (r *Registry) Resolve(key Kind) (Serializer, error) {
	s, ok := r.serializers[key]
	if !ok {
		return nil, fmt.Errorf("%w for type %q", ErrSerializerNotFound, key)
	}
	return s, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key Kind) bool {
	_, ok := r.serializers[key]
	return ok
}

// Keys returns the registered type keys in sorted order.
func (r *Registry) Keys() []Kind {
	return slices.Sorted(maps.Keys(r.serializers))
}

// Len returns the number of registered serializers.
func (r *Registry) Len() int {
	return len(r.serializers)
}

// Merge copies other's serializers into r, overwriting clashes.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	maps.Copy(r.serializers, other.serializers)
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	return &Registry{serializers: maps.Clone(r.serializers)}
}
