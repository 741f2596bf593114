// Package artifact defines the named, typed resources bundled with a trained model.
//
// An artifact is any value implementing Artifact. Its Kind doubles as the type key
// under which a Serializer is registered, so the archive layer can decode an entry
// without knowing the Go type behind it:
//
//	reg := artifact.NewRegistry()
//	reg.Register(artifact.KindTagDict, dictionary.TagDictionarySerializer)
//
//	m := artifact.NewMap()
//	_ = m.Put("tags.tagdict", tagDict)
//
//	s, err := reg.Resolve(tagDict.Kind())
//	if err != nil {
//	    return err
//	}
//	data, err := s.Encode(tagDict)
//
// Kinds with no typed Go value can be carried as *Blob, a raw byte payload tagged
// with a caller chosen kind.
//
// None of the types in this package are safe for concurrent mutation.
package artifact
