// Package factory is the single authority for what artifacts a tagger bundle needs,
// how they are serialized, and whether a loaded set is consistent.
//
// TaggerFactory is the default. Third parties extend it by embedding
// *TaggerFactory in their own type, overriding methods, and registering a
// constructor under a name:
//
//	type UpperFactory struct {
//	    *factory.TaggerFactory
//	}
//
//	func (f *UpperFactory) Name() string { return "acme.upper" }
//
//	func init() {
//	    factory.RegisterExtension("acme.upper", func(ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (factory.Tagger, error) {
//	        return &UpperFactory{TaggerFactory: factory.NewTaggerFactory(ngram, tags)}, nil
//	    })
//	}
//
// A bundle records Name() in its manifest and resolves the same name through
// CreateExtended when it is loaded again. An empty name selects TaggerFactory.
//
// Factories keep a mutable cache and are not safe for concurrent use.
package factory
