// Package bundle packages a trained tagger model with its dictionaries and manifest
// into a single archive, and loads such archives back.
//
// Loading resolves the factory named in the manifest through a factory.Extensions
// registry, decodes every entry with the serializers of that factory, and
// validates the result before the bundle is returned:
//
//	b, err := bundle.Open(ctx, "en-pos.bndl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	valid := b.Factory().SequenceValidator()
package bundle
