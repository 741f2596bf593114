// Package serialization implements the archive container that holds a bundle's
// named entries.
//
//	Format Structure:
//	  [4 bytes:  Magic "BNDL"]
//	  [4 bytes:  Version (uint32 LE)]
//	  [4 bytes:  Flags (uint32 LE)]
//	  [4 bytes:  Reserved]
//	  [8 bytes:  Header Size (uint64 LE)]
//	  [8 bytes:  Data Size (uint64 LE)]
//	  [32 bytes: SHA-256 of the data section]
//	  [Header: JSON entry table]
//	  [Padding to 64-byte alignment]
//	  [Data: entry payloads, in entry order]
//
// Each entry records its name, the type key of the serializer that produced it, and
// its offset and size inside the data section. The container does not interpret
// payloads; decoding them is the job of an artifact.Registry.
//
// Example usage:
//
//	entries := []serialization.Entry{
//	    {Name: "manifest.yaml", Type: artifact.KindManifest, Data: manifestBytes},
//	    {Name: "tagger.model", Type: artifact.KindModel, Data: modelBytes},
//	}
//	if err := serialization.Write(w, entries); err != nil {
//	    return err
//	}
//
//	archive, err := serialization.Read(r, serialization.ReaderOptions{})
//	if err != nil {
//	    return err
//	}
//	for _, e := range archive.Entries() {
//	    fmt.Println(e.Name, e.Type, len(e.Data))
//	}
package serialization
