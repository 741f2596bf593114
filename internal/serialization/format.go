package serialization

import (
	"time"

	"github.com/born-ml/modelkit/internal/artifact"
)

// Format constants.
const (
	MagicBytes      = "BNDL"
	FormatVersion   = 1
	HeaderAlignment = 64   // Align entry data to 64 bytes
	FixedHeaderSize = 64   // Fixed header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// Flags for the archive format.
const (
	FlagHasManifest uint32 = 1 << 0 // bit 0: a manifest entry is present
)

// ManifestEntryName is the entry whose presence sets FlagHasManifest.
const ManifestEntryName = "manifest.yaml"

// Header is the JSON entry table of an archive.
type Header struct {
	FormatVersion int         `json:"format_version"`
	CreatedAt     time.Time   `json:"created_at"`
	Entries       []EntryMeta `json:"entries"`
}

// EntryMeta describes one entry in the data section.
type EntryMeta struct {
	Name   string `json:"name"`
	Type   string `json:"type"`   // Serializer type key
	Offset int64  `json:"offset"` // Bytes from start of the data section
	Size   int64  `json:"size"`
}

// Entry is a named, typed payload.
type Entry struct {
	Name string
	Type artifact.Kind
	Data []byte
}

// paddingFor returns the number of zero bytes needed after pos to reach alignment.
func paddingFor(pos int64) int64 {
	return (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
}
