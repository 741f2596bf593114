package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/born-ml/modelkit/internal/artifact"
)

// ReaderOptions configures archive reading.
type ReaderOptions struct {
	SkipChecksumValidation bool            // Skip checksum validation (faster but less safe)
	ValidationLevel        ValidationLevel // Entry table strictness
}

// Archive is a fully read archive.
type Archive struct {
	header  Header
	flags   uint32
	entries []Entry
}

// Header returns the entry table.
func (a *Archive) Header() Header {
	return a.header
}

// Flags returns the format flags.
func (a *Archive) Flags() uint32 {
	return a.flags
}

// HasManifest reports whether the writer flagged a manifest entry.
func (a *Archive) HasManifest() bool {
	return a.flags&FlagHasManifest != 0
}

// Entries returns the entries in archive order.
func (a *Archive) Entries() []Entry {
	return slices.Clone(a.entries)
}

// Names returns the entry names in archive order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.entries))
	for i, e := range a.entries {
		names[i] = e.Name
	}
	return names
}

// Entry returns the entry called name.
func (a *Archive) Entry(name string) (Entry, bool) {
	for _, e := range a.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Open reads the archive file at path.
func Open(path string, opts ReaderOptions) (*Archive, error) {
	//nolint:gosec // G304: archive path comes from the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(bufio.NewReader(file), opts)
}

// Read reads a complete archive from reader.
//
//nolint:gocyclo,cyclop // Sequential format parsing
func Read(reader io.Reader, opts ReaderOptions) (*Archive, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(reader, fixed); err != nil {
		return nil, formatErr("failed to read fixed header", err)
	}

	if string(fixed[0:4]) != MagicBytes {
		return nil, formatErr(fmt.Sprintf("got %q, expected %q", string(fixed[0:4]), MagicBytes), ErrInvalidMagic)
	}
	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return nil, formatErr(fmt.Sprintf("got %d, expected %d", version, FormatVersion), ErrUnsupportedVersion)
	}

	flags := binary.LittleEndian.Uint32(fixed[8:12])
	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	dataSize := binary.LittleEndian.Uint64(fixed[24:32])
	var stored [ChecksumSize]byte
	copy(stored[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	if headerSize > MaxHeaderSize {
		return nil, formatErr(fmt.Sprintf("header size %d", headerSize), ErrHeaderTooLarge)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, headerBytes); err != nil {
		return nil, formatErr("failed to read header", err)
	}

	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, formatErr("failed to parse header JSON", err)
	}
	if header.FormatVersion != FormatVersion {
		return nil, formatErr(fmt.Sprintf("header declares version %d", header.FormatVersion), ErrUnsupportedVersion)
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize
	padding := paddingFor(int64(FixedHeaderSize) + int64(headerSize))
	if padding > 0 {
		if _, err := io.CopyN(io.Discard, reader, padding); err != nil {
			return nil, formatErr("failed to read padding", err)
		}
	}

	//nolint:gosec // G115: data size is checked against the entry table below
	if err := ValidateHeader(&header, int64(dataSize), opts.ValidationLevel); err != nil {
		return nil, err
	}

	var data []byte
	if dataSize > 0 {
		buf, err := io.ReadAll(io.LimitReader(reader, int64(dataSize))) //nolint:gosec // G115
		if err != nil {
			return nil, formatErr("failed to read entry data", err)
		}
		if uint64(len(buf)) != dataSize {
			return nil, formatErr(fmt.Sprintf("data section truncated: got %d of %d bytes", len(buf), dataSize), io.ErrUnexpectedEOF)
		}
		data = buf
	}

	if !opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(data), stored); err != nil {
			return nil, formatErr("data section", err)
		}
	}

	archive := &Archive{
		header:  header,
		flags:   flags,
		entries: make([]Entry, 0, len(header.Entries)),
	}
	for _, meta := range header.Entries {
		if meta.Offset < 0 || meta.Size < 0 || meta.Offset > int64(len(data)) || meta.Size > int64(len(data))-meta.Offset {
			return nil, &artifact.FormatError{Entry: meta.Name, Reason: "entry outside data section"}
		}
		archive.entries = append(archive.entries, Entry{
			Name: meta.Name,
			Type: artifact.Kind(meta.Type),
			Data: data[meta.Offset : meta.Offset+meta.Size : meta.Offset+meta.Size],
		})
	}
	return archive, nil
}
