package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Writer writes an archive to a file.
type Writer struct {
	file   *os.File
	closed bool
}

// Create creates (or truncates) the archive file at path.
func Create(path string) (*Writer, error) {
	//nolint:gosec // G304: archive path comes from the caller
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return &Writer{file: file}, nil
}

// WriteEntries writes the complete archive.
func (w *Writer) WriteEntries(entries []Entry) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return Write(w.file, entries)
}

// Close closes the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Write encodes entries as an archive into writer, in the given order.
func Write(writer io.Writer, entries []Entry) error {
	header := Header{
		FormatVersion: FormatVersion,
		CreatedAt:     time.Now().UTC(),
		Entries:       make([]EntryMeta, 0, len(entries)),
	}

	var (
		data  bytes.Buffer
		flags uint32
	)
	for _, e := range entries {
		if e.Name == ManifestEntryName {
			flags |= FlagHasManifest
		}
		header.Entries = append(header.Entries, EntryMeta{
			Name:   e.Name,
			Type:   string(e.Type),
			Offset: int64(data.Len()),
			Size:   int64(len(e.Data)),
		})
		data.Write(e.Data)
	}

	if err := ValidateHeader(&header, int64(data.Len()), ValidationStrict); err != nil {
		return fmt.Errorf("refusing to write archive: %w", err)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	checksum := ComputeChecksum(data.Bytes())

	fixed := make([]byte, FixedHeaderSize)
	// 0x00-0x03: magic
	copy(fixed[0:4], MagicBytes)
	// 0x04-0x07: version
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	// 0x08-0x0B: flags
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	// 0x0C-0x0F: reserved
	// 0x10-0x17: header size
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	// 0x18-0x1F: data size
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(data.Len()))
	// 0x20-0x3F: checksum
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := writer.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := writer.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	padding := paddingFor(int64(FixedHeaderSize + len(headerJSON)))
	if padding > 0 {
		if _, err := writer.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := writer.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write entry data: %w", err)
	}
	return nil
}
