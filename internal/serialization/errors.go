package serialization

import (
	"errors"
	"fmt"

	"github.com/born-ml/modelkit/internal/artifact"
)

// Common errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: archive may be corrupted")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrDuplicateEntry     = errors.New("duplicate entry name")
)

// ValidationError provides detailed information about entry table violations.
type ValidationError struct {
	Type    string // Type of error (e.g., "offset_overlap", "out_of_bounds")
	Entry   string // Primary entry name involved
	Entry2  string // Secondary entry name (for overlap errors)
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Entry2 != "" {
		return fmt.Sprintf("%s: entries %q and %q: %s", e.Type, e.Entry, e.Entry2, e.Details)
	}
	if e.Entry != "" {
		return fmt.Sprintf("%s: entry %q: %s", e.Type, e.Entry, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}

// Is matches artifact.ErrFormat so callers can treat every malformed archive alike.
func (e *ValidationError) Is(target error) bool {
	return target == artifact.ErrFormat
}

func formatErr(reason string, err error) error {
	return &artifact.FormatError{Reason: reason, Err: err}
}
