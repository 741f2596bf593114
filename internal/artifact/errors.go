package artifact

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories. Typed errors below match them through errors.Is.
var (
	ErrFormat       = errors.New("invalid format")
	ErrTypeMismatch = errors.New("artifact has wrong type")
	ErrIncompatible = errors.New("artifacts are incompatible")
)

// FormatError reports a malformed archive, an entry that cannot be decoded, or a
// training stream that violates the line format.
type FormatError struct {
	Entry  string // archive entry name, if any
	Key    Kind   // serializer type key, if any
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("invalid format")
	if e.Entry != "" {
		fmt.Fprintf(&b, ": entry %q", e.Entry)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, ": type %q", e.Key)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is matches ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// TypeMismatchError reports an artifact stored under a reserved name whose runtime
// type is not the one that name requires.
type TypeMismatchError struct {
	Name string // artifact name
	Want string
	Got  string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("artifact has wrong type: want %s, got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("artifact %q has wrong type: want %s, got %s", e.Name, e.Want, e.Got)
}

// Is matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// CompatibilityError reports tag dictionary entries the model cannot emit.
type CompatibilityError struct {
	Unknown []string // offending tags
}

// Error implements the error interface.
func (e *CompatibilityError) Error() string {
	return "tag dictionary contains tags unknown to the model: " + strings.Join(e.Unknown, " ")
}

// Is matches ErrIncompatible.
func (e *CompatibilityError) Is(target error) bool {
	return target == ErrIncompatible
}
