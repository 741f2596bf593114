package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize   = 16 * 1024 * 1024 // 16MB - maximum entry table size
	MaxEntryCount   = 10_000
	MaxEntryNameLen = 1024
)

// ValidationLevel controls the strictness of validation.
type ValidationLevel int

const (
	// ValidationStrict performs all checks (default).
	ValidationStrict ValidationLevel = iota
	// ValidationNormal checks entry names and count only.
	ValidationNormal
	// ValidationNone skips validation. Use only with trusted input.
	ValidationNone
)

// String returns the level name.
func (l ValidationLevel) String() string {
	switch l {
	case ValidationStrict:
		return "strict"
	case ValidationNormal:
		return "normal"
	case ValidationNone:
		return "none"
	default:
		return fmt.Sprintf("ValidationLevel(%d)", int(l))
	}
}

// ParseValidationLevel maps a level name to its value.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch strings.ToLower(s) {
	case "", "strict":
		return ValidationStrict, nil
	case "normal":
		return ValidationNormal, nil
	case "none":
		return ValidationNone, nil
	default:
		return 0, fmt.Errorf("unknown validation level %q", s)
	}
}

// ValidateEntryName rejects names that could escape an extraction directory or
// confuse length checks.
func ValidateEntryName(name string) error {
	if name == "" {
		return &ValidationError{Type: "invalid_name", Details: "empty name"}
	}
	if len(name) > MaxEntryNameLen {
		return &ValidationError{
			Type:    "name_too_long",
			Entry:   name,
			Details: fmt.Sprintf("length %d > max %d", len(name), MaxEntryNameLen),
		}
	}
	if strings.Contains(name, "..") {
		return &ValidationError{Type: "invalid_name", Entry: name, Details: "contains '..'"}
	}
	if strings.ContainsAny(name, `/\`) {
		return &ValidationError{Type: "invalid_name", Entry: name, Details: "contains path separator (/ or \\)"}
	}
	if strings.Contains(name, "\x00") {
		return &ValidationError{Type: "invalid_name", Entry: name, Details: "contains null byte"}
	}
	return nil
}

// ValidateEntryOffsets checks for negative, overlapping and out-of-bounds entries.
func ValidateEntryOffsets(entries []EntryMeta, dataSize int64) error {
	sorted := make([]EntryMeta, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, e := range sorted {
		if e.Offset < 0 || e.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Entry:   e.Name,
				Details: fmt.Sprintf("offset=%d, size=%d", e.Offset, e.Size),
			}
		}
		if e.Offset > dataSize || e.Size > dataSize-e.Offset {
			return &ValidationError{
				Type:    "out_of_bounds",
				Entry:   e.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", e.Offset, e.Size, dataSize),
			}
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			if e.Offset+e.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Entry:   e.Name,
					Entry2:  next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap", e.Offset, e.Offset+e.Size, next.Offset, next.Offset+next.Size),
				}
			}
		}
	}
	return nil
}

// ValidateHeader validates the entry table at the given level.
func ValidateHeader(h *Header, dataSize int64, level ValidationLevel) error {
	if level == ValidationNone {
		return nil
	}

	if len(h.Entries) > MaxEntryCount {
		return &ValidationError{
			Type:    "too_many_entries",
			Details: fmt.Sprintf("got %d, max %d", len(h.Entries), MaxEntryCount),
		}
	}

	seen := make(map[string]struct{}, len(h.Entries))
	for _, e := range h.Entries {
		if err := ValidateEntryName(e.Name); err != nil {
			return err
		}
		if _, dup := seen[e.Name]; dup {
			return &ValidationError{Type: "duplicate_entry", Entry: e.Name, Details: ErrDuplicateEntry.Error()}
		}
		seen[e.Name] = struct{}{}
		if e.Type == "" {
			return &ValidationError{Type: "missing_type", Entry: e.Name, Details: "entry has no type key"}
		}
	}

	if level == ValidationStrict {
		return ValidateEntryOffsets(h.Entries, dataSize)
	}
	return nil
}
