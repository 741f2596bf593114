package serialization

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/born-ml/modelkit/internal/artifact"
)

func TestValidateEntryOffsets(t *testing.T) {
	tests := []struct {
		name     string
		entries  []EntryMeta
		dataSize int64
		wantType string
	}{
		{
			name: "contiguous entries",
			entries: []EntryMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 100, Size: 50},
			},
			dataSize: 150,
		},
		{
			name: "overlap by one byte",
			entries: []EntryMeta{
				{Name: "a", Offset: 0, Size: 100},
				{Name: "b", Offset: 99, Size: 10},
			},
			dataSize: 200,
			wantType: "offset_overlap",
		},
		{
			name:     "beyond data section",
			entries:  []EntryMeta{{Name: "a", Offset: 10, Size: 100}},
			dataSize: 50,
			wantType: "out_of_bounds",
		},
		{
			name:     "negative size",
			entries:  []EntryMeta{{Name: "a", Offset: 0, Size: -1}},
			dataSize: 50,
			wantType: "negative_offset",
		},
		{
			name:     "size overflowing offset",
			entries:  []EntryMeta{{Name: "a", Offset: 1, Size: math.MaxInt64}},
			dataSize: 2,
			wantType: "out_of_bounds",
		},
		{
			name:     "offset beyond data section",
			entries:  []EntryMeta{{Name: "a", Offset: math.MaxInt64, Size: 1}},
			dataSize: 2,
			wantType: "out_of_bounds",
		},
		{
			name:     "zero sized entry at end",
			entries:  []EntryMeta{{Name: "a", Offset: 50, Size: 0}},
			dataSize: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryOffsets(tt.entries, tt.dataSize)
			if tt.wantType == "" {
				if err != nil {
					t.Fatalf("Expected no error, got: %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected ValidationError, got %T (%v)", err, err)
			}
			if vErr.Type != tt.wantType {
				t.Errorf("Expected %s, got %s", tt.wantType, vErr.Type)
			}
			if !errors.Is(err, artifact.ErrFormat) {
				t.Error("ValidationError should match artifact.ErrFormat")
			}
		})
	}
}

func TestValidateEntryName(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		wantErr bool
	}{
		{"reserved manifest name", "manifest.yaml", false},
		{"dotted name", "tags.tagdict", false},
		{"empty", "", true},
		{"parent traversal", "..secret", true},
		{"slash", "dir/file", true},
		{"backslash", `dir\file`, true},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("x", MaxEntryNameLen+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryName(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryName(%q) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHeader_Levels(t *testing.T) {
	overlapping := &Header{Entries: []EntryMeta{
		{Name: "a", Type: "x", Offset: 0, Size: 10},
		{Name: "b", Type: "x", Offset: 5, Size: 10},
	}}

	if err := ValidateHeader(overlapping, 20, ValidationStrict); err == nil {
		t.Error("Strict validation should detect overlap")
	}
	if err := ValidateHeader(overlapping, 20, ValidationNormal); err != nil {
		t.Errorf("Normal validation should skip offsets, got: %v", err)
	}

	badName := &Header{Entries: []EntryMeta{{Name: "../x", Type: "x"}}}
	if err := ValidateHeader(badName, 0, ValidationNormal); err == nil {
		t.Error("Normal validation should check names")
	}
	if err := ValidateHeader(badName, 0, ValidationNone); err != nil {
		t.Errorf("ValidationNone should skip everything, got: %v", err)
	}
}

func TestValidateHeader_DuplicateAndMissingType(t *testing.T) {
	dup := &Header{Entries: []EntryMeta{{Name: "a", Type: "x"}, {Name: "a", Type: "x"}}}
	var vErr *ValidationError
	if err := ValidateHeader(dup, 0, ValidationNormal); !errors.As(err, &vErr) || vErr.Type != "duplicate_entry" {
		t.Errorf("Expected duplicate_entry, got: %v", err)
	}

	untyped := &Header{Entries: []EntryMeta{{Name: "a"}}}
	if err := ValidateHeader(untyped, 0, ValidationNormal); !errors.As(err, &vErr) || vErr.Type != "missing_type" {
		t.Errorf("Expected missing_type, got: %v", err)
	}
}

func TestParseValidationLevel(t *testing.T) {
	for _, level := range []ValidationLevel{ValidationStrict, ValidationNormal, ValidationNone} {
		got, err := ParseValidationLevel(level.String())
		if err != nil || got != level {
			t.Errorf("ParseValidationLevel(%q) = %v, %v", level.String(), got, err)
		}
	}
	if _, err := ParseValidationLevel("paranoid"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{&ValidationError{Type: "too_many_entries", Details: "got 2"}, "too_many_entries: got 2"},
		{&ValidationError{Type: "invalid_name", Entry: "x", Details: "bad"}, `invalid_name: entry "x": bad`},
		{&ValidationError{Type: "offset_overlap", Entry: "a", Entry2: "b", Details: "d"}, `offset_overlap: entries "a" and "b": d`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
