// Package manifest provides the manifest artifact that describes an archive: which
// component produced it, for which language, and which factory extension must be
// resolved to load it.
package manifest

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/modelkit/internal/artifact"
)

// Version is the manifest version written by this package.
const Version = "1.0"

// EntryName is the archive entry that holds the manifest.
const EntryName = "manifest.yaml"

// Manifest describes an archive.
type Manifest struct {
	ManifestVersion string            `yaml:"manifest_version"`
	ArchiveID       uuid.UUID         `yaml:"archive_id"`
	Component       string            `yaml:"component"`
	Language        string            `yaml:"language"`
	Factory         string            `yaml:"factory,omitempty"`   // extension name, empty for the default factory
	Tokenizer       string            `yaml:"tokenizer,omitempty"` // tokenizer name, empty for whitespace
	CreatedAt       time.Time         `yaml:"created_at"`
	Properties      map[string]string `yaml:"properties,omitempty"`
}

var _ artifact.Artifact = (*Manifest)(nil)

// New creates a manifest with a fresh archive ID.
func New(component, language string) *Manifest {
	return &Manifest{
		ManifestVersion: Version,
		ArchiveID:       uuid.New(),
		Component:       component,
		Language:        language,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
		Properties:      make(map[string]string),
	}
}

// Kind returns artifact.KindManifest.
func (m *Manifest) Kind() artifact.Kind {
	return artifact.KindManifest
}

// Property returns a custom property.
func (m *Manifest) Property(key string) (string, bool) {
	v, ok := m.Properties[key]
	return v, ok
}

// SetProperty stores a custom property.
func (m *Manifest) SetProperty(key, value string) {
	if m.Properties == nil {
		m.Properties = make(map[string]string)
	}
	m.Properties[key] = value
}

// Validate checks the required fields.
func (m *Manifest) Validate() error {
	if m.ManifestVersion == "" {
		return &artifact.FormatError{Entry: EntryName, Reason: "missing manifest_version"}
	}
	if m.ManifestVersion != Version {
		return &artifact.FormatError{Entry: EntryName, Reason: fmt.Sprintf("unsupported manifest version %q", m.ManifestVersion)}
	}
	if m.Component == "" {
		return &artifact.FormatError{Entry: EntryName, Reason: "missing component"}
	}
	return nil
}

// Equal reports whether both manifests carry the same values.
func (m *Manifest) Equal(other *Manifest) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.ManifestVersion == other.ManifestVersion &&
		m.ArchiveID == other.ArchiveID &&
		m.Component == other.Component &&
		m.Language == other.Language &&
		m.Factory == other.Factory &&
		m.Tokenizer == other.Tokenizer &&
		m.CreatedAt.Equal(other.CreatedAt) &&
		maps.Equal(m.Properties, other.Properties)
}

// Serializer encodes a *Manifest as YAML. Decoding validates required fields.
var Serializer artifact.Serializer = artifact.SerializerFuncs{
	DecodeFunc: func(data []byte) (artifact.Artifact, error) {
		return Decode(data)
	},
	EncodeFunc: func(a artifact.Artifact) ([]byte, error) {
		m, ok := a.(*Manifest)
		if !ok {
			return nil, &artifact.TypeMismatchError{Name: EntryName, Want: "*manifest.Manifest", Got: fmt.Sprintf("%T", a)}
		}
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal manifest: %w", err)
		}
		return data, nil
	},
}

// Decode parses a YAML manifest.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &artifact.FormatError{Entry: EntryName, Key: artifact.KindManifest, Reason: "failed to parse manifest", Err: err}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
