package artifact

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Provider gives read-only access to artifacts by name.
//
// Factories see the loaded archive through a Provider so they cannot mutate it
// while it is being read.
type Provider interface {
	Artifact(name string) (Artifact, bool)
}

// Map is an ordered mapping from artifact name to artifact value.
//
// Names keep their first insertion position; replacing a value does not move it.
type Map struct {
	names   []string
	entries map[string]Artifact
}

var _ Provider = (*Map)(nil)

// NewMap creates an empty artifact map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Artifact)}
}

// Put stores a under name, replacing any previous value.
func (m *Map) Put(name string, a Artifact) error {
	if name == "" {
		return errors.New("artifact name must not be empty")
	}
	if a == nil {
		return fmt.Errorf("artifact %q: value must not be nil", name)
	}
	if _, exists := m.entries[name]; !exists {
		m.names = append(m.names, name)
	}
	m.entries[name] = a
	return nil
}

// Get returns the artifact stored under name.
func (m *Map) Get(name string) (Artifact, bool) {
	a, ok := m.entries[name]
	return a, ok
}

// Artifact implements Provider.
func (m *Map) Artifact(name string) (Artifact, bool) {
	return m.Get(name)
}

// Delete removes name from the map. Deleting a missing name is a no-op.
func (m *Map) Delete(name string) {
	if _, ok := m.entries[name]; !ok {
		return
	}
	delete(m.entries, name)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
}

// Names returns artifact names in insertion order.
func (m *Map) Names() []string {
	return slices.Clone(m.names)
}

// Len returns the number of artifacts.
func (m *Map) Len() int {
	return len(m.names)
}

// All iterates over the artifacts in insertion order.
func (m *Map) All() iter.Seq2[string, Artifact] {
	return func(yield func(string, Artifact) bool) {
		for _, name := range m.names {
			if !yield(name, m.entries[name]) {
				return
			}
		}
	}
}

// Merge copies every entry of other into m. Entries of other win on name clashes.
func (m *Map) Merge(other *Map) {
	if other == nil {
		return
	}
	for name, a := range other.All() {
		_ = m.Put(name, a) // names and values in other are already valid
	}
}
