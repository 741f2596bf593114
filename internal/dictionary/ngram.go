package dictionary

import (
	"slices"
	"strings"

	"github.com/born-ml/modelkit/internal/artifact"
)

// keySep joins tokens into a map key. Unit separator never appears in tokens.
const keySep = "\x1f"

// Dictionary is a set of token sequences. The zero value is an empty dictionary.
type Dictionary struct {
	entries [][]string
	index   map[string]int
}

var _ artifact.Artifact = (*Dictionary)(nil)

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{index: make(map[string]int)}
}

// Kind returns artifact.KindDictionary.
func (d *Dictionary) Kind() artifact.Kind {
	return artifact.KindDictionary
}

// Add inserts a token sequence. It reports false if the sequence is empty or
// already present.
func (d *Dictionary) Add(tokens ...string) bool {
	if len(tokens) == 0 {
		return false
	}
	k := strings.Join(tokens, keySep)
	if _, ok := d.index[k]; ok {
		return false
	}
	if d.index == nil {
		d.index = make(map[string]int)
	}
	d.index[k] = len(d.entries)
	d.entries = append(d.entries, slices.Clone(tokens))
	return true
}

// Contains reports whether the exact token sequence is present.
func (d *Dictionary) Contains(tokens ...string) bool {
	_, ok := d.index[strings.Join(tokens, keySep)]
	return ok
}

// Remove deletes a token sequence.
func (d *Dictionary) Remove(tokens ...string) {
	k := strings.Join(tokens, keySep)
	i, ok := d.index[k]
	if !ok {
		return
	}
	d.entries = slices.Delete(d.entries, i, i+1)
	delete(d.index, k)
	for j := i; j < len(d.entries); j++ {
		d.index[strings.Join(d.entries[j], keySep)] = j
	}
}

// Len returns the number of sequences.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns a copy of all sequences in insertion order.
func (d *Dictionary) Entries() [][]string {
	out := make([][]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = slices.Clone(e)
	}
	return out
}

// MinTokens returns the length of the shortest sequence, or 0 when empty.
func (d *Dictionary) MinTokens() int {
	if len(d.entries) == 0 {
		return 0
	}
	n := len(d.entries[0])
	for _, e := range d.entries[1:] {
		n = min(n, len(e))
	}
	return n
}

// MaxTokens returns the length of the longest sequence, or 0 when empty.
func (d *Dictionary) MaxTokens() int {
	n := 0
	for _, e := range d.entries {
		n = max(n, len(e))
	}
	return n
}

// Equal reports whether both dictionaries hold the same sequences, ignoring order.
func (d *Dictionary) Equal(other *Dictionary) bool {
	if d == nil || other == nil {
		return d == other
	}
	if len(d.index) != len(other.index) {
		return false
	}
	for k := range d.index {
		if _, ok := other.index[k]; !ok {
			return false
		}
	}
	return true
}
