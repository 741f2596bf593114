package dictionary

import (
	"maps"
	"slices"
	"strings"

	"github.com/born-ml/modelkit/internal/artifact"
)

// TagDictionary maps words to their admissible tags. The zero value is an empty
// case-sensitive dictionary.
type TagDictionary struct {
	foldCase bool
	entries  map[string][]string
}

var _ artifact.Artifact = (*TagDictionary)(nil)

// NewTagDictionary creates an empty, case-sensitive tag dictionary.
func NewTagDictionary() *TagDictionary {
	return &TagDictionary{entries: make(map[string][]string)}
}

// NewCaseInsensitiveTagDictionary creates an empty dictionary that folds words to
// lower case on insert and lookup.
func NewCaseInsensitiveTagDictionary() *TagDictionary {
	d := NewTagDictionary()
	d.foldCase = true
	return d
}

// Kind returns artifact.KindTagDict.
func (d *TagDictionary) Kind() artifact.Kind {
	return artifact.KindTagDict
}

// CaseSensitive reports whether lookups distinguish case.
func (d *TagDictionary) CaseSensitive() bool {
	return !d.foldCase
}

func (d *TagDictionary) key(word string) string {
	if d.foldCase {
		return strings.ToLower(word)
	}
	return word
}

// Put sets the tags of word, replacing previous ones. Duplicate tags are dropped,
// first occurrence order is kept.
func (d *TagDictionary) Put(word string, tags ...string) {
	unique := make([]string, 0, len(tags))
	for _, t := range tags {
		if !slices.Contains(unique, t) {
			unique = append(unique, t)
		}
	}
	if d.entries == nil {
		d.entries = make(map[string][]string)
	}
	d.entries[d.key(word)] = unique
}

// Tags returns the tags of word.
func (d *TagDictionary) Tags(word string) ([]string, bool) {
	tags, ok := d.entries[d.key(word)]
	if !ok {
		return nil, false
	}
	return slices.Clone(tags), true
}

// Contains reports whether word has an entry.
func (d *TagDictionary) Contains(word string) bool {
	_, ok := d.entries[d.key(word)]
	return ok
}

// Remove deletes word.
func (d *TagDictionary) Remove(word string) {
	delete(d.entries, d.key(word))
}

// Words returns all words in sorted order.
func (d *TagDictionary) Words() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

// Len returns the number of words.
func (d *TagDictionary) Len() int {
	return len(d.entries)
}

// TagSet returns every tag referenced by any word, deduplicated.
func (d *TagDictionary) TagSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, tags := range d.entries {
		for _, t := range tags {
			set[t] = struct{}{}
		}
	}
	return set
}

// Equal reports whether both dictionaries hold the same entries and case mode.
func (d *TagDictionary) Equal(other *TagDictionary) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.foldCase != other.foldCase {
		return false
	}
	return maps.EqualFunc(d.entries, other.entries, slices.Equal[[]string])
}
