// Package dictionary provides the tag dictionary and n-gram dictionary artifacts.
package dictionary

import (
	"io"

	"github.com/born-ml/modelkit/internal/dictionary"
)

// TagDictionary maps words to the tags they may take.
type TagDictionary = dictionary.TagDictionary

// Dictionary is a set of token sequences.
type Dictionary = dictionary.Dictionary

// Serializers for the dictionary kinds.
var (
	TagDictionarySerializer = dictionary.TagDictionarySerializer
	DictionarySerializer    = dictionary.DictionarySerializer
)

// NewTagDictionary creates an empty case-sensitive tag dictionary.
func NewTagDictionary() *TagDictionary {
	return dictionary.NewTagDictionary()
}

// NewCaseInsensitiveTagDictionary creates an empty tag dictionary that ignores
// letter case on lookup.
func NewCaseInsensitiveTagDictionary() *TagDictionary {
	return dictionary.NewCaseInsensitiveTagDictionary()
}

// NewDictionary creates an empty n-gram dictionary.
func NewDictionary() *Dictionary {
	return dictionary.NewDictionary()
}

// ParseTagDictionary reads "word tag1 tag2 ..." lines.
func ParseTagDictionary(r io.Reader, caseSensitive bool) (*TagDictionary, error) {
	return dictionary.ParseTagDictionary(r, caseSensitive)
}
