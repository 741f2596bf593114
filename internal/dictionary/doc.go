// Package dictionary provides the dictionary artifacts a tagger bundle can carry.
//
// TagDictionary maps a word to the tags it may receive; a tagger consults it to
// restrict its search. Dictionary is a set of token sequences, used as an n-gram
// feature dictionary. Both implement artifact.Artifact and ship with JSON
// serializers.
package dictionary
