package dictionary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/modelkit/internal/artifact"
)

type tagDictJSON struct {
	CaseSensitive bool           `json:"case_sensitive"`
	Entries       []tagEntryJSON `json:"entries"`
}

type tagEntryJSON struct {
	Word string   `json:"word"`
	Tags []string `json:"tags"`
}

type ngramJSON struct {
	Entries [][]string `json:"entries"`
}

// TagDictionarySerializer encodes a *TagDictionary as JSON with words in sorted order.
var TagDictionarySerializer artifact.Serializer = artifact.SerializerFuncs{
	DecodeFunc: func(data []byte) (artifact.Artifact, error) {
		return DecodeTagDictionary(data)
	},
	EncodeFunc: func(a artifact.Artifact) ([]byte, error) {
		d, ok := a.(*TagDictionary)
		if !ok {
			return nil, &artifact.TypeMismatchError{Want: "*dictionary.TagDictionary", Got: fmt.Sprintf("%T", a)}
		}
		return EncodeTagDictionary(d)
	},
}

// DictionarySerializer encodes a *Dictionary as JSON in insertion order.
var DictionarySerializer artifact.Serializer = artifact.SerializerFuncs{
	DecodeFunc: func(data []byte) (artifact.Artifact, error) {
		return DecodeDictionary(data)
	},
	EncodeFunc: func(a artifact.Artifact) ([]byte, error) {
		d, ok := a.(*Dictionary)
		if !ok {
			return nil, &artifact.TypeMismatchError{Want: "*dictionary.Dictionary", Got: fmt.Sprintf("%T", a)}
		}
		return EncodeDictionary(d)
	},
}

// EncodeTagDictionary serializes d.
func EncodeTagDictionary(d *TagDictionary) ([]byte, error) {
	out := tagDictJSON{
		CaseSensitive: d.CaseSensitive(),
		Entries:       make([]tagEntryJSON, 0, d.Len()),
	}
	for _, w := range d.Words() {
		out.Entries = append(out.Entries, tagEntryJSON{Word: w, Tags: d.entries[w]})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tag dictionary: %w", err)
	}
	return data, nil
}

// DecodeTagDictionary parses data produced by EncodeTagDictionary.
func DecodeTagDictionary(data []byte) (*TagDictionary, error) {
	var in tagDictJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, &artifact.FormatError{Key: artifact.KindTagDict, Reason: "failed to parse tag dictionary", Err: err}
	}
	d := NewTagDictionary()
	d.foldCase = !in.CaseSensitive
	for _, e := range in.Entries {
		if e.Word == "" {
			return nil, &artifact.FormatError{Key: artifact.KindTagDict, Reason: "entry with empty word"}
		}
		d.Put(e.Word, e.Tags...)
	}
	return d, nil
}

// EncodeDictionary serializes d.
func EncodeDictionary(d *Dictionary) ([]byte, error) {
	data, err := json.Marshal(ngramJSON{Entries: d.entries})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dictionary: %w", err)
	}
	return data, nil
}

// DecodeDictionary parses data produced by EncodeDictionary.
func DecodeDictionary(data []byte) (*Dictionary, error) {
	var in ngramJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, &artifact.FormatError{Key: artifact.KindDictionary, Reason: "failed to parse dictionary", Err: err}
	}
	d := NewDictionary()
	for i, e := range in.Entries {
		if len(e) == 0 {
			return nil, &artifact.FormatError{Key: artifact.KindDictionary, Reason: fmt.Sprintf("entry %d is empty", i)}
		}
		d.Add(e...)
	}
	return d, nil
}

// ParseTagDictionary reads a plain-text tag dictionary: one word per line followed
// by its tags, whitespace separated. Blank lines and lines starting with '#' are
// skipped.
func ParseTagDictionary(r io.Reader, caseSensitive bool) (*TagDictionary, error) {
	d := NewTagDictionary()
	d.foldCase = !caseSensitive

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &artifact.FormatError{Reason: fmt.Sprintf("line %d: word %q has no tags", lineNo, fields[0])}
		}
		d.Put(fields[0], fields[1:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tag dictionary: %w", err)
	}
	return d, nil
}
