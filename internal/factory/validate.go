package factory

import (
	"fmt"
	"sort"

	"github.com/born-ml/modelkit/internal/artifact"
	"github.com/born-ml/modelkit/internal/dictionary"
	"github.com/born-ml/modelkit/internal/model"
)

// ValidateArtifacts checks a loaded artifact set:
//   - a tag dictionary, if present, must be a *dictionary.TagDictionary whose tags
//     are all outcomes of the model;
//   - an n-gram dictionary, if present, must be a *dictionary.Dictionary.
//
// Type checks run before content checks. Absent dictionaries are not an error.
func ValidateArtifacts(p artifact.Provider) error {
	if entry, ok := p.Artifact(TagDictEntryName); ok {
		tags, isTagDict := entry.(*dictionary.TagDictionary)
		if !isTagDict {
			return &artifact.TypeMismatchError{Name: TagDictEntryName, Want: "*dictionary.TagDictionary", Got: typeName(entry)}
		}
		m, err := lookupModel(p)
		if err != nil {
			return err
		}
		if err := CheckTagsCompatible(tags, m); err != nil {
			return err
		}
	}

	if entry, ok := p.Artifact(NGramEntryName); ok {
		if _, isDict := entry.(*dictionary.Dictionary); !isDict {
			return &artifact.TypeMismatchError{Name: NGramEntryName, Want: "*dictionary.Dictionary", Got: typeName(entry)}
		}
	}
	return nil
}

// CheckTagsCompatible returns a *artifact.CompatibilityError listing every tag of d
// that m cannot emit.
func CheckTagsCompatible(d *dictionary.TagDictionary, m model.Model) error {
	outcomes := model.Outcomes(m)
	var unknown []string
	for tag := range d.TagSet() {
		if _, ok := outcomes[tag]; !ok {
			unknown = append(unknown, tag)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &artifact.CompatibilityError{Unknown: unknown}
}

func lookupModel(p artifact.Provider) (model.Model, error) {
	entry, ok := p.Artifact(ModelEntryName)
	if !ok {
		return nil, &artifact.FormatError{Entry: ModelEntryName, Reason: "model entry is missing"}
	}
	m, ok := entry.(model.Model)
	if !ok {
		return nil, &artifact.TypeMismatchError{Name: ModelEntryName, Want: "model.Model", Got: typeName(entry)}
	}
	return m, nil
}

func typeName(a artifact.Artifact) string {
	return fmt.Sprintf("%T", a)
}
