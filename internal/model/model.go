// Package model defines how the framework sees a trained statistical model: only
// through the set of outcomes it can emit.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/born-ml/modelkit/internal/artifact"
)

// Model is a trained model as far as artifact validation is concerned.
type Model interface {
	artifact.Artifact

	// NumOutcomes returns the number of labels the model can emit.
	NumOutcomes() int

	// Outcome returns the i-th label, 0 <= i < NumOutcomes().
	Outcome(i int) string
}

// Outcomes returns the deduplicated outcome vocabulary of m.
func Outcomes(m Model) map[string]struct{} {
	set := make(map[string]struct{}, m.NumOutcomes())
	for i := range m.NumOutcomes() {
		set[m.Outcome(i)] = struct{}{}
	}
	return set
}

// Blob is the stored form of a model: its outcome labels and opaque parameters
// produced by the trainer.
type Blob struct {
	outcomes []string
	params   []byte
}

var _ Model = (*Blob)(nil)

// NewBlob creates a model blob. Both arguments are copied.
func NewBlob(outcomes []string, params []byte) *Blob {
	return &Blob{outcomes: slices.Clone(outcomes), params: bytes.Clone(params)}
}

// Kind returns artifact.KindModel.
func (b *Blob) Kind() artifact.Kind {
	return artifact.KindModel
}

// NumOutcomes returns the number of outcome labels.
func (b *Blob) NumOutcomes() int {
	return len(b.outcomes)
}

// Outcome returns the i-th outcome label.
func (b *Blob) Outcome(i int) string {
	return b.outcomes[i]
}

// Params returns a copy of the trainer's parameter bytes.
func (b *Blob) Params() []byte {
	return bytes.Clone(b.params)
}

// Equal reports whether both blobs hold the same outcomes and parameters.
func (b *Blob) Equal(other *Blob) bool {
	if b == nil || other == nil {
		return b == other
	}
	return slices.Equal(b.outcomes, other.outcomes) && bytes.Equal(b.params, other.params)
}

type blobJSON struct {
	Outcomes []string `json:"outcomes"`
	Params   []byte   `json:"params,omitempty"`
}

// Serializer encodes any Model as JSON. Decoding always yields a *Blob.
var Serializer artifact.Serializer = artifact.SerializerFuncs{
	DecodeFunc: func(data []byte) (artifact.Artifact, error) {
		var in blobJSON
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, &artifact.FormatError{Key: artifact.KindModel, Reason: "failed to parse model", Err: err}
		}
		return &Blob{outcomes: in.Outcomes, params: in.Params}, nil
	},
	EncodeFunc: func(a artifact.Artifact) ([]byte, error) {
		m, ok := a.(Model)
		if !ok {
			return nil, &artifact.TypeMismatchError{Want: "model.Model", Got: fmt.Sprintf("%T", a)}
		}
		out := blobJSON{Outcomes: make([]string, m.NumOutcomes())}
		for i := range out.Outcomes {
			out.Outcomes[i] = m.Outcome(i)
		}
		if b, ok := m.(*Blob); ok {
			out.Params = b.params
		}
		data, err := json.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal model: %w", err)
		}
		return data, nil
	},
}
