package factory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/modelkit/internal/artifact"
	"github.com/born-ml/modelkit/internal/dictionary"
)

// strictTagger is an extension that rejects empty tag dictionaries.
type strictTagger struct {
	*TaggerFactory
}

func (s *strictTagger) Name() string { return "StrictTagger" }

func (s *strictTagger) Validate() error {
	if d := s.TagDictionary(); d != nil && d.Len() == 0 {
		return errors.New("tag dictionary is empty")
	}
	return s.TaggerFactory.Validate()
}

func newStrictTagger(ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (Tagger, error) {
	return &strictTagger{TaggerFactory: NewTaggerFactory(ngram, tags)}, nil
}

func TestExtensions_EmptyNameReturnsDefault(t *testing.T) {
	ext := NewExtensions(nil)
	tags := dictionary.NewTagDictionary()

	f, err := ext.Create("", nil, tags)
	require.NoError(t, err)

	def, ok := f.(*TaggerFactory)
	require.True(t, ok)
	assert.Same(t, tags, def.TagDictionary())
	assert.Empty(t, def.Name())
}

func TestExtensions_CreateRegistered(t *testing.T) {
	ext := NewExtensions(nil)
	require.NoError(t, ext.Register("StrictTagger", TaggerConstructor(newStrictTagger)))

	ngram := dictionary.NewDictionary()
	tags := dictionary.NewTagDictionary()
	f, err := ext.Create("StrictTagger", ngram, tags)
	require.NoError(t, err)

	strict, ok := f.(*strictTagger)
	require.True(t, ok)
	assert.Equal(t, "StrictTagger", strict.Name())
	assert.Same(t, ngram, strict.Dictionary())
	assert.EqualError(t, strict.Validate(), "tag dictionary is empty")
}

func TestExtensions_AcceptsPlainFunc(t *testing.T) {
	ext := NewExtensions(nil)
	require.NoError(t, ext.Register("Plain", newStrictTagger))

	_, err := ext.Create("Plain", nil, nil)
	assert.NoError(t, err)
}

func TestExtensions_NotFound(t *testing.T) {
	ext := NewExtensions(nil)

	_, err := ext.Create("NoSuchType", nil, nil)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.ErrorIs(t, err, ErrResolution)
	assert.Equal(t, ReasonNotFound, resErr.Reason)
	assert.Contains(t, err.Error(), "NoSuchType")
	assert.Empty(t, resErr.Suggestion)
}

func TestExtensions_NotFoundSuggestsClosestName(t *testing.T) {
	ext := NewExtensions(nil)
	require.NoError(t, ext.Register("StrictTagger", TaggerConstructor(newStrictTagger)))
	require.NoError(t, ext.Register("Unrelated", TaggerConstructor(newStrictTagger)))

	_, err := ext.Create("strictagger", nil, nil)

	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "StrictTagger", resErr.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "StrictTagger"?`)
}

func TestExtensions_SignatureMismatch(t *testing.T) {
	tests := []struct {
		name string
		ctor any
		got  string
	}{
		{"no arguments", func() (Tagger, error) { return nil, nil }, "func() (factory.Tagger, error)"},
		{"wrong result", func(*dictionary.Dictionary, *dictionary.TagDictionary) Tagger { return nil }, "func(*dictionary.Dictionary, *dictionary.TagDictionary) factory.Tagger"},
		{"not a function", "StrictTagger", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := NewExtensions(nil)
			require.NoError(t, ext.Register("Broken", tt.ctor))

			_, err := ext.Create("Broken", nil, nil)

			var resErr *ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, ReasonSignature, resErr.Reason)
			assert.Equal(t, tt.got, resErr.Got)
			assert.Contains(t, err.Error(), "mandatory constructor")
		})
	}
}

func TestExtensions_ConstructorFailure(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		ctor TaggerConstructor
		want string
	}{
		{
			name: "error",
			ctor: func(*dictionary.Dictionary, *dictionary.TagDictionary) (Tagger, error) { return nil, boom },
			want: "boom",
		},
		{
			name: "panic",
			ctor: func(*dictionary.Dictionary, *dictionary.TagDictionary) (Tagger, error) { panic("no dictionaries") },
			want: "panic: no dictionaries",
		},
		{
			name: "nil factory",
			ctor: func(*dictionary.Dictionary, *dictionary.TagDictionary) (Tagger, error) { return nil, nil },
			want: "constructor returned nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := NewExtensions(nil)
			require.NoError(t, ext.Register("Failing", tt.ctor))

			_, err := ext.Create("Failing", nil, nil)

			var resErr *ResolutionError
			require.ErrorAs(t, err, &resErr)
			assert.Equal(t, ReasonConstructor, resErr.Reason)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	ext := NewExtensions(nil)
	require.NoError(t, ext.Register("Failing", tests[0].ctor))
	_, err := ext.Create("Failing", nil, nil)
	assert.ErrorIs(t, err, boom)
}

func TestExtensions_RegisterRejectsInvalid(t *testing.T) {
	ext := NewExtensions(nil)

	assert.Error(t, ext.Register("", TaggerConstructor(newStrictTagger)))
	assert.Error(t, ext.Register("Nil", nil))
	assert.Empty(t, ext.Names())
}

func TestExtensions_Unregister(t *testing.T) {
	ext := NewExtensions(nil)
	require.NoError(t, ext.Register("B", TaggerConstructor(newStrictTagger)))
	require.NoError(t, ext.Register("A", TaggerConstructor(newStrictTagger)))
	assert.Equal(t, []string{"A", "B"}, ext.Names())

	ext.Unregister("B")
	assert.Equal(t, []string{"A"}, ext.Names())

	_, err := ext.Create("B", nil, nil)
	assert.ErrorIs(t, err, ErrResolution)
}

func TestExtensions_ConcurrentUse(t *testing.T) {
	ext := NewExtensions(nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("Tagger%d", i)
			assert.NoError(t, ext.Register(name, TaggerConstructor(newStrictTagger)))
			_, err := ext.Create(name, nil, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, ext.Names(), 8)
}

func TestRegisterExtension(t *testing.T) {
	RegisterExtension("StrictTaggerTest", newStrictTagger)
	t.Cleanup(func() { DefaultExtensions.Unregister("StrictTaggerTest") })

	f, err := CreateExtended("StrictTaggerTest", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "StrictTagger", f.Name())

	assert.Panics(t, func() { RegisterExtension("", newStrictTagger) })
	assert.Panics(t, func() { RegisterExtension("Nil", nil) })
}

func TestResolutionReason_String(t *testing.T) {
	assert.Equal(t, "not_found", ReasonNotFound.String())
	assert.Equal(t, "signature_mismatch", ReasonSignature.String())
	assert.Equal(t, "constructor_failed", ReasonConstructor.String())
	assert.Equal(t, "unknown", ResolutionReason(0).String())
}

var _ artifact.Provider = (*strictTagger)(nil)
