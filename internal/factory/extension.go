package factory

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/dictionary"
)

// maxSuggestionDistance bounds the edit distance of a "did you mean" suggestion.
const maxSuggestionDistance = 3

// ErrResolution matches every *ResolutionError.
var ErrResolution = errors.New("factory resolution failed")

// TaggerConstructor is the mandatory constructor shape of a Tagger extension.
type TaggerConstructor func(ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (Tagger, error)

// ResolutionReason classifies a ResolutionError.
type ResolutionReason int

// Resolution failure reasons.
const (
	ReasonNotFound ResolutionReason = iota + 1
	ReasonSignature
	ReasonConstructor
)

// String returns the reason name.
func (r ResolutionReason) String() string {
	switch r {
	case ReasonNotFound:
		return "not_found"
	case ReasonSignature:
		return "signature_mismatch"
	case ReasonConstructor:
		return "constructor_failed"
	default:
		return "unknown"
	}
}

// ResolutionError reports why a named factory extension could not be created.
type ResolutionError struct {
	TypeName   string
	Reason     ResolutionReason
	Suggestion string // closest registered name, for ReasonNotFound
	Got        string // registered constructor type, for ReasonSignature
	Err        error  // constructor failure, for ReasonConstructor
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	switch e.Reason {
	case ReasonNotFound:
		msg := fmt.Sprintf("could not resolve factory %q: no such type is registered", e.TypeName)
		if e.Suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
		}
		return msg
	case ReasonSignature:
		return fmt.Sprintf("could not instantiate factory %q: the mandatory constructor (Dictionary, TagDictionary) is missing, registered value is %s", e.TypeName, e.Got)
	default:
		return fmt.Sprintf("could not instantiate factory %q: the constructor (Dictionary, TagDictionary) failed: %v", e.TypeName, e.Err)
	}
}

// Unwrap returns the constructor failure, if any.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// Is matches ErrResolution.
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// Extensions is a registry of named Tagger constructors.
//
// It is safe for concurrent use: registration typically happens in init functions
// while lookups happen at load time.
type Extensions struct {
	mu     sync.RWMutex
	ctors  map[string]any
	logger *zap.Logger
}

// NewExtensions creates an empty registry. A nil logger discards output.
func NewExtensions(logger *zap.Logger) *Extensions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extensions{
		ctors:  make(map[string]any),
		logger: logger.With(zap.String("component", "factory_extensions")),
	}
}

// Register stores ctor under name, replacing any previous registration.
//
// ctor should be a TaggerConstructor. Other values are accepted so a malformed
// extension is reported when it is resolved, not when the program starts.
func (e *Extensions) Register(name string, ctor any) error {
	if name == "" {
		return errors.New("extension name must not be empty")
	}
	if ctor == nil {
		return fmt.Errorf("extension %q: constructor must not be nil", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.ctors[name]; exists {
		e.logger.Debug("extension replaced", zap.String("name", name))
	}
	e.ctors[name] = ctor
	return nil
}

// Unregister removes name.
func (e *Extensions) Unregister(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.ctors, name)
}

// Names returns the registered names in sorted order.
func (e *Extensions) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Sorted(maps.Keys(e.ctors))
}

// Create instantiates the extension called name with the given dictionaries. An
// empty name returns the default TaggerFactory.
func (e *Extensions) Create(name string, ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (Tagger, error) {
	if name == "" {
		return NewTaggerFactory(ngram, tags), nil
	}

	t, err := e.create(name, ngram, tags)
	if err != nil {
		e.logger.Warn("factory resolution failed",
			zap.String("type", name),
			zap.Error(err))
		return nil, err
	}
	e.logger.Debug("factory resolved", zap.String("type", name))
	return t, nil
}

func (e *Extensions) create(name string, ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (Tagger, error) {
	e.mu.RLock()
	registered, ok := e.ctors[name]
	e.mu.RUnlock()
	if !ok {
		return nil, &ResolutionError{TypeName: name, Reason: ReasonNotFound, Suggestion: e.suggest(name)}
	}

	var ctor TaggerConstructor
	switch c := registered.(type) {
	case TaggerConstructor:
		ctor = c
	case func(*dictionary.Dictionary, *dictionary.TagDictionary) (Tagger, error):
		ctor = c
	default:
		return nil, &ResolutionError{TypeName: name, Reason: ReasonSignature, Got: fmt.Sprintf("%T", registered)}
	}

	t, err := invoke(ctor, ngram, tags)
	if err != nil {
		return nil, &ResolutionError{TypeName: name, Reason: ReasonConstructor, Err: err}
	}
	if t == nil {
		return nil, &ResolutionError{TypeName: name, Reason: ReasonConstructor, Err: errors.New("constructor returned nil")}
	}
	return t, nil
}

func invoke(ctor TaggerConstructor, ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (t Tagger, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return ctor(ngram, tags)
}

// suggest returns the registered name closest to name, or "".
func (e *Extensions) suggest(name string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, candidate := range e.Names() {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// DefaultExtensions is the process-wide registry used by RegisterExtension and
// CreateExtended.
var DefaultExtensions = NewExtensions(nil)

// RegisterExtension registers ctor in DefaultExtensions. It is meant for init
// functions and panics if name is empty or ctor is nil.
func RegisterExtension(name string, ctor TaggerConstructor) {
	if ctor == nil {
		panic("factory: RegisterExtension constructor is nil")
	}
	if err := DefaultExtensions.Register(name, ctor); err != nil {
		panic("factory: " + err.Error())
	}
}

// CreateExtended resolves name through DefaultExtensions.
func CreateExtended(name string, ngram *dictionary.Dictionary, tags *dictionary.TagDictionary) (Tagger, error) {
	return DefaultExtensions.Create(name, ngram, tags)
}
