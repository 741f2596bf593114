// Package bundle saves and loads model bundles.
//
// Example usage:
//
//	import "github.com/born-ml/modelkit/bundle"
//
//	b, err := bundle.New("pos-tagger", "en", model, factory.NewTaggerFactory(nil, tags))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := b.SaveFile("en-pos.bndl"); err != nil {
//	    log.Fatal(err)
//	}
//
//	loaded, err := bundle.Open(ctx, "https://example.com/models/en-pos.bndl")
package bundle

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/bundle"
	"github.com/born-ml/modelkit/internal/factory"
	"github.com/born-ml/modelkit/internal/model"
	"github.com/born-ml/modelkit/internal/serialization"
)

// Bundle is a model with its factory and artifacts.
type Bundle = bundle.Bundle

// Option configures bundle construction and loading.
type Option = bundle.Option

// ReaderOptions configures archive reading.
type ReaderOptions = serialization.ReaderOptions

// Model is the outcome vocabulary of a trained model.
type Model = model.Model

// New builds and validates a bundle.
func New(component, language string, m Model, f factory.Tagger, opts ...Option) (*Bundle, error) {
	return bundle.New(component, language, m, f, opts...)
}

// NewModel creates a stored model from its outcome labels and parameter bytes.
func NewModel(outcomes []string, params []byte) *model.Blob {
	return model.NewBlob(outcomes, params)
}

// Load reads a bundle from r.
func Load(r io.Reader, opts ...Option) (*Bundle, error) {
	return bundle.Load(r, opts...)
}

// LoadFile reads a bundle from the file at path.
func LoadFile(path string, opts ...Option) (*Bundle, error) {
	return bundle.LoadFile(path, opts...)
}

// LoadURL fetches a bundle over HTTP.
func LoadURL(ctx context.Context, url string, opts ...Option) (*Bundle, error) {
	return bundle.LoadURL(ctx, url, opts...)
}

// Open loads a bundle from a URL or a file path.
func Open(ctx context.Context, source string, opts ...Option) (*Bundle, error) {
	return bundle.Open(ctx, source, opts...)
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return bundle.WithLogger(logger)
}

// WithExtensions sets the registry factories are resolved from on load.
func WithExtensions(ext *factory.Extensions) Option {
	return bundle.WithExtensions(ext)
}

// WithTokenizer records the tokenizer name in a new bundle's manifest.
func WithTokenizer(name string) Option {
	return bundle.WithTokenizer(name)
}

// WithProperties adds custom manifest properties to a new bundle.
func WithProperties(props map[string]string) Option {
	return bundle.WithProperties(props)
}

// WithReaderOptions sets how archives are read.
func WithReaderOptions(ro ReaderOptions) Option {
	return bundle.WithReaderOptions(ro)
}

// WithHTTPClient sets the client LoadURL uses.
func WithHTTPClient(c *http.Client) Option {
	return bundle.WithHTTPClient(c)
}
