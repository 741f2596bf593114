package bundle

import (
	"maps"
	"net/http"

	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/factory"
	"github.com/born-ml/modelkit/internal/serialization"
)

// Option configures New and the load functions.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	extensions *factory.Extensions
	tokenizer  string
	properties map[string]string
	reader     serialization.ReaderOptions
	client     *http.Client
}

func buildOptions(opts []Option) *options {
	o := &options{
		logger:     zap.NewNop(),
		extensions: factory.DefaultExtensions,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

// WithExtensions sets the registry factory names are resolved in on load.
// The default is factory.DefaultExtensions.
func WithExtensions(ext *factory.Extensions) Option {
	return func(o *options) {
		if ext != nil {
			o.extensions = ext
		}
	}
}

// WithTokenizer records the tokenizer name in the manifest of a new bundle.
func WithTokenizer(name string) Option {
	return func(o *options) {
		o.tokenizer = name
	}
}

// WithProperties adds custom manifest properties to a new bundle.
func WithProperties(props map[string]string) Option {
	return func(o *options) {
		if o.properties == nil {
			o.properties = make(map[string]string, len(props))
		}
		maps.Copy(o.properties, props)
	}
}

// WithReaderOptions sets how archives are read.
func WithReaderOptions(ro serialization.ReaderOptions) Option {
	return func(o *options) {
		o.reader = ro
	}
}

// WithHTTPClient sets the client LoadURL uses. The default is http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}
