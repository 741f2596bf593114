package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/artifact"
	"github.com/born-ml/modelkit/internal/factory"
	"github.com/born-ml/modelkit/internal/manifest"
	"github.com/born-ml/modelkit/internal/model"
	"github.com/born-ml/modelkit/internal/serialization"
)

// Save writes the bundle as an archive. Each artifact is encoded with the
// serializer registered for its kind.
func (b *Bundle) Save(w io.Writer) error {
	entries, err := b.encode()
	if err != nil {
		return err
	}
	if err := serialization.Write(w, entries); err != nil {
		return fmt.Errorf("save bundle %q: %w", b.manifest.Component, err)
	}
	b.logger.Debug("bundle saved", zap.Int("entries", len(entries)))
	return nil
}

// SaveFile writes the bundle to the archive file at path.
func (b *Bundle) SaveFile(path string) (err error) {
	entries, err := b.encode()
	if err != nil {
		return err
	}

	w, err := serialization.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := w.WriteEntries(entries); err != nil {
		return fmt.Errorf("save bundle %q: %w", b.manifest.Component, err)
	}
	b.logger.Info("bundle saved", zap.String("path", path), zap.Int("entries", len(entries)))
	return nil
}

func (b *Bundle) encode() ([]serialization.Entry, error) {
	reg := b.Serializers()
	artifacts := b.Artifacts()

	entries := make([]serialization.Entry, 0, artifacts.Len())
	for name, a := range artifacts.All() {
		s, err := reg.Resolve(a.Kind())
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		data, err := s.Encode(a)
		if err != nil {
			return nil, fmt.Errorf("entry %q: failed to encode: %w", name, err)
		}
		entries = append(entries, serialization.Entry{Name: name, Type: a.Kind(), Data: data})
	}
	return entries, nil
}

// Load reads a bundle archive from r.
func Load(r io.Reader, opts ...Option) (*Bundle, error) {
	o := buildOptions(opts)
	archive, err := serialization.Read(r, o.reader)
	if err != nil {
		return nil, err
	}
	return decode(archive, o)
}

// LoadFile reads the bundle archive at path.
func LoadFile(path string, opts ...Option) (*Bundle, error) {
	o := buildOptions(opts)
	archive, err := serialization.Open(path, o.reader)
	if err != nil {
		return nil, err
	}
	return decode(archive, o)
}

// LoadURL fetches and reads a bundle archive over HTTP.
func LoadURL(ctx context.Context, rawURL string, opts ...Option) (*Bundle, error) {
	o := buildOptions(opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", rawURL, resp.Status)
	}

	archive, err := serialization.Read(resp.Body, o.reader)
	if err != nil {
		return nil, err
	}
	return decode(archive, o)
}

// Open loads a bundle from an http or https URL, or otherwise from a file path.
func Open(ctx context.Context, source string, opts ...Option) (*Bundle, error) {
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return LoadURL(ctx, source, opts...)
	}
	return LoadFile(source, opts...)
}

// decode turns an archive into a bundle: manifest first, then the factory it
// names, then every entry with the merged serializers. Validation runs last.
func decode(archive *serialization.Archive, o *options) (*Bundle, error) {
	entry, ok := archive.Entry(manifest.EntryName)
	if !ok {
		return nil, &artifact.FormatError{Entry: manifest.EntryName, Reason: "manifest entry is missing"}
	}
	if entry.Type != artifact.KindManifest {
		return nil, &artifact.FormatError{Entry: manifest.EntryName, Key: entry.Type, Reason: "manifest entry has wrong type"}
	}
	man, err := manifest.Decode(entry.Data)
	if err != nil {
		return nil, err
	}

	logger := o.logger.With(zap.String("component", "bundle"), zap.String("bundle", man.Component))

	f, err := o.extensions.Create(man.Factory, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("load bundle %q: %w", man.Component, err)
	}

	reg := DefaultSerializers()
	reg.Merge(f.Serializers())

	artifacts := artifact.NewMap()
	for _, e := range archive.Entries() {
		if e.Name == manifest.EntryName {
			if err := artifacts.Put(e.Name, man); err != nil {
				return nil, err
			}
			continue
		}

		s, err := reg.Resolve(e.Type)
		if err != nil {
			return nil, &artifact.FormatError{Entry: e.Name, Key: e.Type, Reason: "unknown artifact type", Err: err}
		}
		a, err := s.Decode(e.Data)
		if err != nil {
			return nil, &artifact.FormatError{Entry: e.Name, Key: e.Type, Reason: "failed to decode", Err: err}
		}
		if err := artifacts.Put(e.Name, a); err != nil {
			return nil, &artifact.FormatError{Entry: e.Name, Key: e.Type, Err: err}
		}
	}

	f.Attach(artifacts)
	if err := f.Validate(); err != nil {
		logger.Warn("bundle validation failed", zap.Error(err))
		return nil, fmt.Errorf("load bundle %q: %w", man.Component, err)
	}

	m, err := lookupModel(artifacts)
	if err != nil {
		return nil, err
	}

	logger.Debug("bundle loaded",
		zap.String("factory", man.Factory),
		zap.Int("entries", artifacts.Len()))

	return newBundle(man, m, f, artifacts, o.logger), nil
}

func lookupModel(artifacts *artifact.Map) (model.Model, error) {
	a, ok := artifacts.Get(factory.ModelEntryName)
	if !ok {
		return nil, &artifact.FormatError{Entry: factory.ModelEntryName, Reason: "model entry is missing"}
	}
	m, ok := a.(model.Model)
	if !ok {
		return nil, &artifact.TypeMismatchError{Name: factory.ModelEntryName, Want: "model.Model", Got: fmt.Sprintf("%T", a)}
	}
	return m, nil
}

// IsResolutionError reports whether err failed because the factory named in a
// manifest could not be created.
func IsResolutionError(err error) bool {
	return errors.Is(err, factory.ErrResolution)
}
