// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/joblift/json-schema-validator/pkg/urlfetch"
)

// Infrastructure errors. These abort a factory call; they are never
// part of a validation result.
var (
	// ErrInvalidConfiguration is returned by Builder.Build when the
	// configuration is incomplete or inconsistent.
	ErrInvalidConfiguration = errors.New("invalid factory configuration")
	// ErrUnknownMetaSchema is returned when a schema names a
	// $schema URI no registered meta-schema matches.
	ErrUnknownMetaSchema = errors.New("unknown meta-schema")
	// ErrSchemaLoad is returned when a schema document cannot be
	// read or parsed.
	ErrSchemaLoad = errors.New("failed to load schema")
	// ErrUnresolvableRef is returned when the document a $ref points
	// into cannot be fetched.
	ErrUnresolvableRef = errors.New("unresolvable reference")
)

// ParseFunc turns schema or instance bytes into a parsed JSON value.
type ParseFunc func([]byte) (any, error)

// ParseJSON is the default ParseFunc. It decodes with
// encoding/json, keeping numbers as json.Number so integers and
// non-integers stay distinguishable.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Factory compiles schema documents. A Factory is immutable after
// Build and safe to share between goroutines; getSchema calls that
// fetch the same URL in parallel may fetch it twice, as the factory
// performs no implicit caching.
type Factory struct {
	parse                ParseFunc
	fetcher              urlfetch.Fetcher
	defaultMetaSchemaURI string
	metaSchemas          map[string]*MetaSchema
}

// Builder assembles a Factory.
type Builder struct {
	parse                ParseFunc
	fetcher              urlfetch.Fetcher
	defaultMetaSchemaURI string
	metaSchemas          map[string]*MetaSchema
}

// NewBuilder returns an empty factory builder. It carries no
// meta-schemas; most callers want Default or BuilderFrom instead.
func NewBuilder() *Builder {
	return &Builder{
		metaSchemas: make(map[string]*MetaSchema),
	}
}

// BuilderFrom returns a builder preloaded with the configuration of
// an existing factory.
func BuilderFrom(f *Factory) *Builder {
	b := NewBuilder().
		Parser(f.parse).
		URLFetcher(f.fetcher).
		DefaultMetaSchemaURI(f.defaultMetaSchemaURI)
	for _, ms := range f.metaSchemas {
		b.AddMetaSchema(ms)
	}
	return b
}

// Parser overrides the JSON parser used for schema documents.
func (b *Builder) Parser(p ParseFunc) *Builder {
	b.parse = p
	return b
}

// URLFetcher overrides the strategy that turns a URL into a byte
// stream when loading schemas or resolving remote references.
func (b *Builder) URLFetcher(f urlfetch.Fetcher) *Builder {
	b.fetcher = f
	return b
}

// DefaultMetaSchemaURI sets the dialect used for schemas that do not
// declare $schema.
func (b *Builder) DefaultMetaSchemaURI(uri string) *Builder {
	b.defaultMetaSchemaURI = uri
	return b
}

// AddMetaSchema registers a dialect under its URI.
func (b *Builder) AddMetaSchema(ms *MetaSchema) *Builder {
	b.metaSchemas[ms.URI()] = ms
	return b
}

// Build validates the configuration and returns the factory.
func (b *Builder) Build() (*Factory, error) {
	if b.defaultMetaSchemaURI == "" {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: default meta-schema URI must not be empty", ErrInvalidConfiguration))
	}
	if len(b.metaSchemas) == 0 {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: at least one meta-schema must be registered", ErrInvalidConfiguration))
	}
	if _, ok := b.metaSchemas[b.defaultMetaSchemaURI]; !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: no meta-schema registered for default URI %q", ErrInvalidConfiguration, b.defaultMetaSchemaURI))
	}

	parse := b.parse
	if parse == nil {
		parse = ParseJSON
	}
	fetcher := b.fetcher
	if fetcher == nil {
		fetcher = &urlfetch.Standard{}
	}
	metaSchemas := make(map[string]*MetaSchema, len(b.metaSchemas))
	for uri, ms := range b.metaSchemas {
		metaSchemas[uri] = ms
	}

	return &Factory{
		parse:                parse,
		fetcher:              fetcher,
		defaultMetaSchemaURI: b.defaultMetaSchemaURI,
		metaSchemas:          metaSchemas,
	}, nil
}

// Default returns a factory preconfigured with the Draft 4
// meta-schema and the standard URL fetcher.
func Default() *Factory {
	draft4 := DraftV4()
	f, err := NewBuilder().
		DefaultMetaSchemaURI(draft4.URI()).
		AddMetaSchema(draft4).
		Build()
	if err != nil {
		panic(fmt.Sprintf("building the default factory failed, which should be impossible: %v", err))
	}
	return f
}

// GetSchema parses schema text and compiles it.
func (f *Factory) GetSchema(schema string) (*Schema, error) {
	node, err := f.parse([]byte(schema))
	if err != nil {
		logrus.Errorf("failed to parse schema: %v", err)
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: parse: %v", ErrSchemaLoad, err))
	}
	return f.GetSchemaFromNode(node)
}

// GetSchemaFromReader reads a schema document from r and compiles it.
func (f *Factory) GetSchemaFromReader(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		logrus.Errorf("failed to read schema: %v", err)
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: read: %v", ErrSchemaLoad, err))
	}
	return f.GetSchema(string(data))
}

// GetSchemaFromURL fetches, parses, and compiles the schema document
// at rawURL. The compiled root records the URL as its absolute
// identifier, so same-document references by that URL resolve without
// another fetch.
func (f *Factory) GetSchemaFromURL(rawURL string) (*Schema, error) {
	rc, err := f.fetcher.Fetch(rawURL)
	if err != nil {
		logrus.Errorf("failed to fetch schema from %s: %v", rawURL, err)
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: fetch %q: %v", ErrSchemaLoad, rawURL, err))
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		logrus.Errorf("failed to read schema from %s: %v", rawURL, err)
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: read %q: %v", ErrSchemaLoad, rawURL, err))
	}
	node, err := f.parse(data)
	if err != nil {
		logrus.Errorf("failed to parse schema from %s: %v", rawURL, err)
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: parse %q: %v", ErrSchemaLoad, rawURL, err))
	}

	docURL := normalizeURL(rawURL)
	if ms, err := f.metaSchemaFor(node); err == nil {
		if id := readID(node, ms.IDKeyword()); id != "" {
			logrus.Debugf("matching schema id %s to source url %s: %t", id, docURL, normalizeURL(id) == docURL)
		}
	}

	return f.newRootSchema(node, docURL)
}

// GetSchemaFromNode compiles an already-parsed schema document.
func (f *Factory) GetSchemaFromNode(node any) (*Schema, error) {
	return f.newRootSchema(node, "")
}

// newRootSchema compiles a document and then binds every reference
// discovered during compilation.
func (f *Factory) newRootSchema(node any, docURL string) (*Schema, error) {
	state := newCompileState()
	s, err := f.compileDocument(node, docURL, state)
	if err != nil {
		return nil, err
	}
	if err := state.resolveAll(); err != nil {
		return nil, err
	}
	return s, nil
}

// compileDocument compiles one schema document under the meta-schema
// the document declares. The root is registered in the compile state
// before its validators are built, so references that loop back into
// the document find it.
func (f *Factory) compileDocument(node any, docURL string, state *compileState) (*Schema, error) {
	ms, err := f.metaSchemaFor(node)
	if err != nil {
		return nil, err
	}
	ctx := &ValidationContext{
		metaSchema: ms,
		factory:    f,
		state:      state,
	}
	s := &Schema{
		node:    node,
		path:    "#",
		context: ctx,
		url:     docURL,
	}
	if docURL != "" {
		state.docs.Store(docURL, s)
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s, nil
}

// metaSchemaFor selects the dialect for a schema document: the
// $schema attribute of the root when present, the factory default
// otherwise.
func (f *Factory) metaSchemaFor(node any) (*MetaSchema, error) {
	uri := f.defaultMetaSchemaURI
	if obj, ok := node.(map[string]any); ok {
		if declared, ok := obj["$schema"].(string); ok && declared != "" {
			uri = declared
		}
	}
	ms, ok := f.metaSchemas[uri]
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %q", ErrUnknownMetaSchema, uri))
	}
	return ms, nil
}

// readID returns the document's identifier attribute, if any.
func readID(node any, idKeyword string) string {
	obj, ok := node.(map[string]any)
	if !ok {
		return ""
	}
	id, _ := obj[idKeyword].(string)
	return id
}

// normalizeURL returns a canonical form of a schema document URL:
// parsed, with any fragment dropped. Comparing normalized URLs
// avoids treating "http://x/s.json" and "http://x/s.json#" as two
// documents.
func normalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.TrimSuffix(rawURL, "#")
	}
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "#")
}
