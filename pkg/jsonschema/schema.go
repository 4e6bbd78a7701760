// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema validates JSON documents against JSON schemas.
//
// A Factory compiles a schema document into a tree of typed
// validators. The compiled Schema is immutable and can validate any
// number of instances, concurrently, returning the full set of
// violations as ValidationMessage values:
//
//	factory := jsonschema.Default()
//	schema, err := factory.GetSchema(`{"type": "object", "required": ["name"]}`)
//	if err != nil { ... }
//	result := schema.Validate(instance)
//	for _, m := range result.Messages() { ... }
//
// The reference dialect is JSON Schema Draft 4. Other dialects and
// custom keywords can be registered through MetaSchemaBuilder and
// Builder.AddMetaSchema.
package jsonschema

import (
	"github.com/sirupsen/logrus"

	"github.com/joblift/json-schema-validator/pkg/jsonpointer"
)

// keywordValidator pairs a keyword with its compiled validator.
// The order of these pairs in Schema.validators is the evaluation
// order.
type keywordValidator struct {
	keyword   string
	validator Validator
}

// Schema is a compiled schema node. It mirrors one object of the
// schema JSON and holds one validator per recognized keyword.
// A Schema is immutable once its compilation finishes and is safe
// for concurrent use.
type Schema struct {
	// node is the raw JSON subtree this schema was compiled from.
	node any
	// path is the JSON pointer of this schema within its document,
	// "#" at the root.
	path string
	// parent is the enclosing compiled schema, nil at a document root.
	parent *Schema
	// context is shared by every schema of one compilation.
	context *ValidationContext
	// url is the absolute URL this document was loaded from,
	// empty when the schema came from text or a parsed node.
	url string
	// validators holds the keyword validators in evaluation order.
	validators []keywordValidator
}

// newSubSchema compiles the schema node at path under parent.
func newSubSchema(path string, node any, parent *Schema, ctx *ValidationContext) (*Schema, error) {
	s := &Schema{
		node:    node,
		path:    path,
		parent:  parent,
		context: ctx,
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s, nil
}

// compile instantiates the validators for every keyword of the schema
// node that the active meta-schema recognizes. Unrecognized keywords
// are ignored; they do not affect the validation result.
func (s *Schema) compile() error {
	obj, ok := s.node.(map[string]any)
	if !ok {
		// Not a schema object. No keywords apply, so the schema
		// matches every instance.
		return nil
	}
	ms := s.context.metaSchema
	for _, keyword := range ms.keywordOrder {
		val, ok := obj[keyword]
		if !ok {
			continue
		}
		factory := ms.keywords[keyword]
		v, err := factory(s.path+"/"+keyword, val, s, s.context)
		if err != nil {
			return err
		}
		if v != nil {
			s.validators = append(s.validators, keywordValidator{keyword, v})
		}
	}
	return nil
}

// SchemaNode returns the raw JSON subtree this schema was compiled from.
func (s *Schema) SchemaNode() any {
	return s.node
}

// SchemaPath returns the JSON pointer of this schema within its document.
func (s *Schema) SchemaPath() string {
	return s.path
}

// Parent returns the enclosing compiled schema, or nil at a root.
func (s *Schema) Parent() *Schema {
	return s.parent
}

// FindAncestor returns the root of the compiled schema tree this
// schema belongs to.
func (s *Schema) FindAncestor() *Schema {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// ResolveRefPointer evaluates a same-document reference fragment,
// a JSON pointer such as "/definitions/positive", against the root of
// this schema's document and returns the raw sub-node it addresses.
func (s *Schema) ResolveRefPointer(fragment string) (any, error) {
	return jsonpointer.Deref(s.FindAncestor().node, fragment)
}

// Validate checks instance against the schema and returns every
// violation found. The instance itself is the validation root and its
// path is "$".
func (s *Schema) Validate(instance any) *MessageSet {
	return s.ValidateAt(instance, instance, "$")
}

// ValidateAt checks the sub-instance node against the schema.
// root is the outermost instance and at is the path of node within
// it. Validators run in the schema's keyword evaluation order; the
// result set preserves that order.
func (s *Schema) ValidateAt(node, root any, at string) *MessageSet {
	logrus.Debugf("validating %s at instance path %s", s.path, at)

	result := NewMessageSet()
	for _, kv := range s.validators {
		result.Merge(kv.validator.Validate(node, root, at))
	}
	return result
}

// idValue returns the schema object's identifier attribute, as named
// by the meta-schema's id keyword, when present and a string.
func (s *Schema) idValue() (string, bool) {
	obj, ok := s.node.(map[string]any)
	if !ok {
		return "", false
	}
	id, ok := obj[s.context.metaSchema.idKeyword].(string)
	return id, ok && id != ""
}
