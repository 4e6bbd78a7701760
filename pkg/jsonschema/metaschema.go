// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"sync"

	"github.com/joblift/json-schema-validator/pkg/format"
)

// DraftV4URI is the meta-schema URI of JSON Schema Draft 4.
const DraftV4URI = "http://json-schema.org/draft-04/schema#"

// MetaSchema defines a dialect: which keywords are active, how the
// schema identifier attribute is spelled, and which formats the
// format keyword recognizes. Meta-schemas are selected exactly by
// URI; two meta-schemas are never merged.
type MetaSchema struct {
	uri          string
	idKeyword    string
	keywords     map[string]ValidatorFactory
	keywordOrder []string
	formats      map[string]format.Validator
}

// URI returns the meta-schema URI this dialect is registered under.
func (m *MetaSchema) URI() string {
	return m.uri
}

// IDKeyword returns the name of the schema identifier attribute,
// "id" for Draft 4 and "$id" for Draft 6 and later.
func (m *MetaSchema) IDKeyword() string {
	return m.idKeyword
}

// Format returns the format validator registered under name,
// or nil when the format is unknown to this dialect.
func (m *MetaSchema) Format(name string) format.Validator {
	return m.formats[name]
}

// MetaSchemaBuilder assembles a MetaSchema. It is the extension
// surface for newer drafts and custom vocabularies: register the
// keywords and formats of the dialect, then Build.
type MetaSchemaBuilder struct {
	uri          string
	idKeyword    string
	keywords     map[string]ValidatorFactory
	keywordOrder []string
	formats      map[string]format.Validator
}

// NewMetaSchemaBuilder returns a builder for a dialect registered
// under uri. The id keyword defaults to "id".
func NewMetaSchemaBuilder(uri string) *MetaSchemaBuilder {
	return &MetaSchemaBuilder{
		uri:       uri,
		idKeyword: "id",
		keywords:  make(map[string]ValidatorFactory),
		formats:   make(map[string]format.Validator),
	}
}

// IDKeyword sets the name of the schema identifier attribute.
func (b *MetaSchemaBuilder) IDKeyword(name string) *MetaSchemaBuilder {
	b.idKeyword = name
	return b
}

// AddKeyword registers a keyword. Registration order is the
// evaluation order of the dialect.
func (b *MetaSchemaBuilder) AddKeyword(name string, factory ValidatorFactory) *MetaSchemaBuilder {
	if _, ok := b.keywords[name]; !ok {
		b.keywordOrder = append(b.keywordOrder, name)
	}
	b.keywords[name] = factory
	return b
}

// AddFormat registers a format validator for the format keyword.
func (b *MetaSchemaBuilder) AddFormat(name string, fv format.Validator) *MetaSchemaBuilder {
	b.formats[name] = fv
	return b
}

// Build returns the assembled meta-schema.
func (b *MetaSchemaBuilder) Build() (*MetaSchema, error) {
	if b.uri == "" {
		return nil, fmt.Errorf("%w: meta-schema URI must not be empty", ErrInvalidConfiguration)
	}
	return &MetaSchema{
		uri:          b.uri,
		idKeyword:    b.idKeyword,
		keywords:     b.keywords,
		keywordOrder: b.keywordOrder,
		formats:      b.formats,
	}, nil
}

// DraftV4 returns the Draft 4 meta-schema.
var DraftV4 = sync.OnceValue(func() *MetaSchema {
	b := NewMetaSchemaBuilder(DraftV4URI).
		AddKeyword("$ref", newRefValidator).
		AddKeyword("type", newTypeValidator).
		AddKeyword("enum", newEnumValidator).
		AddKeyword("const", newConstValidator).
		AddKeyword("multipleOf", newMultipleOfValidator).
		AddKeyword("minimum", newMinimumValidator).
		AddKeyword("maximum", newMaximumValidator).
		AddKeyword("minLength", newMinLengthValidator).
		AddKeyword("maxLength", newMaxLengthValidator).
		AddKeyword("pattern", newPatternValidator).
		AddKeyword("format", newFormatValidator).
		AddKeyword("minItems", newMinItemsValidator).
		AddKeyword("maxItems", newMaxItemsValidator).
		AddKeyword("uniqueItems", newUniqueItemsValidator).
		AddKeyword("items", newItemsValidator).
		AddKeyword("additionalItems", newAdditionalItemsValidator).
		AddKeyword("minProperties", newMinPropertiesValidator).
		AddKeyword("maxProperties", newMaxPropertiesValidator).
		AddKeyword("required", newRequiredValidator).
		AddKeyword("properties", newPropertiesValidator).
		AddKeyword("patternProperties", newPatternPropertiesValidator).
		AddKeyword("additionalProperties", newAdditionalPropertiesValidator).
		AddKeyword("dependencies", newDependenciesValidator).
		AddKeyword("allOf", newAllOfValidator).
		AddKeyword("anyOf", newAnyOfValidator).
		AddKeyword("oneOf", newOneOfValidator).
		AddKeyword("not", newNotValidator)

	for name, fv := range format.Defaults() {
		b.AddFormat(name, fv)
	}

	ms, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("building the Draft 4 meta-schema failed, which should be impossible: %v", err))
	}
	return ms
})
