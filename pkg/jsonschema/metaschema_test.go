// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"testing"
)

// evenValidator is a custom keyword used by the tests below:
// it requires numbers to be even.
type evenValidator struct{}

func (evenValidator) Validate(node, root any, at string) *MessageSet {
	r, ok := numberValue(node)
	if !ok || !r.IsInt() || r.Num().Bit(0) == 0 {
		return nil
	}
	result := NewMessageSet()
	result.Add(ValidationMessage{
		Type:    "even",
		Code:    "9001",
		Path:    at,
		Message: at + ": must be even",
	})
	return result
}

// customDialect builds a small dialect with the type keyword, a
// custom keyword, and a custom format.
func customDialect(t *testing.T) *MetaSchema {
	t.Helper()
	ms, err := NewMetaSchemaBuilder("http://example.com/dialects/custom#").
		AddKeyword("type", newTypeValidator).
		AddKeyword("format", newFormatValidator).
		AddKeyword("even", func(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
			return evenValidator{}, nil
		}).
		AddFormat("shouty", func(s string) error {
			for i := range len(s) {
				if s[i] >= 'a' && s[i] <= 'z' {
					return fmt.Errorf("%q is not shouty", s)
				}
			}
			return nil
		}).
		Build()
	if err != nil {
		t.Fatalf("building custom dialect failed: %v", err)
	}
	return ms
}

func TestCustomKeyword(t *testing.T) {
	f, err := NewBuilder().
		DefaultMetaSchemaURI("http://example.com/dialects/custom#").
		AddMetaSchema(customDialect(t)).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	s, err := f.GetSchema(`{"even": true}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}

	node, err := ParseJSON([]byte(`3`))
	if err != nil {
		t.Fatal(err)
	}
	result := s.Validate(node)
	if result.Len() != 1 || result.Messages()[0].Type != "even" {
		t.Errorf("got %v, want one even message", result)
	}
}

func TestCustomFormat(t *testing.T) {
	f, err := NewBuilder().
		DefaultMetaSchemaURI("http://example.com/dialects/custom#").
		AddMetaSchema(customDialect(t)).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	s, err := f.GetSchema(`{"format": "shouty"}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}

	node, err := ParseJSON([]byte(`"quiet"`))
	if err != nil {
		t.Fatal(err)
	}
	result := s.Validate(node)
	if result.Len() != 1 || result.Messages()[0].Type != "format" {
		t.Errorf("got %v, want one format message", result)
	}
}

func TestMetaSchemaSelectionIsExact(t *testing.T) {
	// The custom dialect is registered but not the default;
	// a schema declaring it gets its keywords, not Draft 4's.
	f, err := NewBuilder().
		DefaultMetaSchemaURI(DraftV4URI).
		AddMetaSchema(DraftV4()).
		AddMetaSchema(customDialect(t)).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	// Under the custom dialect the minimum keyword is unknown and
	// therefore ignored.
	s, err := f.GetSchema(`{"$schema": "http://example.com/dialects/custom#", "minimum": 100}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}
	node, err := ParseJSON([]byte(`1`))
	if err != nil {
		t.Fatal(err)
	}
	if result := s.Validate(node); !result.Empty() {
		t.Errorf("custom dialect applied minimum: %v", result)
	}
}

func TestDraftV4IDKeyword(t *testing.T) {
	if got := DraftV4().IDKeyword(); got != "id" {
		t.Errorf("DraftV4().IDKeyword() == %q, want id", got)
	}
	if got := DraftV4().URI(); got != DraftV4URI {
		t.Errorf("DraftV4().URI() == %q, want %q", got, DraftV4URI)
	}
}
