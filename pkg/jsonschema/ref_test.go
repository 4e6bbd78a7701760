// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

// mapFetcher serves schema documents from a map, recording every
// fetch.
type mapFetcher struct {
	docs    map[string]string
	fetched []string
}

func (m *mapFetcher) Fetch(rawURL string) (io.ReadCloser, error) {
	m.fetched = append(m.fetched, rawURL)
	doc, ok := m.docs[rawURL]
	if !ok {
		return nil, fmt.Errorf("no document at %q", rawURL)
	}
	return io.NopCloser(strings.NewReader(doc)), nil
}

// factoryWith returns a Draft 4 factory using the given fetcher.
func factoryWith(t *testing.T, fetcher *mapFetcher) *Factory {
	t.Helper()
	f, err := BuilderFrom(Default()).URLFetcher(fetcher).Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return f
}

func TestRefSameDocument(t *testing.T) {
	checkMessages(t,
		`{"definitions": {"name": {"type": "string"}}, "properties": {"a": {"$ref": "#/definitions/name"}}}`,
		`{"a": 3}`, "type")
}

func TestRefTransparency(t *testing.T) {
	// A reference to a pointer validates identically to the
	// sub-schema at that pointer.
	direct := validateText(t, `{"type": "string", "minLength": 2}`, `"x"`)
	viaRef := validateText(t,
		`{"definitions": {"s": {"type": "string", "minLength": 2}}, "$ref": "#/definitions/s"}`,
		`"x"`)
	if !direct.Equal(viaRef) {
		t.Errorf("direct validation %v differs from via-ref validation %v", direct, viaRef)
	}
}

func TestRefSiblingsStillEvaluated(t *testing.T) {
	// In this dialect a $ref does not suppress sibling keywords.
	checkMessages(t,
		`{"definitions": {"s": {"type": "string"}}, "$ref": "#/definitions/s", "minLength": 3}`,
		`"x"`, "minLength")
}

func TestRefRecursiveSchema(t *testing.T) {
	schema := compileSchema(t,
		`{"type": "object", "properties": {"next": {"$ref": "#"}, "value": {"type": "integer"}}}`)

	node, err := ParseJSON([]byte(`{"value": 1, "next": {"value": 2, "next": {"value": "three"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	result := schema.Validate(node)
	if result.Len() != 1 {
		t.Fatalf("got %d messages %v, want 1", result.Len(), result)
	}
	if got, want := result.Messages()[0].Path, "$.next.next.value"; got != want {
		t.Errorf("message path == %q, want %q", got, want)
	}
}

func TestRefRecursiveDefinition(t *testing.T) {
	schema := compileSchema(t, `{
		"definitions": {
			"node": {
				"properties": {
					"child": {"$ref": "#/definitions/node"},
					"value": {"type": "integer"}
				}
			}
		},
		"$ref": "#/definitions/node"
	}`)

	node, err := ParseJSON([]byte(`{"child": {"child": {"value": "x"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	result := schema.Validate(node)
	if result.Len() != 1 {
		t.Fatalf("got %d messages %v, want 1", result.Len(), result)
	}
	if got, want := result.Messages()[0].Path, "$.child.child.value"; got != want {
		t.Errorf("message path == %q, want %q", got, want)
	}
}

func TestRefRemote(t *testing.T) {
	fetcher := &mapFetcher{docs: map[string]string{
		"http://example.com/schemas/other.json": `{"type": "string"}`,
	}}
	f := factoryWith(t, fetcher)

	schema, err := f.GetSchema(`{
		"id": "http://example.com/schemas/main.json",
		"properties": {"a": {"$ref": "other.json"}}
	}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}

	node, err := ParseJSON([]byte(`{"a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	result := schema.Validate(node)
	if result.Len() != 1 || result.Messages()[0].Type != "type" {
		t.Fatalf("got %v, want one type message", result)
	}
	if got, want := result.Messages()[0].Path, "$.a"; got != want {
		t.Errorf("message path == %q, want %q", got, want)
	}
}

func TestRefRemoteFragment(t *testing.T) {
	fetcher := &mapFetcher{docs: map[string]string{
		"http://example.com/schemas/other.json": `{"definitions": {"name": {"minLength": 3}}}`,
	}}
	f := factoryWith(t, fetcher)

	schema, err := f.GetSchema(`{
		"id": "http://example.com/schemas/main.json",
		"properties": {"a": {"$ref": "other.json#/definitions/name"}}
	}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}

	node, err := ParseJSON([]byte(`{"a": "xy"}`))
	if err != nil {
		t.Fatal(err)
	}
	result := schema.Validate(node)
	if result.Len() != 1 || result.Messages()[0].Type != "minLength" {
		t.Fatalf("got %v, want one minLength message", result)
	}
}

func TestRefRemoteParentDirectory(t *testing.T) {
	fetcher := &mapFetcher{docs: map[string]string{
		"http://example.com/common.json": `{"type": "integer"}`,
	}}
	f := factoryWith(t, fetcher)

	schema, err := f.GetSchema(`{
		"id": "http://example.com/schemas/main.json",
		"properties": {"a": {"$ref": "../common.json"}}
	}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}

	node, err := ParseJSON([]byte(`{"a": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if result := schema.Validate(node); result.Len() != 1 || result.Messages()[0].Type != "type" {
		t.Fatalf("got %v, want one type message", result)
	}
}

func TestRefCrossDocumentCycle(t *testing.T) {
	fetcher := &mapFetcher{docs: map[string]string{
		"http://example.com/a.json": `{"id": "http://example.com/a.json", "properties": {"b": {"$ref": "b.json"}, "n": {"type": "integer"}}}`,
		"http://example.com/b.json": `{"id": "http://example.com/b.json", "properties": {"a": {"$ref": "a.json"}, "s": {"type": "string"}}}`,
	}}
	f := factoryWith(t, fetcher)

	schema, err := f.GetSchemaFromURL("http://example.com/a.json")
	if err != nil {
		t.Fatalf("GetSchemaFromURL failed: %v", err)
	}

	node, err := ParseJSON([]byte(`{"b": {"a": {"n": "not-a-number"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	result := schema.Validate(node)
	if result.Len() != 1 || result.Messages()[0].Type != "type" {
		t.Fatalf("got %v, want one type message", result)
	}
	if got, want := result.Messages()[0].Path, "$.b.a.n"; got != want {
		t.Errorf("message path == %q, want %q", got, want)
	}

	// The cycle must not refetch either document.
	counts := make(map[string]int)
	for _, u := range fetcher.fetched {
		counts[u]++
	}
	for u, n := range counts {
		if n > 1 {
			t.Errorf("document %s fetched %d times, want 1", u, n)
		}
	}
}

func TestRefUnresolvableFragment(t *testing.T) {
	schema := compileSchema(t, `{"$ref": "#/definitions/missing"}`)
	node, err := ParseJSON([]byte(`1`))
	if err != nil {
		t.Fatal(err)
	}
	result := schema.Validate(node)
	if result.Len() != 1 || result.Messages()[0].Type != "$ref" {
		t.Fatalf("got %v, want one $ref message", result)
	}
}

func TestRefUnfetchableDocument(t *testing.T) {
	fetcher := &mapFetcher{docs: map[string]string{}}
	f := factoryWith(t, fetcher)
	if _, err := f.GetSchema(`{"$ref": "http://example.com/nope.json"}`); err == nil {
		t.Error("GetSchema with unfetchable $ref succeeded, want error")
	}
}

func TestResolveRefPointer(t *testing.T) {
	schema := compileSchema(t, `{"definitions": {"x": {"minimum": 5}}}`)
	node, err := schema.ResolveRefPointer("/definitions/x")
	if err != nil {
		t.Fatalf("ResolveRefPointer failed: %v", err)
	}
	obj, ok := node.(map[string]any)
	if !ok {
		t.Fatalf("resolved node is %T, want object", node)
	}
	if _, ok := obj["minimum"]; !ok {
		t.Error("resolved node does not contain the minimum keyword")
	}
}

func TestFindAncestor(t *testing.T) {
	schema := compileSchema(t, `{"properties": {"a": {"properties": {"b": {"type": "string"}}}}}`)
	if got := schema.FindAncestor(); got != schema {
		t.Errorf("root.FindAncestor() != root")
	}
	if schema.Parent() != nil {
		t.Error("root.Parent() != nil")
	}
}
