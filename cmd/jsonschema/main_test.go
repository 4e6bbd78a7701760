// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/joblift/json-schema-validator/pkg/jsonschema"
)

func TestIsYAMLPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"config.yaml", true},
		{"config.YML", true},
		{"schema.json", false},
		{"noext", false},
	}
	for _, test := range tests {
		if got := isYAMLPath(test.path); got != test.want {
			t.Errorf("isYAMLPath(%q) == %t, want %t", test.path, got, test.want)
		}
	}
}

func TestParseYAMLValidates(t *testing.T) {
	schema, err := jsonschema.Default().GetSchema(`{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"},
			"replicas": {"type": "integer", "minimum": 1}
		}
	}`)
	if err != nil {
		t.Fatalf("GetSchema failed: %v", err)
	}

	valid, err := parseYAML([]byte("name: web\nreplicas: 3\n"))
	if err != nil {
		t.Fatalf("parseYAML failed: %v", err)
	}
	if result := schema.Validate(valid); !result.Empty() {
		t.Errorf("valid YAML produced %v, want no messages", result)
	}

	invalid, err := parseYAML([]byte("replicas: 0\n"))
	if err != nil {
		t.Fatalf("parseYAML failed: %v", err)
	}
	result := schema.Validate(invalid)
	if result.Len() != 2 {
		t.Errorf("invalid YAML produced %d messages %v, want 2", result.Len(), result)
	}
}
