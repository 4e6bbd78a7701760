// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"
)

// Validator checks one keyword of a compiled schema against an
// instance node. The node argument is the sub-instance the keyword
// applies to, root is the outermost instance (never rebound during
// descent), and at is the pointer-like path of node within root.
//
// A validator returns nil or an empty set when it finds no
// violations. Validators
// never report instance-shape mismatches: applying minItems to a
// non-array yields no messages; the type keyword is responsible for
// shape errors.
type Validator interface {
	Validate(node, root any, at string) *MessageSet
}

// ValidatorFactory builds the validator for one keyword occurrence.
// schemaPath is the JSON pointer of the keyword within its document
// (the enclosing schema's path plus the keyword name), schemaNode is
// the keyword's value, and parent is the compiled
// schema the keyword belongs to. The factory is responsible for
// compiling any sub-schemas the keyword references.
type ValidatorFactory func(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error)

// jsonKind names the JSON kind of a parsed value.
type jsonKind int

const (
	kindNull jsonKind = iota
	kindBoolean
	kindObject
	kindArray
	kindNumber
	kindString
	kindUnknown
)

// String returns the JSON Schema name of the kind.
func (k jsonKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindBoolean:
		return "boolean"
	case kindObject:
		return "object"
	case kindArray:
		return "array"
	case kindNumber:
		return "number"
	case kindString:
		return "string"
	default:
		return "unknown"
	}
}

// kindOf returns the JSON kind of a parsed value.
func kindOf(v any) jsonKind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBoolean
	case map[string]any:
		return kindObject
	case []any:
		return kindArray
	case string:
		return kindString
	case json.Number, float64, int, int64, uint64, float32:
		return kindNumber
	default:
		return kindUnknown
	}
}

// numberValue returns the mathematical value of a parsed JSON number.
// It accepts json.Number produced by the default parser as well as
// the plain numeric types produced by json.Unmarshal or a YAML decoder.
func numberValue(v any) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(n.String())
		return r, ok
	case float64:
		// Floats are read through their shortest decimal form, so a
		// float64 0.1 equals the json.Number 0.1.
		return new(big.Rat).SetString(strconv.FormatFloat(n, 'g', -1, 64))
	case float32:
		return new(big.Rat).SetString(strconv.FormatFloat(float64(n), 'g', -1, 32))
	case int:
		return new(big.Rat).SetInt64(int64(n)), true
	case int64:
		return new(big.Rat).SetInt64(n), true
	case uint64:
		return new(big.Rat).SetUint64(n), true
	default:
		return nil, false
	}
}

// isIntegral reports whether v is a JSON number whose mathematical
// value is an integer.
func isIntegral(v any) bool {
	r, ok := numberValue(v)
	return ok && r.IsInt()
}

// deepEqual reports whether two parsed JSON values are structurally
// equal: numbers by mathematical value, arrays element-wise in order,
// objects by key set with per-key equality.
func deepEqual(a, b any) bool {
	if ra, ok := numberValue(a); ok {
		rb, ok := numberValue(b)
		return ok && ra.Cmp(rb) == 0
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// renderValue returns a compact rendering of a parsed JSON value for
// use in message arguments.
func renderValue(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case json.Number:
		return n.String()
	case string:
		return n
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// sortedKeys returns the keys of an object node in sorted order.
// Iterating objects in sorted order keeps message ordering stable
// across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// intArg reads an integer keyword argument such as minItems.
func intArg(v any) (int64, bool) {
	r, ok := numberValue(v)
	if !ok || !r.IsInt() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// propertyPath appends an object property name to an instance path.
func propertyPath(at, name string) string {
	return at + "." + name
}

// indexPath appends an array index to an instance path.
func indexPath(at string, i int) string {
	return fmt.Sprintf("%s[%d]", at, i)
}
