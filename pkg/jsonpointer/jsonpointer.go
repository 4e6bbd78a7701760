// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonpointer evaluates RFC 6901 JSON pointers against
// parsed JSON values.
package jsonpointer

import (
	"fmt"
	"strconv"
	"strings"
)

// Deref takes a JSON pointer and a parsed JSON document and returns
// the value to which the pointer refers. An empty pointer refers to
// the document itself.
func Deref(root any, pointer string) (any, error) {
	if pointer == "" {
		return root, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("pointer %q does not start with /", pointer)
	}

	v := root
	for _, tok := range strings.Split(pointer[1:], "/") {
		tok = decodeToken(tok)
		switch node := v.(type) {
		case map[string]any:
			child, ok := node[tok]
			if !ok {
				return nil, fmt.Errorf("when dereferencing pointer %q key %q not present", pointer, tok)
			}
			v = child

		case []any:
			idx, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("when dereferencing pointer %q got token %q, expected array index", pointer, tok)
			}
			if idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("when dereferencing pointer %q array index %d out of range (length %d)", pointer, idx, len(node))
			}
			v = node[idx]

		default:
			return nil, fmt.Errorf("when dereferencing pointer %q unexpected type %T at token %q", pointer, v, tok)
		}
	}

	return v, nil
}

// decodeToken unmangles a token in a JSON pointer.
func decodeToken(tok string) string {
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}
