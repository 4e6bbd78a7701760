// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"strings"
)

// JSONPointer requires a valid RFC 6901 JSON pointer.
func JSONPointer(s string) error {
	if !isValidJSONPointer(s) {
		return fmt.Errorf("%q is not a valid JSON pointer", s)
	}
	return nil
}

// isValidJSONPointer reports whether s is a valid JSON pointer.
func isValidJSONPointer(s string) bool {
	if s == "" {
		return true
	}
	if !strings.HasPrefix(s, "/") {
		return false
	}
	// A ~ may only appear as the escape ~0 or ~1.
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			continue
		}
		if i+1 >= len(s) || (s[i+1] != '0' && s[i+1] != '1') {
			return false
		}
	}
	return true
}
