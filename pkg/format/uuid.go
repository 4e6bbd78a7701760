// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
)

// UUID requires a valid RFC 4122 UUID.
func UUID(s string) error {
	if !isValidUUID(s) {
		return fmt.Errorf("%q is not a valid UUID", s)
	}
	return nil
}

// isValidUUID reports whether s is a valid UUID of the form
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func isValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			switch {
			case c >= '0' && c <= '9':
			case c >= 'a' && c <= 'f':
			case c >= 'A' && c <= 'F':
			default:
				return false
			}
		}
	}
	return true
}
