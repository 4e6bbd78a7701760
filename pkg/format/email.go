// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email requires a valid RFC 5321 email address.
func Email(s string) error {
	if !isValidEmail(s) {
		return fmt.Errorf("%q is not a valid email address", s)
	}
	return nil
}

// isValidEmail reports whether s is a valid RFC5321 email address.
// Rather than parsing the RFC5321 grammar ourselves we defer to the
// net/mail package, which is more likely to implement what the user
// expects anyhow.
func isValidEmail(s string) bool {
	// RFC5321 permits IPv6 literals as "IPv6:literal" but net/mail
	// doesn't parse that.
	s = strings.Replace(s, "[IPv6:", "[", 1)

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" {
		return false
	}

	// The plain email format does not accept non-ASCII in the domain.
	idx := strings.LastIndex(addr.Address, "@")
	if idx >= 0 {
		domain := addr.Address[idx+1:]
		if domain != "" && domain[0] != '[' {
			if !isNonIDNDomain(domain) {
				return false
			}
		}
	}

	return true
}

// isNonIDNDomain reports whether s might be a non-internationalized
// domain name.
func isNonIDNDomain(s string) bool {
	for i := range len(s) {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
