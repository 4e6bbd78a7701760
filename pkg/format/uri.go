// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// URI requires a valid absolute URI.
func URI(s string) error {
	uri, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%q is not a valid URI: %v", s, err)
	}
	if !uri.IsAbs() {
		return fmt.Errorf("%q is not an absolute URI", s)
	}
	if !checkURI(uri) {
		return fmt.Errorf("%q is not a valid URI", s)
	}
	return nil
}

// URIReference requires a valid URI, which may be a relative
// reference.
func URIReference(s string) error {
	// Avoid parsing what looks like an absolute URI as a
	// relative one.
	if strings.HasPrefix(s, `\\`) {
		return fmt.Errorf(`%q starts with \\`, s)
	}

	uri, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%q is not a valid URI reference: %v", s, err)
	}
	if !checkURI(uri) {
		return fmt.Errorf("%q is not a valid URI reference", s)
	}
	return nil
}

// checkURI applies checks that url.Parse is too lenient about.
func checkURI(uri *url.URL) bool {
	// An IPv6 address should be in square brackets;
	// otherwise the colons can confuse the parse.
	if addr, err := netip.ParseAddr(uri.Host); err == nil && addr.Is6() {
		return false
	}

	// Backslashes are not permitted in fragments.
	if strings.Contains(uri.Fragment, `\`) {
		return false
	}

	for i := range uri.RawPath {
		c := uri.RawPath[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
			continue
		}
		switch c {
		case '-', '_', '.', '~', '@', '&', '=', '+', '$', '/', ';', ',', '(', ')', '#', '%':
			continue
		default:
			return false
		}
	}

	return true
}
