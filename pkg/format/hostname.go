// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"fmt"
	"net/netip"
	"strings"
	"sync"

	"golang.org/x/net/idna"
)

// Hostname requires a valid hostname.
func Hostname(s string) error {
	if !isValidHostname(s) {
		return fmt.Errorf("%q is not a valid hostname", s)
	}
	return nil
}

// hostnameProfile returns the IDNA profile used to check hostnames.
var hostnameProfile = sync.OnceValue(func() *idna.Profile {
	return idna.New(idna.ValidateForRegistration())
})

// isValidHostname reports whether s is a valid hostname.
func isValidHostname(s string) bool {
	if _, err := netip.ParseAddr(s); err == nil {
		// Valid IP address.
		return true
	}

	// Underscores are permitted by idna but not by hostnames.
	if strings.Contains(s, "_") {
		return false
	}

	// Hostnames are ASCII only; internationalized names are
	// rejected.
	for i := range len(s) {
		if s[i]&0x80 != 0 {
			return false
		}
	}

	if _, err := hostnameProfile().ToASCII(s); err != nil {
		return false
	}

	return true
}
