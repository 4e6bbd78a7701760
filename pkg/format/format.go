// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines checkers for the format keyword.
// A meta-schema maps format names to Validator functions; formats a
// dialect does not register are ignored during validation.
package format

// Validator checks one format. It is called with the instance
// string and returns an error when the string does not match the
// format.
type Validator func(s string) error

// Defaults returns the format validators registered by the Draft 4
// meta-schema.
func Defaults() map[string]Validator {
	return map[string]Validator{
		"date":          Date,
		"date-time":     DateTime,
		"time":          Time,
		"email":         Email,
		"hostname":      Hostname,
		"ipv4":          IPv4,
		"ipv6":          IPv6,
		"uri":           URI,
		"uri-reference": URIReference,
		"regex":         Regex,
		"json-pointer":  JSONPointer,
		"uuid":          UUID,
	}
}
