// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"testing"
)

func TestFormats(t *testing.T) {
	tests := []struct {
		format string
		value  string
		valid  bool
	}{
		{"date", "2017-07-21", true},
		{"date", "2017-02-30", false},
		{"date", "not-a-date", false},

		{"date-time", "2017-07-21T17:32:28Z", true},
		{"date-time", "2017-07-21t17:32:28.000+02:00", true},
		{"date-time", "2017-07-21 17:32:28Z", false},
		{"date-time", "2017-07-21T25:00:00Z", false},

		{"time", "17:32:28Z", true},
		{"time", "17:32:28.5+01:00", true},
		{"time", "17:32:28", false},

		{"email", "joe.bloggs@example.com", true},
		{"email", "Joe Bloggs <joe@example.com>", false},
		{"email", "not-an-email", false},

		{"hostname", "www.example.com", true},
		{"hostname", "127.0.0.1", true},
		{"hostname", "under_score.example.com", false},
		{"hostname", "-starts-with-dash.example.com", false},

		{"ipv4", "192.168.0.1", true},
		{"ipv4", "::1", false},
		{"ipv4", "256.0.0.1", false},

		{"ipv6", "::1", true},
		{"ipv6", "2001:db8::8a2e:370:7334", true},
		{"ipv6", "192.168.0.1", false},

		{"uri", "https://example.com/path?q=1", true},
		{"uri", "relative/path", false},

		{"uri-reference", "relative/path", true},
		{"uri-reference", `\\machine\share`, false},

		{"regex", "^a+$", true},
		{"regex", "(", false},

		{"json-pointer", "/a/b~0c", true},
		{"json-pointer", "", true},
		{"json-pointer", "a/b", false},
		{"json-pointer", "/a~2b", false},

		{"uuid", "f81d4fae-7dec-11d0-a765-00a0c91e6bf6", true},
		{"uuid", "f81d4fae7dec11d0a76500a0c91e6bf6", false},
		{"uuid", "g81d4fae-7dec-11d0-a765-00a0c91e6bf6", false},
	}

	defaults := Defaults()
	for _, test := range tests {
		fv := defaults[test.format]
		if fv == nil {
			t.Fatalf("no default validator for format %q", test.format)
		}
		err := fv(test.value)
		if test.valid && err != nil {
			t.Errorf("%s: %q reported invalid: %v", test.format, test.value, err)
		} else if !test.valid && err == nil {
			t.Errorf("%s: %q reported valid, want invalid", test.format, test.value)
		}
	}
}
