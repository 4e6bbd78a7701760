// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schemacache

import (
	"testing"
)

func TestCache(t *testing.T) {
	var c Cache[*int]

	if _, ok := c.Load("http://example.com/a.json"); ok {
		t.Error("Load on an empty cache reported ok")
	}

	first := new(int)
	if got := c.Store("http://example.com/a.json", first); got != first {
		t.Error("Store did not return the stored value")
	}

	// The first stored value wins.
	second := new(int)
	if got := c.Store("http://example.com/a.json", second); got != first {
		t.Error("Store of a duplicate URL did not return the cached value")
	}

	got, ok := c.Load("http://example.com/a.json")
	if !ok || got != first {
		t.Errorf("Load == %v, %t, want the first stored value, true", got, ok)
	}
}
