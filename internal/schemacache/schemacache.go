// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schemacache is a simple in-process cache for compiled
// schema documents, keyed by normalized document URL. One cache
// lives for the duration of one root compilation; it is what lets a
// reference that loops back into a document currently being compiled
// find the in-flight root instead of fetching again.
package schemacache

// Cache is a cache that holds compiled documents.
type Cache[V any] struct {
	m map[string]V
}

// Load checks the cache for a document.
// The second result reports whether the URL is cached.
func (c *Cache[V]) Load(url string) (V, bool) {
	v, ok := c.m[url]
	return v, ok
}

// Store stores a document in the cache.
// It returns the value to use, which may differ
// if the URL has already been cached.
func (c *Cache[V]) Store(url string, v V) V {
	if cached, ok := c.m[url]; ok {
		return cached
	}

	if c.m == nil {
		c.m = make(map[string]V)
	}

	c.m[url] = v
	return v
}
