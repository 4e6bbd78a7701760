// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"github.com/joblift/json-schema-validator/internal/schemacache"
)

// ValidationContext carries the state shared by every schema compiled
// while building one root schema: the active meta-schema, the factory
// to call back into for nested compilation, and the compile-scoped
// caches used to resolve references safely in the presence of cycles.
type ValidationContext struct {
	metaSchema *MetaSchema
	factory    *Factory
	state      *compileState
}

// MetaSchema returns the dialect this compilation runs under.
func (c *ValidationContext) MetaSchema() *MetaSchema {
	return c.metaSchema
}

// Factory returns the factory that started this compilation.
func (c *ValidationContext) Factory() *Factory {
	return c.factory
}

// refTargetKey identifies a compiled reference target within one
// compilation: the document root it belongs to plus the fragment
// pointer into that document.
type refTargetKey struct {
	root     *Schema
	fragment string
}

// compileState is the per-compilation bookkeeping for reference
// resolution. Documents and fragment targets are registered before
// their validators are compiled, so a reference that loops back into
// a schema currently being compiled finds the placeholder instead of
// recursing.
type compileState struct {
	// docs caches compiled document roots by normalized URL.
	// The cache lives only for this compilation; the factory itself
	// never caches.
	docs *schemacache.Cache[*Schema]
	// targets caches compiled fragment targets.
	targets map[refTargetKey]*Schema
	// pending holds reference validators whose targets are not yet
	// bound. They are resolved after the document tree is built.
	pending []*RefValidator
}

// newCompileState returns an empty compile state.
func newCompileState() *compileState {
	return &compileState{
		docs:    &schemacache.Cache[*Schema]{},
		targets: make(map[refTargetKey]*Schema),
	}
}

// enqueueRef records a reference validator for later binding.
func (cs *compileState) enqueueRef(rv *RefValidator) {
	cs.pending = append(cs.pending, rv)
}

// resolveAll binds every pending reference. Resolving one reference
// may compile further schemas and enqueue more references; the loop
// runs until the queue drains.
func (cs *compileState) resolveAll() error {
	for len(cs.pending) > 0 {
		rv := cs.pending[0]
		cs.pending = cs.pending[1:]
		if err := rv.resolve(); err != nil {
			return err
		}
	}
	return nil
}
