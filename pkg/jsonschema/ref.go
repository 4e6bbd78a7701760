// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"io"
	"net/url"
	"slices"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RefValidator implements the $ref keyword. The reference target is
// bound lazily: compilation only records the reference, and the
// compile state binds every recorded reference once the document tree
// exists. This keeps recursive schemas from recursing at compile time.
//
// In this dialect a $ref does not suppress its sibling keywords;
// they are compiled and evaluated as usual.
type RefValidator struct {
	refValue string
	parent   *Schema
	ctx      *ValidationContext
	// target is the compiled schema the reference points at.
	// It stays nil when the fragment does not address a node, which
	// is reported at validation time.
	target *Schema
}

// newRefValidator compiles the $ref keyword.
func newRefValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	refValue, ok := schemaNode.(string)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: $ref at %s is %T, want string", ErrSchemaLoad, schemaPath, schemaNode))
	}
	rv := &RefValidator{
		refValue: refValue,
		parent:   parent,
		ctx:      ctx,
	}
	ctx.state.enqueueRef(rv)
	return rv, nil
}

// Validate delegates to the reference target. An unbound reference
// is a validation error, not a silent pass.
func (v *RefValidator) Validate(node, root any, at string) *MessageSet {
	if v.target == nil {
		result := NewMessageSet()
		result.Add(TypeCodeRef.newMessage(at, v.refValue))
		return result
	}
	return v.target.ValidateAt(node, root, at)
}

// resolve binds the reference target. It partitions the reference
// into a URL part and a fragment, locates or loads the target
// document, and compiles the fragment target inside it.
func (v *RefValidator) resolve() error {
	logrus.Debugf("resolving $ref %q from %s", v.refValue, v.parent.SchemaPath())

	docRoot := v.parent.FindAncestor()
	fragment := ""
	if strings.HasPrefix(v.refValue, "#") {
		// Same-document reference.
		fragment = v.refValue[1:]
	} else {
		urlPart := v.refValue
		if i := strings.IndexByte(v.refValue, '#'); i >= 0 {
			urlPart, fragment = v.refValue[:i], v.refValue[i+1:]
		}
		target := v.absoluteTarget(urlPart)
		if target != normalizeURL(docRoot.url) || docRoot.url == "" {
			var err error
			docRoot, err = v.ctx.schemaForURL(target)
			if err != nil {
				return err
			}
		}
	}

	if fragment == "" {
		v.target = docRoot
		return nil
	}
	target, err := v.ctx.compileFragment(docRoot, fragment)
	if err != nil {
		return err
	}
	v.target = target
	return nil
}

// absoluteTarget resolves the URL part of the reference against the
// base URL of the enclosing schema, per RFC 3986.
func (v *RefValidator) absoluteTarget(urlPart string) string {
	ref, err := url.Parse(urlPart)
	if err != nil {
		return urlPart
	}
	if ref.IsAbs() {
		return normalizeURL(urlPart)
	}
	base := v.baseURL()
	if base == nil {
		return urlPart
	}
	return normalizeURL(base.ResolveReference(ref).String())
}

// baseURL computes the base URL of the schema enclosing the
// reference: the document URL, refined by every identifier attribute
// on the ancestor chain, outermost first.
func (v *RefValidator) baseURL() *url.URL {
	var ids []string
	for s := v.parent; s != nil; s = s.parent {
		if id, ok := s.idValue(); ok {
			ids = append(ids, id)
		}
	}
	slices.Reverse(ids)

	var base *url.URL
	if docURL := v.parent.FindAncestor().url; docURL != "" {
		base, _ = url.Parse(docURL)
	}
	for _, id := range ids {
		u, err := url.Parse(id)
		if err != nil {
			continue
		}
		if base == nil {
			base = u
		} else {
			base = base.ResolveReference(u)
		}
	}
	return base
}

// schemaForURL returns the compiled root of the document at target,
// fetching and compiling it on first use. Documents compiled during
// one compilation are cached by normalized URL, so a reference cycle
// between documents terminates.
func (c *ValidationContext) schemaForURL(target string) (*Schema, error) {
	norm := normalizeURL(target)
	if s, ok := c.state.docs.Load(norm); ok {
		return s, nil
	}

	rc, err := c.factory.fetcher.Fetch(target)
	if err != nil {
		logrus.Errorf("failed to fetch referenced schema %s: %v", target, err)
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: fetch %q: %v", ErrUnresolvableRef, target, err))
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: read %q: %v", ErrUnresolvableRef, target, err))
	}
	node, err := c.factory.parse(data)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: parse %q: %v", ErrUnresolvableRef, target, err))
	}

	return c.factory.compileDocument(node, norm, c.state)
}

// compileFragment compiles the schema a fragment pointer addresses
// within a document. Targets are registered before their validators
// compile, so a fragment whose schema refers back to itself binds to
// the same compiled node instead of recursing.
func (c *ValidationContext) compileFragment(docRoot *Schema, fragment string) (*Schema, error) {
	key := refTargetKey{root: docRoot, fragment: fragment}
	if t, ok := c.state.targets[key]; ok {
		return t, nil
	}

	node, err := docRoot.ResolveRefPointer(fragment)
	if err != nil {
		// The pointer does not address a node in the document.
		// Reported per instance at validation time.
		logrus.Debugf("fragment %q not found in %s: %v", fragment, docRoot.url, err)
		return nil, nil
	}

	s := &Schema{
		node:    node,
		path:    "#" + fragment,
		parent:  docRoot,
		context: docRoot.context,
	}
	c.state.targets[key] = s
	if err := s.compile(); err != nil {
		delete(c.state.targets, key)
		return nil, err
	}
	return s, nil
}
