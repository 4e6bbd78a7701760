// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"

	"github.com/joblift/json-schema-validator/pkg/format"
)

// MinLengthValidator implements the minLength keyword.
// String length is counted in Unicode code points.
type MinLengthValidator struct {
	min int64
}

// newMinLengthValidator compiles the minLength keyword.
func newMinLengthValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	min, ok := intArg(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: minLength at %s is not an integer", ErrSchemaLoad, schemaPath))
	}
	return &MinLengthValidator{min: min}, nil
}

func (v *MinLengthValidator) Validate(node, root any, at string) *MessageSet {
	s, ok := node.(string)
	if !ok {
		return nil
	}
	if int64(utf8.RuneCountInString(s)) >= v.min {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMinLength.newMessage(at, strconv.FormatInt(v.min, 10)))
	return result
}

// MaxLengthValidator implements the maxLength keyword.
// String length is counted in Unicode code points.
type MaxLengthValidator struct {
	max int64
}

// newMaxLengthValidator compiles the maxLength keyword.
func newMaxLengthValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	max, ok := intArg(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: maxLength at %s is not an integer", ErrSchemaLoad, schemaPath))
	}
	return &MaxLengthValidator{max: max}, nil
}

func (v *MaxLengthValidator) Validate(node, root any, at string) *MessageSet {
	s, ok := node.(string)
	if !ok {
		return nil
	}
	if int64(utf8.RuneCountInString(s)) <= v.max {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMaxLength.newMessage(at, strconv.FormatInt(v.max, 10)))
	return result
}

// PatternValidator implements the pattern keyword. The pattern is
// unanchored: it matches when it matches any subsequence of the
// instance string.
//
// The regexp dialect is Go RE2 rather than ECMA-262: lookbehind and
// backreferences are not available, and patterns using them fail to
// compile.
type PatternValidator struct {
	pattern string
	re      *regexp.Regexp
}

// newPatternValidator compiles the pattern keyword.
func newPatternValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	pattern, ok := schemaNode.(string)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: pattern at %s is %T, want string", ErrSchemaLoad, schemaPath, schemaNode))
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: pattern regexp %q at %s: %v", ErrSchemaLoad, pattern, schemaPath, err))
	}
	return &PatternValidator{pattern: pattern, re: re}, nil
}

func (v *PatternValidator) Validate(node, root any, at string) *MessageSet {
	s, ok := node.(string)
	if !ok {
		return nil
	}
	if v.re.MatchString(s) {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodePattern.newMessage(at, v.pattern))
	return result
}

// FormatValidator implements the format keyword. Unknown formats are
// ignored: the meta-schema decides which formats exist.
type FormatValidator struct {
	name  string
	check format.Validator
}

// newFormatValidator compiles the format keyword, looking the format
// up in the active meta-schema.
func newFormatValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	name, ok := schemaNode.(string)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: format at %s is %T, want string", ErrSchemaLoad, schemaPath, schemaNode))
	}
	return &FormatValidator{
		name:  name,
		check: ctx.metaSchema.Format(name),
	}, nil
}

func (v *FormatValidator) Validate(node, root any, at string) *MessageSet {
	if v.check == nil {
		return nil
	}
	s, ok := node.(string)
	if !ok {
		return nil
	}
	if v.check(s) == nil {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeFormat.newMessage(at, v.name))
	return result
}
