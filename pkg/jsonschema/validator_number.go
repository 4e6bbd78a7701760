// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"math/big"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

// numberArg reads a numeric keyword argument such as minimum.
func numberArg(keyword, schemaPath string, schemaNode any) (*big.Rat, error) {
	r, ok := numberValue(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %s at %s is %T, want number", ErrSchemaLoad, keyword, schemaPath, schemaNode))
	}
	return r, nil
}

// exclusiveSibling reads the boolean exclusiveMinimum or
// exclusiveMaximum attribute next to a bound keyword.
func exclusiveSibling(parent *Schema, name string) bool {
	siblings, ok := parent.node.(map[string]any)
	if !ok {
		return false
	}
	b, _ := siblings[name].(bool)
	return b
}

// ratString renders a bound for use in message arguments.
func ratString(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// MinimumValidator implements the minimum keyword, tightened to a
// strict inequality when the sibling exclusiveMinimum is true.
// All comparisons use the mathematical value of the number.
type MinimumValidator struct {
	min       *big.Rat
	exclusive bool
}

// newMinimumValidator compiles the minimum keyword.
func newMinimumValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	min, err := numberArg("minimum", schemaPath, schemaNode)
	if err != nil {
		return nil, err
	}
	return &MinimumValidator{
		min:       min,
		exclusive: exclusiveSibling(parent, "exclusiveMinimum"),
	}, nil
}

func (v *MinimumValidator) Validate(node, root any, at string) *MessageSet {
	val, ok := numberValue(node)
	if !ok {
		return nil
	}
	cmp := val.Cmp(v.min)
	if cmp > 0 || (cmp == 0 && !v.exclusive) {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMinimum.newMessage(at, ratString(v.min)))
	return result
}

// MaximumValidator implements the maximum keyword, tightened to a
// strict inequality when the sibling exclusiveMaximum is true.
type MaximumValidator struct {
	max       *big.Rat
	exclusive bool
}

// newMaximumValidator compiles the maximum keyword.
func newMaximumValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	max, err := numberArg("maximum", schemaPath, schemaNode)
	if err != nil {
		return nil, err
	}
	return &MaximumValidator{
		max:       max,
		exclusive: exclusiveSibling(parent, "exclusiveMaximum"),
	}, nil
}

func (v *MaximumValidator) Validate(node, root any, at string) *MessageSet {
	val, ok := numberValue(node)
	if !ok {
		return nil
	}
	cmp := val.Cmp(v.max)
	if cmp < 0 || (cmp == 0 && !v.exclusive) {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMaximum.newMessage(at, ratString(v.max)))
	return result
}

// MultipleOfValidator implements the multipleOf keyword. The
// quotient is computed with rational arithmetic, so a divisor such
// as 0.1 behaves by its decimal value rather than its floating-point
// approximation.
type MultipleOfValidator struct {
	divisor *big.Rat
}

// newMultipleOfValidator compiles the multipleOf keyword.
func newMultipleOfValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	divisor, err := numberArg("multipleOf", schemaPath, schemaNode)
	if err != nil {
		return nil, err
	}
	if divisor.Sign() == 0 {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: multipleOf at %s must not be zero", ErrSchemaLoad, schemaPath))
	}
	return &MultipleOfValidator{divisor: divisor}, nil
}

func (v *MultipleOfValidator) Validate(node, root any, at string) *MessageSet {
	val, ok := numberValue(node)
	if !ok {
		return nil
	}
	quo := new(big.Rat).Quo(val, v.divisor)
	if quo.IsInt() {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMultipleOf.newMessage(at, ratString(v.divisor)))
	return result
}
