// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

// ItemsValidator implements the items keyword. A single schema
// applies to every element; an array of schemas applies positionally,
// with excess elements falling through to additionalItems.
type ItemsValidator struct {
	schema     *Schema
	positional []*Schema
}

// newItemsValidator compiles the items keyword.
func newItemsValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	switch schemaNode.(type) {
	case []any:
		positional, err := compileSchemaList("items", schemaPath, schemaNode, parent, ctx)
		if err != nil {
			return nil, err
		}
		return &ItemsValidator{positional: positional}, nil
	default:
		sub, err := newSubSchema(schemaPath, schemaNode, parent, ctx)
		if err != nil {
			return nil, err
		}
		return &ItemsValidator{schema: sub}, nil
	}
}

func (v *ItemsValidator) Validate(node, root any, at string) *MessageSet {
	arr, ok := node.([]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	if v.schema != nil {
		for i, e := range arr {
			result.Merge(v.schema.ValidateAt(e, root, indexPath(at, i)))
		}
		return result
	}
	for i, e := range arr {
		if i >= len(v.positional) {
			break
		}
		result.Merge(v.positional[i].ValidateAt(e, root, indexPath(at, i)))
	}
	return result
}

// AdditionalItemsValidator implements the additionalItems keyword.
// It only has effect when the sibling items keyword is an array of
// schemas; elements past the end of that array are the additional
// ones.
type AdditionalItemsValidator struct {
	// declared is the length of the sibling positional items array,
	// or -1 when items is absent or a single schema.
	declared int
	allowed  bool
	schema   *Schema
}

// newAdditionalItemsValidator compiles the additionalItems keyword,
// reading the sibling items declaration.
func newAdditionalItemsValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	v := &AdditionalItemsValidator{declared: -1, allowed: true}
	if siblings, ok := parent.node.(map[string]any); ok {
		if items, ok := siblings["items"].([]any); ok {
			v.declared = len(items)
		}
	}
	switch arg := schemaNode.(type) {
	case bool:
		v.allowed = arg
	default:
		sub, err := newSubSchema(schemaPath, schemaNode, parent, ctx)
		if err != nil {
			return nil, err
		}
		v.schema = sub
	}
	return v, nil
}

func (v *AdditionalItemsValidator) Validate(node, root any, at string) *MessageSet {
	if v.declared < 0 {
		return nil
	}
	arr, ok := node.([]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	for i := v.declared; i < len(arr); i++ {
		if v.schema != nil {
			result.Merge(v.schema.ValidateAt(arr[i], root, indexPath(at, i)))
		} else if !v.allowed {
			result.Add(TypeCodeAdditionalItems.newMessage(at, strconv.Itoa(i)))
		}
	}
	return result
}

// MinItemsValidator implements the minItems keyword.
type MinItemsValidator struct {
	min int64
}

// newMinItemsValidator compiles the minItems keyword.
func newMinItemsValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	min, ok := intArg(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: minItems at %s is not an integer", ErrSchemaLoad, schemaPath))
	}
	return &MinItemsValidator{min: min}, nil
}

func (v *MinItemsValidator) Validate(node, root any, at string) *MessageSet {
	arr, ok := node.([]any)
	if !ok {
		return nil
	}
	if int64(len(arr)) >= v.min {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMinItems.newMessage(at, strconv.FormatInt(v.min, 10)))
	return result
}

// MaxItemsValidator implements the maxItems keyword.
type MaxItemsValidator struct {
	max int64
}

// newMaxItemsValidator compiles the maxItems keyword.
func newMaxItemsValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	max, ok := intArg(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: maxItems at %s is not an integer", ErrSchemaLoad, schemaPath))
	}
	return &MaxItemsValidator{max: max}, nil
}

func (v *MaxItemsValidator) Validate(node, root any, at string) *MessageSet {
	arr, ok := node.([]any)
	if !ok {
		return nil
	}
	if int64(len(arr)) <= v.max {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMaxItems.newMessage(at, strconv.FormatInt(v.max, 10)))
	return result
}

// UniqueItemsValidator implements the uniqueItems keyword.
type UniqueItemsValidator struct {
	unique bool
}

// newUniqueItemsValidator compiles the uniqueItems keyword.
func newUniqueItemsValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	unique, ok := schemaNode.(bool)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: uniqueItems at %s is %T, want bool", ErrSchemaLoad, schemaPath, schemaNode))
	}
	return &UniqueItemsValidator{unique: unique}, nil
}

func (v *UniqueItemsValidator) Validate(node, root any, at string) *MessageSet {
	if !v.unique {
		return nil
	}
	arr, ok := node.([]any)
	if !ok {
		return nil
	}
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if deepEqual(arr[i], arr[j]) {
				result := NewMessageSet()
				result.Add(TypeCodeUniqueItems.newMessage(at))
				return result
			}
		}
	}
	return nil
}
