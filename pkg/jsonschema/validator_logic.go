// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

// TypeValidator implements the type keyword.
type TypeValidator struct {
	allowed []string
}

// newTypeValidator compiles the type keyword. The argument is a type
// name or an array of type names.
func newTypeValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	var allowed []string
	switch v := schemaNode.(type) {
	case string:
		allowed = []string{v}
	case []any:
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: type at %s item %d is %T, want string", ErrSchemaLoad, schemaPath, i, e))
			}
			allowed = append(allowed, s)
		}
	default:
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: type at %s is %T, want string or array of string", ErrSchemaLoad, schemaPath, v))
	}
	return &TypeValidator{allowed: allowed}, nil
}

// matchesType reports whether the instance node is of the named
// JSON Schema type. "integer" matches any number whose mathematical
// value has no fractional part.
func matchesType(node any, typ string) bool {
	kind := kindOf(node)
	switch typ {
	case "integer":
		return kind == kindNumber && isIntegral(node)
	case "number":
		return kind == kindNumber
	default:
		return kind.String() == typ
	}
}

// instanceTypeName names the JSON kind of node for error messages.
func instanceTypeName(node any) string {
	kind := kindOf(node)
	if kind == kindNumber && isIntegral(node) {
		return "integer"
	}
	return kind.String()
}

func (v *TypeValidator) Validate(node, root any, at string) *MessageSet {
	for _, typ := range v.allowed {
		if matchesType(node, typ) {
			return nil
		}
	}
	result := NewMessageSet()
	result.Add(TypeCodeType.newMessage(at, instanceTypeName(node), strings.Join(v.allowed, ", ")))
	return result
}

// EnumValidator implements the enum keyword.
type EnumValidator struct {
	values   []any
	rendered string
}

// newEnumValidator compiles the enum keyword.
func newEnumValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	values, ok := schemaNode.([]any)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: enum at %s is %T, want array", ErrSchemaLoad, schemaPath, schemaNode))
	}
	parts := make([]string, 0, len(values))
	for _, e := range values {
		parts = append(parts, renderValue(e))
	}
	return &EnumValidator{
		values:   values,
		rendered: "[" + strings.Join(parts, ", ") + "]",
	}, nil
}

func (v *EnumValidator) Validate(node, root any, at string) *MessageSet {
	for _, e := range v.values {
		if deepEqual(node, e) {
			return nil
		}
	}
	result := NewMessageSet()
	result.Add(TypeCodeEnum.newMessage(at, v.rendered))
	return result
}

// ConstValidator implements the const keyword.
type ConstValidator struct {
	value any
}

// newConstValidator compiles the const keyword.
func newConstValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	return &ConstValidator{value: schemaNode}, nil
}

func (v *ConstValidator) Validate(node, root any, at string) *MessageSet {
	if deepEqual(node, v.value) {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeConst.newMessage(at, renderValue(v.value)))
	return result
}

// compileSchemaList compiles the elements of a schema-array keyword
// such as allOf.
func compileSchemaList(keyword, schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) ([]*Schema, error) {
	items, ok := schemaNode.([]any)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: %s at %s is %T, want array of schemas", ErrSchemaLoad, keyword, schemaPath, schemaNode))
	}
	schemas := make([]*Schema, 0, len(items))
	for i, item := range items {
		sub, err := newSubSchema(fmt.Sprintf("%s/%d", schemaPath, i), item, parent, ctx)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, sub)
	}
	return schemas, nil
}

// AllOfValidator implements the allOf keyword.
type AllOfValidator struct {
	schemas []*Schema
}

// newAllOfValidator compiles the allOf keyword.
func newAllOfValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	schemas, err := compileSchemaList("allOf", schemaPath, schemaNode, parent, ctx)
	if err != nil {
		return nil, err
	}
	return &AllOfValidator{schemas: schemas}, nil
}

func (v *AllOfValidator) Validate(node, root any, at string) *MessageSet {
	result := NewMessageSet()
	for _, sub := range v.schemas {
		result.Merge(sub.ValidateAt(node, root, at))
	}
	return result
}

// AnyOfValidator implements the anyOf keyword.
type AnyOfValidator struct {
	schemas []*Schema
}

// newAnyOfValidator compiles the anyOf keyword.
func newAnyOfValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	schemas, err := compileSchemaList("anyOf", schemaPath, schemaNode, parent, ctx)
	if err != nil {
		return nil, err
	}
	return &AnyOfValidator{schemas: schemas}, nil
}

func (v *AnyOfValidator) Validate(node, root any, at string) *MessageSet {
	result := NewMessageSet()
	for _, sub := range v.schemas {
		errs := sub.ValidateAt(node, root, at)
		if errs.Empty() {
			return nil
		}
		result.Merge(errs)
	}
	return result
}

// OneOfValidator implements the oneOf keyword.
type OneOfValidator struct {
	schemas []*Schema
}

// newOneOfValidator compiles the oneOf keyword.
func newOneOfValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	schemas, err := compileSchemaList("oneOf", schemaPath, schemaNode, parent, ctx)
	if err != nil {
		return nil, err
	}
	return &OneOfValidator{schemas: schemas}, nil
}

func (v *OneOfValidator) Validate(node, root any, at string) *MessageSet {
	allErrs := NewMessageSet()
	var passing []string
	for i, sub := range v.schemas {
		errs := sub.ValidateAt(node, root, at)
		if errs.Empty() {
			passing = append(passing, strconv.Itoa(i))
		} else {
			allErrs.Merge(errs)
		}
	}
	switch len(passing) {
	case 1:
		return nil
	case 0:
		return allErrs
	default:
		result := NewMessageSet()
		result.Add(TypeCodeOneOf.newMessage(at, strings.Join(passing, ", ")))
		return result
	}
}

// NotValidator implements the not keyword.
type NotValidator struct {
	schema *Schema
}

// newNotValidator compiles the not keyword.
func newNotValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	sub, err := newSubSchema(schemaPath, schemaNode, parent, ctx)
	if err != nil {
		return nil, err
	}
	return &NotValidator{schema: sub}, nil
}

func (v *NotValidator) Validate(node, root any, at string) *MessageSet {
	if v.schema.ValidateAt(node, root, at).Empty() {
		result := NewMessageSet()
		result.Add(TypeCodeNot.newMessage(at))
		return result
	}
	return nil
}
