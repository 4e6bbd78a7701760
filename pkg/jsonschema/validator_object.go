// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"regexp"
	"strconv"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
)

// PropertiesValidator implements the properties keyword.
type PropertiesValidator struct {
	schemas map[string]*Schema
	names   []string
}

// newPropertiesValidator compiles the properties keyword, one
// sub-schema per property name.
func newPropertiesValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	obj, ok := schemaNode.(map[string]any)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: properties at %s is %T, want object", ErrSchemaLoad, schemaPath, schemaNode))
	}
	names := sortedKeys(obj)
	schemas := make(map[string]*Schema, len(obj))
	for _, name := range names {
		sub, err := newSubSchema(schemaPath+"/"+name, obj[name], parent, ctx)
		if err != nil {
			return nil, err
		}
		schemas[name] = sub
	}
	return &PropertiesValidator{schemas: schemas, names: names}, nil
}

func (v *PropertiesValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	for _, name := range v.names {
		val, ok := obj[name]
		if !ok {
			continue
		}
		result.Merge(v.schemas[name].ValidateAt(val, root, propertyPath(at, name)))
	}
	return result
}

// PatternPropertiesValidator implements the patternProperties keyword.
type PatternPropertiesValidator struct {
	patterns []*regexp.Regexp
	schemas  []*Schema
}

// newPatternPropertiesValidator compiles the patternProperties
// keyword, pairing each compiled regexp with its sub-schema.
func newPatternPropertiesValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	obj, ok := schemaNode.(map[string]any)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: patternProperties at %s is %T, want object", ErrSchemaLoad, schemaPath, schemaNode))
	}
	v := &PatternPropertiesValidator{}
	for _, pattern := range sortedKeys(obj) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: patternProperties regexp %q at %s: %v", ErrSchemaLoad, pattern, schemaPath, err))
		}
		sub, err := newSubSchema(schemaPath+"/"+pattern, obj[pattern], parent, ctx)
		if err != nil {
			return nil, err
		}
		v.patterns = append(v.patterns, re)
		v.schemas = append(v.schemas, sub)
	}
	return v, nil
}

func (v *PatternPropertiesValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	for _, name := range sortedKeys(obj) {
		for i, re := range v.patterns {
			if re.MatchString(name) {
				result.Merge(v.schemas[i].ValidateAt(obj[name], root, propertyPath(at, name)))
			}
		}
	}
	return result
}

// AdditionalPropertiesValidator implements the additionalProperties
// keyword. A property is additional when its name matches no key of
// the sibling properties keyword and no pattern of the sibling
// patternProperties keyword.
type AdditionalPropertiesValidator struct {
	// allowed is false when the keyword is the literal false.
	allowed bool
	// schema validates additional property values; nil for the
	// boolean forms.
	schema   *Schema
	declared map[string]bool
	patterns []*regexp.Regexp
}

// newAdditionalPropertiesValidator compiles the additionalProperties
// keyword, reading the sibling properties and patternProperties
// declarations it filters against.
func newAdditionalPropertiesValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	v := &AdditionalPropertiesValidator{
		allowed:  true,
		declared: make(map[string]bool),
	}

	if siblings, ok := parent.node.(map[string]any); ok {
		if props, ok := siblings["properties"].(map[string]any); ok {
			for name := range props {
				v.declared[name] = true
			}
		}
		if patterns, ok := siblings["patternProperties"].(map[string]any); ok {
			for _, pattern := range sortedKeys(patterns) {
				re, err := regexp.Compile(pattern)
				if err != nil {
					return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: patternProperties regexp %q at %s: %v", ErrSchemaLoad, pattern, schemaPath, err))
				}
				v.patterns = append(v.patterns, re)
			}
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

// isAdditional reports whether a property name falls through to
// additionalProperties.
func (v *AdditionalPropertiesValidator) isAdditional(name string) bool {
	if v.declared[name] {
		return false
	}
	for _, re := range v.patterns {
		if re.MatchString(name) {
			return false
		}
	}
	return true
}

func (v *AdditionalPropertiesValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	for _, name := range sortedKeys(obj) {
		if !v.isAdditional(name) {
			continue
		}
		if v.schema != nil {
			result.Merge(v.schema.ValidateAt(obj[name], root, propertyPath(at, name)))
		} else if !v.allowed {
			result.Add(TypeCodeAdditionalProperties.newMessage(at, name))
		}
	}
	return result
}

// RequiredValidator implements the required keyword.
type RequiredValidator struct {
	names []string
}

// newRequiredValidator compiles the required keyword.
func newRequiredValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	items, ok := schemaNode.([]any)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: required at %s is %T, want array of string", ErrSchemaLoad, schemaPath, schemaNode))
	}
	names := make([]string, 0, len(items))
	for i, e := range items {
		name, ok := e.(string)
		if !ok {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: required at %s item %d is %T, want string", ErrSchemaLoad, schemaPath, i, e))
		}
		names = append(names, name)
	}
	return &RequiredValidator{names: names}, nil
}

func (v *RequiredValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	for _, name := range v.names {
		if _, ok := obj[name]; !ok {
			result.Add(TypeCodeRequired.newMessage(at, name))
		}
	}
	return result
}

// MinPropertiesValidator implements the minProperties keyword.
type MinPropertiesValidator struct {
	min int64
}

// newMinPropertiesValidator compiles the minProperties keyword.
func newMinPropertiesValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	min, ok := intArg(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: minProperties at %s is not an integer", ErrSchemaLoad, schemaPath))
	}
	return &MinPropertiesValidator{min: min}, nil
}

func (v *MinPropertiesValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	if int64(len(obj)) >= v.min {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMinProperties.newMessage(at, strconv.FormatInt(v.min, 10)))
	return result
}

// MaxPropertiesValidator implements the maxProperties keyword.
type MaxPropertiesValidator struct {
	max int64
}

// newMaxPropertiesValidator compiles the maxProperties keyword.
func newMaxPropertiesValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	max, ok := intArg(schemaNode)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: maxProperties at %s is not an integer", ErrSchemaLoad, schemaPath))
	}
	return &MaxPropertiesValidator{max: max}, nil
}

func (v *MaxPropertiesValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	if int64(len(obj)) <= v.max {
		return nil
	}
	result := NewMessageSet()
	result.Add(TypeCodeMaxProperties.newMessage(at, strconv.FormatInt(v.max, 10)))
	return result
}

// dependency is one entry of the dependencies keyword: either a list
// of property names the trigger property requires, or a schema the
// whole instance must satisfy when the trigger property is present.
type dependency struct {
	required []string
	schema   *Schema
}

// DependenciesValidator implements the dependencies keyword.
type DependenciesValidator struct {
	deps  map[string]dependency
	names []string
}

// newDependenciesValidator compiles the dependencies keyword.
func newDependenciesValidator(schemaPath string, schemaNode any, parent *Schema, ctx *ValidationContext) (Validator, error) {
	obj, ok := schemaNode.(map[string]any)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: dependencies at %s is %T, want object", ErrSchemaLoad, schemaPath, schemaNode))
	}
	names := sortedKeys(obj)
	deps := make(map[string]dependency, len(obj))
	for _, name := range names {
		switch val := obj[name].(type) {
		case []any:
			var required []string
			for i, e := range val {
				s, ok := e.(string)
				if !ok {
					return nil, motmedelErrors.NewWithTrace(fmt.Errorf("%w: dependencies entry %q at %s item %d is %T, want string", ErrSchemaLoad, name, schemaPath, i, e))
				}
				required = append(required, s)
			}
			deps[name] = dependency{required: required}
		default:
			sub, err := newSubSchema(schemaPath+"/"+name, val, parent, ctx)
			if err != nil {
				return nil, err
			}
			deps[name] = dependency{schema: sub}
		}
	}
	return &DependenciesValidator{deps: deps, names: names}, nil
}

func (v *DependenciesValidator) Validate(node, root any, at string) *MessageSet {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	result := NewMessageSet()
	for _, name := range v.names {
		if _, present := obj[name]; !present {
			continue
		}
		dep := v.deps[name]
		if dep.schema != nil {
			result.Merge(dep.schema.ValidateAt(node, root, at))
			continue
		}
		for _, required := range dep.required {
			if _, ok := obj[required]; !ok {
				result.Add(TypeCodeDependencies.newMessage(at, required))
			}
		}
	}
	return result
}
