// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"strconv"
	"strings"
)

// ValidatorTypeCode identifies a schema keyword together with its
// error code key and default message template. The template uses
// positional markers: {0} is the instance path, {1} and up are the
// keyword-specific arguments.
type ValidatorTypeCode int

const (
	TypeCodeAdditionalProperties ValidatorTypeCode = iota
	TypeCodeAdditionalItems
	TypeCodeAllOf
	TypeCodeAnyOf
	TypeCodeConst
	TypeCodeDependencies
	TypeCodeEnum
	TypeCodeFormat
	TypeCodeItems
	TypeCodeMaximum
	TypeCodeMaxItems
	TypeCodeMaxLength
	TypeCodeMaxProperties
	TypeCodeMinimum
	TypeCodeMinItems
	TypeCodeMinLength
	TypeCodeMinProperties
	TypeCodeMultipleOf
	TypeCodeNot
	TypeCodeOneOf
	TypeCodePattern
	TypeCodePatternProperties
	TypeCodeProperties
	TypeCodeRef
	TypeCodeRequired
	TypeCodeType
	TypeCodeUniqueItems
)

// typeCodeInfo is the table entry for one ValidatorTypeCode.
type typeCodeInfo struct {
	keyword  string
	code     string
	template string
}

// typeCodes maps each ValidatorTypeCode to its keyword, error code
// key, and message template.
var typeCodes = [...]typeCodeInfo{
	TypeCodeAdditionalProperties: {"additionalProperties", "1001", "{0}.{1}: is not defined in the schema and the schema does not allow additional properties"},
	TypeCodeAdditionalItems:      {"additionalItems", "1002", "{0}[{1}]: index is greater than the number of allowed items and the schema does not allow additional items"},
	TypeCodeAllOf:                {"allOf", "1003", "{0}: should be valid to all the schemas"},
	TypeCodeAnyOf:                {"anyOf", "1004", "{0}: should be valid to any of the schemas"},
	TypeCodeConst:                {"const", "1005", "{0}: must be the constant value {1}"},
	TypeCodeDependencies:         {"dependencies", "1006", "{0}: has a dependency on {1}"},
	TypeCodeEnum:                 {"enum", "1007", "{0}: does not have a value in the enumeration {1}"},
	TypeCodeFormat:               {"format", "1008", "{0}: does not match the {1} format"},
	TypeCodeItems:                {"items", "1009", "{0}[{1}]: no validator found at this index"},
	TypeCodeMaximum:              {"maximum", "1010", "{0}: must have a maximum value of {1}"},
	TypeCodeMaxItems:             {"maxItems", "1011", "{0}: there must be a maximum of {1} items in this array"},
	TypeCodeMaxLength:            {"maxLength", "1012", "{0}: may only be {1} characters long"},
	TypeCodeMaxProperties:        {"maxProperties", "1013", "{0}: may only have a maximum of {1} properties"},
	TypeCodeMinimum:              {"minimum", "1014", "{0}: must have a minimum value of {1}"},
	TypeCodeMinItems:             {"minItems", "1015", "{0}: there must be a minimum of {1} items in this array"},
	TypeCodeMinLength:            {"minLength", "1016", "{0}: must be at least {1} characters long"},
	TypeCodeMinProperties:        {"minProperties", "1017", "{0}: should have a minimum of {1} properties"},
	TypeCodeMultipleOf:           {"multipleOf", "1018", "{0}: must be a multiple of {1}"},
	TypeCodeNot:                  {"not", "1019", "{0}: should not be valid to the schema"},
	TypeCodeOneOf:                {"oneOf", "1020", "{0}: should be valid to one and only one of the schemas, but {1} are valid"},
	TypeCodePattern:              {"pattern", "1021", "{0}: does not match the regex pattern {1}"},
	TypeCodePatternProperties:    {"patternProperties", "1022", "{0}: has some error with pattern properties"},
	TypeCodeProperties:           {"properties", "1023", "{0}: has an error with properties"},
	TypeCodeRef:                  {"$ref", "1024", "{0}: reference {1} cannot be resolved"},
	TypeCodeRequired:             {"required", "1025", "{0}.{1}: is missing but it is required"},
	TypeCodeType:                 {"type", "1026", "{0}: {1} found, {2} expected"},
	TypeCodeUniqueItems:          {"uniqueItems", "1027", "{0}: the items in the array must be unique"},
}

// Keyword returns the schema keyword this code stands for.
func (c ValidatorTypeCode) Keyword() string {
	return typeCodes[c].keyword
}

// ErrorCode returns the error code key of this keyword.
func (c ValidatorTypeCode) ErrorCode() string {
	return typeCodes[c].code
}

// MessageTemplate returns the default message template of this keyword.
func (c ValidatorTypeCode) MessageTemplate() string {
	return typeCodes[c].template
}

// newMessage builds a ValidationMessage for this keyword at the
// given instance path, rendering the template with the arguments.
func (c ValidatorTypeCode) newMessage(at string, arguments ...string) ValidationMessage {
	return ValidationMessage{
		Type:      c.Keyword(),
		Code:      c.ErrorCode(),
		Path:      at,
		Arguments: arguments,
		Message:   formatTemplate(c.MessageTemplate(), at, arguments),
	}
}

// formatTemplate renders a message template, replacing {0} with the
// path and {1} and up with the corresponding argument.
func formatTemplate(template, at string, arguments []string) string {
	var sb strings.Builder
	for {
		open := strings.IndexByte(template, '{')
		if open < 0 {
			sb.WriteString(template)
			return sb.String()
		}
		closing := strings.IndexByte(template[open:], '}')
		if closing < 0 {
			sb.WriteString(template)
			return sb.String()
		}
		closing += open
		sb.WriteString(template[:open])
		idx, err := strconv.Atoi(template[open+1 : closing])
		switch {
		case err != nil:
			sb.WriteString(template[open : closing+1])
		case idx == 0:
			sb.WriteString(at)
		case idx-1 < len(arguments):
			sb.WriteString(arguments[idx-1])
		}
		template = template[closing+1:]
	}
}
