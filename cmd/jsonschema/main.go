// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonschema validates JSON or YAML documents against a
// JSON schema.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joblift/json-schema-validator/pkg/jsonschema"
)

var (
	schemaPath string
	forceYAML  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "jsonschema",
	Short: "JSON Schema validation tool",
	Long: `Validate JSON or YAML documents against a JSON schema.

The schema dialect is JSON Schema Draft 4. Schemas and instances may
be JSON files or YAML files; YAML documents are normalized to JSON
values before validation.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate --schema <schema-file> <instance-file>...",
	Short: "Validate instance documents against a schema",
	Long: `Validate one or more instance documents against a schema.

Exit status is 0 when every instance is valid, 1 when any instance
fails validation, and 2 when the schema or an instance cannot be
loaded. Validation failures are reported as a JSON array of messages
on standard output.

Examples:
  jsonschema validate --schema schema.json instance.json
  jsonschema validate --schema schema.yaml config.yaml other.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(schemaPath, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	},
}

// runValidate compiles the schema once and validates every instance
// file against it. It calls os.Exit(1) after reporting when any
// instance is invalid.
func runValidate(schemaFile string, instanceFiles []string) error {
	schemaNode, err := loadDocument(schemaFile)
	if err != nil {
		return fmt.Errorf("loading schema %s: %w", schemaFile, err)
	}
	schema, err := jsonschema.Default().GetSchemaFromNode(schemaNode)
	if err != nil {
		return fmt.Errorf("compiling schema %s: %w", schemaFile, err)
	}

	var failures []jsonschema.ValidationMessage
	for _, file := range instanceFiles {
		instance, err := loadDocument(file)
		if err != nil {
			return fmt.Errorf("loading instance %s: %w", file, err)
		}
		result := schema.Validate(instance)
		if verbose {
			fmt.Fprintf(os.Stderr, "%s: %d violations\n", file, result.Len())
		}
		failures = append(failures, result.Messages()...)
	}

	if len(failures) > 0 {
		out, err := json.MarshalIndent(failures, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		os.Exit(1)
	}
	return nil
}

// loadDocument reads a JSON or YAML file and returns its parsed
// value, normalized so the validator sees the same value shapes for
// both encodings.
func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if forceYAML || isYAMLPath(path) {
		return parseYAML(data)
	}
	return jsonschema.ParseJSON(data)
}

// isYAMLPath reports whether a file path looks like a YAML document.
func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// parseYAML decodes a YAML document into parsed-JSON value shapes.
func parseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	validateCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Schema file to validate against")
	validateCmd.Flags().BoolVar(&forceYAML, "yaml", false, "Treat all input files as YAML regardless of extension")
	_ = validateCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(validateCmd)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logrus.SetLevel(logrus.WarnLevel)
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
