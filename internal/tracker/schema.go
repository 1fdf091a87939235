package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema describes the accepted tracked-list file shapes: the modern
// object form and the two legacy forms still accepted on load.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "anyOf": [
    {
      "type": "object",
      "required": ["lists"],
      "properties": {
        "lists": {"type": "array", "items": {"type": "string"}}
      }
    },
    {
      "type": "object",
      "required": ["tracked_files"],
      "properties": {
        "tracked_files": {"type": "array", "items": {"type": "string"}}
      }
    },
    {"type": "array", "items": {"type": "string"}}
  ]
}`

const schemaResourceName = "checkmarks-config.schema.json"

// ValidationResult contains validation results for a tracked-list file.
type ValidationResult struct {
	Valid    bool
	Errors   []error
	Warnings []string
}

// ValidateConfigFile checks the tracked-list file at path against the
// embedded schema. A missing file is valid (it is created on first save);
// legacy shapes are valid with a warning. Note that the loader itself never
// rejects a file: validation exists so the doctor command can surface
// problems that loading silently degrades to an empty list.
func ValidateConfigFile(path string) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("tracked-list file %s does not exist yet (created on first add)", path))
			return result
		}
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("read tracked-list file: %w", err))
		return result
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("malformed JSON (loads as empty list): %w", err))
		return result
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceName, strings.NewReader(configSchema)); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("add schema resource: %w", err))
		return result
	}
	schema, err := compiler.Compile(schemaResourceName)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("compile schema: %w", err))
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err)
		return result
	}

	switch v := doc.(type) {
	case []interface{}:
		result.Warnings = append(result.Warnings,
			"legacy bare-array shape; rewritten as {\"lists\": [...]} on next save")
	case map[string]interface{}:
		if _, ok := v["lists"]; !ok {
			result.Warnings = append(result.Warnings,
				"legacy tracked_files shape; rewritten as {\"lists\": [...]} on next save")
		}
	}

	return result
}
