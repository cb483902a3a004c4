package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed sheet.schema.json
var sheetSchemaJSON string

var sheetSchema = compileSheetSchema()

func compileSheetSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("sheet.schema.json", strings.NewReader(sheetSchemaJSON)); err != nil {
		panic(fmt.Sprintf("invalid embedded sheet schema: %v", err))
	}
	return compiler.MustCompile("sheet.schema.json")
}

// validateDocument checks a raw YAML document against the sheet schema.
func validateDocument(data []byte) error {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode sheet YAML: %w", err)
	}

	// Numbers stay json.Number so the schema sees exact values
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()

	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode sheet YAML: %w", err)
	}

	if err := sheetSchema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError formats a JSON Schema validation error into a readable message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collectErrors func(*jsonschema.ValidationError)
	collectErrors = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}

		for _, cause := range e.Causes {
			collectErrors(cause)
		}
	}

	collectErrors(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed")
	}

	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
