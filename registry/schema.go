package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	jsonschemav5 "github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaURL names the compiled schema resource; it is an identifier, not a
// fetched location.
const schemaURL = "registry-export.schema.json"

var buildSchema = sync.OnceValues(func() ([]byte, error) {
	// The record portion is reflected from the Record struct, so the schema
	// cannot drift from the Go type. The reflected schema keeps
	// additionalProperties false: unknown record fields are a contract
	// violation.
	reflector := jsonschema.Reflector{DoNotReference: true}
	recordSchema, err := json.Marshal(reflector.Reflect(&Record{}))
	if err != nil {
		return nil, fmt.Errorf("reflect record schema: %w", err)
	}

	var record map[string]any
	if err := json.Unmarshal(recordSchema, &record); err != nil {
		return nil, fmt.Errorf("reparse record schema: %w", err)
	}
	delete(record, "$schema")
	delete(record, "$id")

	// The outer object is assembled by hand: chain keys are constrained to
	// decimal chain IDs, while properties beyond "chains" stay permitted for
	// forward compatibility.
	return json.Marshal(map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []string{"chains"},
		"properties": map[string]any{
			"chains": map[string]any{
				"type": "object",
				"propertyNames": map[string]any{
					"pattern": "^(0|[1-9][0-9]*)$",
				},
				"additionalProperties": record,
			},
		},
	})
})

var compileSchema = sync.OnceValues(func() (*jsonschemav5.Schema, error) {
	data, err := buildSchema()
	if err != nil {
		return nil, err
	}

	return jsonschemav5.CompileString(schemaURL, string(data))
})

// Schema returns the JSON schema that registry export documents validate
// against.
func Schema() ([]byte, error) {
	return buildSchema()
}

// Validate checks that data is a registry document conforming to Schema.
func Validate(data []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile registry schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("registry document is not valid JSON: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("registry document does not match schema: %w", err)
	}

	return nil
}
