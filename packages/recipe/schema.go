package recipe

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["requests"],
  "additionalProperties": false,
  "properties": {
    "variables": {"$ref": "#/definitions/pairs"},
    "defaults": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "headers": {"$ref": "#/definitions/pairs"},
        "query": {"$ref": "#/definitions/pairs"},
        "timeout": {"type": "integer"}
      }
    },
    "requests": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/definitions/request"}
    }
  },
  "definitions": {
    "scalar": {"type": ["string", "number", "boolean"]},
    "pairs": {
      "type": "object",
      "additionalProperties": {"$ref": "#/definitions/scalar"}
    },
    "request": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "preset": {"type": "string"},
        "url": {"type": "string"},
        "method": {"type": "string"},
        "headers": {"$ref": "#/definitions/pairs"},
        "query": {"$ref": "#/definitions/pairs"},
        "body": {"type": "string"},
        "timeout": {"type": "integer"}
      }
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// SchemaError lists every schema violation found in a recipe document.
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Violations, "; "))
}

// validateDocument checks a decoded YAML/JSON document against the recipe schema.
func validateDocument(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		// The document decoded but has no JSON form, e.g. non-string map keys.
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return &SchemaError{Violations: violations}
}
