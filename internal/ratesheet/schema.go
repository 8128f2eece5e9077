package ratesheet

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {"$ref": "#/$defs/card"},
  "$defs": {
    "table": {"type": "object", "additionalProperties": {"type": "string"}},
    "card": {
      "type": "object",
      "required": ["TRANSLOADING", "ACCESSORIAL CHARGES", "STORAGE", "WAREHOUSING"],
      "properties": {
        "TRANSLOADING": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["Container Size", "Palletized"],
            "additionalProperties": {"type": "string"}
          }
        },
        "ACCESSORIAL CHARGES": {"$ref": "#/$defs/table"},
        "STORAGE": {"type": "array", "items": {"type": "string"}},
        "WAREHOUSING": {"$ref": "#/$defs/table"},
        "DRAYAGE": {"$ref": "#/$defs/drayage"}
      }
    },
    "addOn": {
      "type": "object",
      "required": ["Rate"],
      "properties": {
        "Rate": {"type": "string"},
        "Unit": {"type": "string"},
        "Free units": {"type": "string"}
      },
      "additionalProperties": false
    },
    "drayage": {
      "type": "object",
      "required": ["Base rate per mile"],
      "properties": {
        "Base rate per mile": {"$ref": "#/$defs/table"},
        "Minimum miles": {"type": "string"},
        "Weight surcharges": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["Label", "Min lbs", "Surcharge"],
            "properties": {
              "Label": {"type": "string"},
              "Min lbs": {"type": "string"},
              "Max lbs": {"type": "string"},
              "Surcharge": {"type": "string"}
            },
            "additionalProperties": false
          }
        },
        "Quote add-ons": {"type": "object", "additionalProperties": {"$ref": "#/$defs/addOn"}},
        "Invoice only": {"type": "object", "additionalProperties": {"$ref": "#/$defs/addOn"}}
      }
    }
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("ratesheet.json", strings.NewReader(documentSchema)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("ratesheet.json")
	})
	return compiledSchema, compileErr
}

func validateDocument(v any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}
