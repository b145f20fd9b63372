package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

// SchemaValidator validates arguments against a JSON schema.
type SchemaValidator interface {
	Validate(schema json.RawMessage, data json.RawMessage) error
}

// WithValidation creates middleware that validates arguments against the
// tool's schema before execution. Tools without a schema pass through.
func WithValidation(validator SchemaValidator) Middleware {
	return func(next ToolCallFunc) ToolCallFunc {
		return func(ctx context.Context, args json.RawMessage) (any, error) {
			schema, ok := ToolSchemaFromContext(ctx)
			if !ok {
				return next(ctx, args)
			}

			if err := validator.Validate(schema, args); err != nil {
				return nil, fmt.Errorf("argument validation failed: %w", err)
			}

			return next(ctx, args)
		}
	}
}

// JSONSchemaValidator is a SchemaValidator backed by a JSON Schema compiler.
// Compiled schemas are cached by their source bytes, so repeated calls to the
// same tool do not recompile.
type JSONSchemaValidator struct {
	compiler *jsonschema.Compiler

	mu    sync.Mutex
	cache map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator creates a validator with an empty schema cache.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiler: jsonschema.NewCompiler(),
		cache:    make(map[string]*jsonschema.Schema),
	}
}

// Validate checks data against the given JSON Schema.
func (v *JSONSchemaValidator) Validate(schema json.RawMessage, data json.RawMessage) error {
	compiled, err := v.compile(schema)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}

	result := compiled.Validate(parsed)
	if !result.IsValid() {
		return fmt.Errorf("%s", result.Error())
	}
	return nil
}

func (v *JSONSchemaValidator) compile(schema json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schema)

	v.mu.Lock()
	defer v.mu.Unlock()

	if compiled, ok := v.cache[key]; ok {
		return compiled, nil
	}

	compiled, err := v.compiler.Compile(schema)
	if err != nil {
		return nil, err
	}
	v.cache[key] = compiled
	return compiled, nil
}

// Compile-time check that JSONSchemaValidator implements SchemaValidator.
var _ SchemaValidator = (*JSONSchemaValidator)(nil)
