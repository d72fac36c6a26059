package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PayloadValidator validates record payloads against their resource schema.
type PayloadValidator interface {
	Validate(def ResourceDefinition, payload map[string]any) error
}

// SchemaValidator compiles resource schemas and validates payload maps.
type SchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator builds a validator backed by jsonschema v5.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures the payload satisfies the resource schema.
func (v *SchemaValidator) Validate(def ResourceDefinition, payload map[string]any) error {
	if len(def.Schema) == 0 {
		return nil
	}
	schema, err := v.schemaFor(def)
	if err != nil {
		return err
	}
	var normalized map[string]any
	if payload == nil {
		normalized = map[string]any{}
	} else {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("content: marshal payload for %s: %w", def.Code, err)
		}
		if err := json.Unmarshal(data, &normalized); err != nil {
			return fmt.Errorf("content: normalize payload for %s: %w", def.Code, err)
		}
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("content: payload for %s failed validation: %w", def.Code, err)
	}
	return nil
}

func (v *SchemaValidator) schemaFor(def ResourceDefinition) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[def.Code]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(def.Schema)
	if err != nil {
		return nil, fmt.Errorf("content: marshal schema %s: %w", def.Code, err)
	}
	compiler := jsonschema.NewCompiler()
	name := def.Code + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("content: load schema %s: %w", def.Code, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("content: compile schema %s: %w", def.Code, err)
	}
	v.mu.Lock()
	v.compiled[def.Code] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopPayloadValidator struct{}

func (noopPayloadValidator) Validate(ResourceDefinition, map[string]any) error { return nil }
