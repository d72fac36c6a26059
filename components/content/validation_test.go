package content

import "testing"

func TestSchemaValidatorRejectsInvalidPayload(t *testing.T) {
	validator := NewSchemaValidator()
	def := ResourceDefinition{
		Code: "site-stats",
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"value"},
			"properties": map[string]any{
				"value": map[string]any{"type": "string", "minLength": 1},
			},
		},
	}
	if err := validator.Validate(def, map[string]any{"value": "500+"}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	if err := validator.Validate(def, map[string]any{}); err == nil {
		t.Fatalf("expected validation error for missing value")
	}
}

func TestSchemaValidatorCoordinateBounds(t *testing.T) {
	validator := NewSchemaValidator()
	def := ResourceDefinition{
		Code: "map-locations",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"x": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"y": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			},
		},
	}
	if err := validator.Validate(def, map[string]any{"x": 48.5, "y": 30.0}); err != nil {
		t.Fatalf("expected in-range coordinates to pass, got %v", err)
	}
	if err := validator.Validate(def, map[string]any{"x": 120.0, "y": 30.0}); err == nil {
		t.Fatalf("expected out-of-range coordinate to fail")
	}
}

func TestSchemaValidatorCachesCompiledSchemas(t *testing.T) {
	validator := NewSchemaValidator()
	def := ResourceDefinition{
		Code:   "products",
		Schema: map[string]any{"type": "object"},
	}
	if err := validator.Validate(def, nil); err != nil {
		t.Fatalf("unexpected error validating payload: %v", err)
	}
	if len(validator.compiled) != 1 {
		t.Fatalf("expected schema cache to contain 1 entry, got %d", len(validator.compiled))
	}
	if err := validator.Validate(def, map[string]any{}); err != nil {
		t.Fatalf("unexpected error on cached validation: %v", err)
	}
	if len(validator.compiled) != 1 {
		t.Fatalf("expected schema cache to remain 1 entry, got %d", len(validator.compiled))
	}
}

func TestSchemaValidatorSkipsEmptySchema(t *testing.T) {
	validator := NewSchemaValidator()
	if err := validator.Validate(ResourceDefinition{Code: "freeform"}, map[string]any{"anything": 1}); err != nil {
		t.Fatalf("expected schema-less resource to accept any payload, got %v", err)
	}
}
