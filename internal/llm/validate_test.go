package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-case",
		Description: "A test clinical case",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":   map[string]any{"type": "string"},
				"acuity":  map[string]any{"type": "integer", "minimum": 1},
				"quality": map[string]any{"type": "string", "enum": []any{"optimal", "suboptimal", "poor"}},
			},
			"required": []any{"title", "acuity"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"title":"Chest pain","acuity":2,"quality":"optimal"}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"title":"Syncope","acuity":3}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Dyspnea"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"Fever","acuity":"high"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"title":"Headache","acuity":1,"quality":"excellent"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"patient": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"age": map[string]any{"type": "integer"},
					},
					"required": []any{"age"},
				},
				"vitals": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"patient", "vitals"},
		},
	}

	valid := json.RawMessage(`{"patient":{"age":54},"vitals":["HR 102","BP 88/60"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"patient":{"age":54},"vitals":[102,88]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
