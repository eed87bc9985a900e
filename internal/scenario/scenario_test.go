package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kevinkeet/watershed/internal/llm"
)

const validScenarios = `{"scenarios":[
	{"id":"s1","title":"First hours","hook":"The patient arrives hypotensive.","type":"initial_management","difficulty":"standard"},
	{"id":"s2","title":"Night shift","hook":"You are called at 2am.","type":"overnight_call","difficulty":"challenging"},
	{"id":"s3","title":"Going home","hook":"Day 4, planning discharge.","type":"discharge_planning","difficulty":"standard"}
]}`

func TestGenerate_ParsesScenarioList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validScenarios)})
	g := NewGenerator(mock)

	scenarios, err := g.Generate(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}
	if scenarios[0].Type != TypeInitialManagement {
		t.Errorf("type = %s, want initial_management", scenarios[0].Type)
	}
	if scenarios[1].Difficulty != DifficultyChallenging {
		t.Errorf("difficulty = %s, want challenging", scenarios[1].Difficulty)
	}
}

func TestGenerate_RepairsFencedResponse(t *testing.T) {
	fenced := "Sure, here are the scenarios:\n```json\n" + validScenarios + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	g := NewGenerator(mock)

	scenarios, err := g.Generate(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}
}

func TestGenerate_EmptyListFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"scenarios":[]}`)})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "case text")
	var genErr *ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected ErrGeneration, got: %v", err)
	}
}

func TestGenerate_ProseOnlyFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("I cannot generate scenarios for this case.")})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "case text")
	var genErr *ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected ErrGeneration, got: %v", err)
	}
	if genErr.Raw == "" {
		t.Error("expected raw text preserved on failure")
	}
}

func TestGenerate_AssignsMissingIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"scenarios":[{"title":"No id","hook":"...","type":"inpatient_decision","difficulty":"standard"}]}`),
	})
	g := NewGenerator(mock)

	scenarios, err := g.Generate(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scenarios[0].ID != "scenario-1" {
		t.Errorf("id = %q, want scenario-1", scenarios[0].ID)
	}
}

func TestGenerate_SendsSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validScenarios)})
	g := NewGenerator(mock)

	if _, err := g.Generate(context.Background(), "case text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Fatal("expected request to carry a schema")
	}
	if req.Schema.Name != "scenario-list" {
		t.Errorf("schema name = %s, want scenario-list", req.Schema.Name)
	}
}

func TestGenerate_NonConformingResponseSalvaged(t *testing.T) {
	// Schema validation failed at the provider but the content still
	// holds a usable list wrapped in prose.
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage("Here you go:\n" + validScenarios),
			Err:     errors.New("schema validation failed"),
		},
	})
	g := NewGenerator(mock)

	scenarios, err := g.Generate(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(scenarios))
	}
}

func TestGenerate_FatalErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUsageLimit{Resource: "tokens", Limit: 200000}})
	g := NewGenerator(mock)

	_, err := g.Generate(context.Background(), "case text")
	var limitErr *llm.ErrUsageLimit
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected ErrUsageLimit to propagate, got: %v", err)
	}
}
