package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kevinkeet/watershed/internal/llm"
)

func TestAnalyze_ParsesStructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"problems":[{"name":"STEMI","priority":"high"}],"keyFindings":["ST elevation in V2-V4"],"teachingTopics":["acute coronary syndrome"],"clinicalDecisions":[{"decision":"activate cath lab"}]}`),
	})
	a := NewAnalyzer(mock)

	result, err := a.Analyze(context.Background(), "62M with crushing chest pain...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeParsed {
		t.Fatalf("outcome = %s, want parsed", result.Outcome)
	}
	if len(result.Problems) != 1 || result.Problems[0].Name != "STEMI" {
		t.Errorf("problems = %+v, want STEMI", result.Problems)
	}
	if len(result.TeachingTopics) != 1 {
		t.Errorf("teaching topics = %v, want 1 entry", result.TeachingTopics)
	}
}

func TestAnalyze_RepairsProseWrappedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Here is my analysis:\n\n{\"problems\":[{\"name\":\"sepsis\",\"priority\":\"high\"}],\"keyFindings\":[],\"teachingTopics\":[],\"clinicalDecisions\":[]}"),
	})
	a := NewAnalyzer(mock)

	result, err := a.Analyze(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeParsed {
		t.Fatalf("outcome = %s, want parsed", result.Outcome)
	}
	if len(result.Problems) != 1 || result.Problems[0].Name != "sepsis" {
		t.Errorf("problems = %+v, want sepsis", result.Problems)
	}
}

func TestAnalyze_UnparsableFallsBackEmptyButPresent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("I could not determine structured findings for this case."),
	})
	a := NewAnalyzer(mock)

	result, err := a.Analyze(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeUnparsed {
		t.Fatalf("outcome = %s, want unparsed", result.Outcome)
	}
	// All fields present but empty — distinguishable from "no problems".
	if result.Problems == nil || result.KeyFindings == nil || result.TeachingTopics == nil || result.ClinicalDecisions == nil {
		t.Error("expected all fields non-nil in fallback")
	}
	if result.RawText == "" {
		t.Error("expected raw text preserved in fallback")
	}
}

func TestAnalyze_SendsSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"problems":[],"keyFindings":[],"teachingTopics":[],"clinicalDecisions":[]}`),
	})
	a := NewAnalyzer(mock)

	if _, err := a.Analyze(context.Background(), "case text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := mock.Calls[0]
	if req.Schema == nil {
		t.Fatal("expected request to carry a schema")
	}
	if req.Schema.Name != "case-analysis" {
		t.Errorf("schema name = %s, want case-analysis", req.Schema.Name)
	}
}

func TestAnalyze_NonConformingResponseSalvaged(t *testing.T) {
	// Schema validation failed at the provider, but the content still
	// holds a parseable object wrapped in prose.
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage("Notes first.\n{\"problems\":[{\"name\":\"sepsis\",\"priority\":\"high\"}],\"keyFindings\":[],\"teachingTopics\":[],\"clinicalDecisions\":[]}"),
			Err:     errors.New("schema validation failed"),
		},
	})
	a := NewAnalyzer(mock)

	result, err := a.Analyze(context.Background(), "case text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != OutcomeParsed {
		t.Fatalf("outcome = %s, want parsed (salvaged)", result.Outcome)
	}
	if len(result.Problems) != 1 || result.Problems[0].Name != "sepsis" {
		t.Errorf("problems = %+v, want sepsis", result.Problems)
	}
}

func TestAnalyze_FatalErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrAuth{Err: errors.New("bad key")},
	})
	a := NewAnalyzer(mock)

	_, err := a.Analyze(context.Background(), "case text")
	var authErr *llm.ErrAuth
	if !errors.As(err, &authErr) {
		t.Fatalf("expected ErrAuth to propagate, got: %v", err)
	}
}

func TestAnalyze_SetsPurpose(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"problems":[],"keyFindings":[],"teachingTopics":[],"clinicalDecisions":[]}`),
	})
	a := NewAnalyzer(mock)

	if _, err := a.Analyze(context.Background(), "case text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}
