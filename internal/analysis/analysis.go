// Package analysis classifies a case narrative into problems, findings,
// and teaching topics via the language-model backend.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kevinkeet/watershed/internal/llm"
)

// Outcome tags how an analysis result was obtained. Callers must treat
// OutcomeUnparsed as "analysis unavailable," never as "no findings."
type Outcome string

const (
	OutcomeParsed   Outcome = "parsed"
	OutcomeUnparsed Outcome = "unparsed"
	OutcomeFailed   Outcome = "failed"
)

// Problem is one clinical problem identified in a case.
type Problem struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
}

// Decision is one clinical decision point identified in a case.
type Decision struct {
	Decision  string `json:"decision"`
	Rationale string `json:"rationale,omitempty"`
}

// Result is the structured case analysis. All slices are always non-nil
// so downstream code can range freely; Outcome distinguishes an empty
// parsed analysis from an unavailable one.
type Result struct {
	Problems          []Problem  `json:"problems"`
	KeyFindings       []string   `json:"keyFindings"`
	TeachingTopics    []string   `json:"teachingTopics"`
	ClinicalDecisions []Decision `json:"clinicalDecisions"`

	Outcome Outcome `json:"-"`
	RawText string  `json:"-"`
}

const systemPrompt = `You are an experienced attending physician analyzing a clinical case for teaching purposes. Identify the active problems (with priority high/medium/low), the key findings, the teaching topics a learner should review, and the major clinical decisions. Respond with a JSON object: {"problems":[{"name","priority"}],"keyFindings":[],"teachingTopics":[],"clinicalDecisions":[{"decision","rationale"}]}.`

// resultSchema is sent with every analysis request so backends with
// structured output return a conforming object directly.
var resultSchema = &llm.Schema{
	Name:        "case-analysis",
	Description: "Structured classification of a clinical case narrative.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":     map[string]any{"type": "string"},
						"priority": map[string]any{"type": "string", "enum": []any{"high", "medium", "low"}},
					},
					"required": []any{"name", "priority"},
				},
			},
			"keyFindings":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"teachingTopics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"clinicalDecisions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"decision":  map[string]any{"type": "string"},
						"rationale": map[string]any{"type": "string"},
					},
					"required": []any{"decision"},
				},
			},
		},
		"required": []any{"problems", "keyFindings", "teachingTopics", "clinicalDecisions"},
	},
}

// Analyzer runs case analysis against a backend provider.
type Analyzer struct {
	provider llm.Provider
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(provider llm.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze classifies a case narrative. Fatal backend errors (auth,
// quota, usage limits) propagate; parse failures degrade to a Result
// with empty fields and OutcomeUnparsed.
func (a *Analyzer) Analyze(ctx context.Context, narrative string) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCaseAnalysis)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: narrative},
		},
		Schema:      resultSchema,
		MaxTokens:   2048,
		Temperature: 0.3,
	})
	if err != nil {
		// A non-conforming response (after the provider's retry) still
		// carries its content; salvage what parses rather than failing.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return parseResult(invalid.Content), nil
		}
		return nil, fmt.Errorf("case analysis: %w", err)
	}

	result := parseResult(resp.Content)
	return result, nil
}

// parseResult attempts a direct parse, then a balanced-object repair
// pass, then falls back to empty-but-present fields.
func parseResult(raw json.RawMessage) *Result {
	if r, ok := tryParse(raw); ok {
		r.Outcome = OutcomeParsed
		return r
	}

	if extracted, err := llm.ExtractJSON(string(raw)); err == nil {
		if r, ok := tryParse(extracted); ok {
			r.Outcome = OutcomeParsed
			return r
		}
	}

	return &Result{
		Problems:          []Problem{},
		KeyFindings:       []string{},
		TeachingTopics:    []string{},
		ClinicalDecisions: []Decision{},
		Outcome:           OutcomeUnparsed,
		RawText:           string(raw),
	}
}

func tryParse(raw json.RawMessage) (*Result, bool) {
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}
	// A shape with none of the expected fields is not an analysis.
	if r.Problems == nil && r.KeyFindings == nil && r.TeachingTopics == nil && r.ClinicalDecisions == nil {
		return nil, false
	}
	ensureFields(&r)
	return &r, true
}

func ensureFields(r *Result) {
	if r.Problems == nil {
		r.Problems = []Problem{}
	}
	if r.KeyFindings == nil {
		r.KeyFindings = []string{}
	}
	if r.TeachingTopics == nil {
		r.TeachingTopics = []string{}
	}
	if r.ClinicalDecisions == nil {
		r.ClinicalDecisions = []Decision{}
	}
}
