// Package scenario generates branching-simulation scenarios from a case
// narrative via the language-model backend.
package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kevinkeet/watershed/internal/llm"
)

// Type categorizes where in the care arc a scenario takes place.
type Type string

const (
	TypeInitialManagement Type = "initial_management"
	TypeOvernightCall     Type = "overnight_call"
	TypeInpatientDecision Type = "inpatient_decision"
	TypeDischargePlanning Type = "discharge_planning"
)

// Difficulty is a coarse challenge rating.
type Difficulty string

const (
	DifficultyStandard    Difficulty = "standard"
	DifficultyChallenging Difficulty = "challenging"
)

// Scenario is one simulation hook generated for a case. Immutable once
// generated for a session; a fresh set is requested per case.
type Scenario struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Hook       string     `json:"hook"`
	Type       Type       `json:"type"`
	Difficulty Difficulty `json:"difficulty"`
}

// ErrGeneration indicates the backend's response could not be turned
// into a usable scenario list. The session must fail rather than run on
// fabricated content.
type ErrGeneration struct {
	Reason string
	Raw    string
}

func (e *ErrGeneration) Error() string {
	return fmt.Sprintf("scenario generation failed: %s", e.Reason)
}

const systemPrompt = `You are a medical educator designing bedside simulations. Given a clinical case, propose 3-4 short branching scenarios a learner could play through. Respond with a JSON object: {"scenarios":[{"id","title","hook","type","difficulty"}]} where type is one of initial_management, overnight_call, inpatient_decision, discharge_planning and difficulty is standard or challenging.`

// listSchema is sent with every generation request so backends with
// structured output return a conforming scenario list directly.
var listSchema = &llm.Schema{
	Name:        "scenario-list",
	Description: "Branching simulation scenarios proposed for a clinical case.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenarios": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":    map[string]any{"type": "string"},
						"title": map[string]any{"type": "string"},
						"hook":  map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"initial_management", "overnight_call", "inpatient_decision", "discharge_planning"},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"standard", "challenging"},
						},
					},
					"required": []any{"title", "hook", "type", "difficulty"},
				},
			},
		},
		"required": []any{"scenarios"},
	},
}

// Generator produces scenario sets from case narratives.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a generator.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate asks the backend for 3-4 scenarios. Fatal backend errors
// propagate unchanged; unusable response shapes return *ErrGeneration.
func (g *Generator) Generate(ctx context.Context, narrative string) ([]Scenario, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeScenarioGen)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: narrative},
		},
		Schema:      listSchema,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		// A non-conforming response (after the provider's retry) may
		// still hold a usable list wrapped in prose; try the repair
		// parse before giving up.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			return parseScenarios(invalid.Content)
		}
		return nil, fmt.Errorf("scenario generation: %w", err)
	}

	return parseScenarios(resp.Content)
}

type scenarioEnvelope struct {
	Scenarios []Scenario `json:"scenarios"`
}

// parseScenarios applies the direct-parse → balanced-object repair →
// fail policy. Fabricating scenarios is never an option.
func parseScenarios(raw json.RawMessage) ([]Scenario, error) {
	var env scenarioEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		extracted, exErr := llm.ExtractJSON(string(raw))
		if exErr != nil {
			return nil, &ErrGeneration{Reason: "response is not JSON", Raw: string(raw)}
		}
		if err := json.Unmarshal(extracted, &env); err != nil {
			return nil, &ErrGeneration{Reason: "embedded object is not a scenario list", Raw: string(raw)}
		}
	}

	if len(env.Scenarios) == 0 {
		return nil, &ErrGeneration{Reason: "empty scenarios array", Raw: string(raw)}
	}

	for i := range env.Scenarios {
		if env.Scenarios[i].ID == "" {
			env.Scenarios[i].ID = fmt.Sprintf("scenario-%d", i+1)
		}
	}

	return env.Scenarios, nil
}
