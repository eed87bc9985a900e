package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kevinkeet/watershed/internal/llm"
	"github.com/kevinkeet/watershed/internal/scenario"
)

const stepSystemPrompt = `You are running a bedside clinical simulation. Given the scenario, the step number, and the decisions made so far, produce the next situational step. Respond with a JSON object: {"stepNumber","time","narrative","vitals":{},"findings","choices":[{"text","baseQuality"}],"isLastStep"} where baseQuality is optimal, suboptimal, or poor. Include at most one optimal choice.`

// stepSchema is sent with every step request so backends with
// structured output return a conforming step directly.
var stepSchema = &llm.Schema{
	Name:        "sim-step",
	Description: "One situational step in a bedside clinical simulation.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stepNumber": map[string]any{"type": "integer"},
			"time":       map[string]any{"type": "string"},
			"narrative":  map[string]any{"type": "string"},
			"vitals": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
			"findings": map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
						"baseQuality": map[string]any{
							"type": "string",
							"enum": []any{"optimal", "suboptimal", "poor"},
						},
					},
					"required": []any{"text", "baseQuality"},
				},
			},
			"isLastStep": map[string]any{"type": "boolean"},
		},
		"required": []any{"narrative", "choices"},
	},
}

// fetchStep asks the backend for the next step, passing the scenario and
// the accumulating decision history so the model can react to earlier
// choices.
func (e *Engine) fetchStep(ctx context.Context, sc *scenario.Scenario, stepNumber int, history []HistoryEntry) (*Step, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSimStep)

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: stepSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStepPrompt(sc, stepNumber, history)},
		},
		Schema:      stepSchema,
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		// A non-conforming response (after the provider's retry) may
		// still hold a usable step wrapped in prose; run the repair
		// parse before failing the step.
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			if step, parseErr := parseStep(invalid.Content); parseErr == nil {
				step.StepNumber = stepNumber
				return step, nil
			}
		}
		return nil, fmt.Errorf("step %d: %w", stepNumber, err)
	}

	step, err := parseStep(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("step %d: %w", stepNumber, err)
	}
	step.StepNumber = stepNumber
	return step, nil
}

func buildStepPrompt(sc *scenario.Scenario, stepNumber int, history []HistoryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\nType: %s\nHook: %s\nStep number: %d\n", sc.Title, sc.Type, sc.Hook, stepNumber)

	if len(history) > 0 {
		b.WriteString("\nDecisions so far:\n")
		for _, h := range history {
			fmt.Fprintf(&b, "%d. %s (%s)\n", h.Step, h.Choice, h.Quality)
		}
	}
	return b.String()
}

// parseStep parses a step descriptor, tolerating prose around the JSON.
// An empty choice set is an invariant violation and is treated as a
// shape error, not silently defaulted.
func parseStep(raw json.RawMessage) (*Step, error) {
	var step Step
	if err := json.Unmarshal(raw, &step); err != nil {
		extracted, exErr := llm.ExtractJSON(string(raw))
		if exErr != nil {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("step is not JSON")}
		}
		if err := json.Unmarshal(extracted, &step); err != nil {
			return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("embedded object is not a step")}
		}
	}

	if len(step.Choices) == 0 {
		return nil, &llm.ErrInvalidResponse{Content: raw, Err: fmt.Errorf("step has no choices")}
	}

	// Generation convention says at most one optimal choice. Flag the
	// anomaly but keep the step: scoring only reads the chosen option's
	// own tag.
	optimal := 0
	for _, c := range step.Choices {
		if c.BaseQuality == "optimal" {
			optimal++
		}
	}
	if optimal != 1 {
		fmt.Fprintf(os.Stderr, "warning: step has %d optimal choices\n", optimal)
	}

	return &step, nil
}
