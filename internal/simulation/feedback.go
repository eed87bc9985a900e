package simulation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kevinkeet/watershed/internal/llm"
	"github.com/kevinkeet/watershed/internal/scoring"
)

const feedbackSystemPrompt = `You are an attending physician debriefing a learner's decision in a simulation. Judge the chosen action in context. Respond with a JSON object: {"quality":"optimal|suboptimal|poor","text":"one short paragraph of narrative feedback"}.`

// Feedback is the backend's judgment of a decision. When the response
// cannot be parsed, Text carries the raw prose and Quality is empty.
type Feedback struct {
	Quality string `json:"quality"`
	Text    string `json:"text"`
	Parsed  bool   `json:"-"`
}

// fetchFeedback asks the backend to judge a choice. Parse failures fall
// back to a minimal record wrapping the raw text; only transport errors
// propagate.
func (e *Engine) fetchFeedback(ctx context.Context, step *Step, choice Choice) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSimFeedback)

	prompt := fmt.Sprintf("Situation: %s\nChosen action: %s", step.Narrative, choice.Text)
	resp, err := e.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   1024,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, err
	}

	return parseFeedback(resp.Content), nil
}

func parseFeedback(raw json.RawMessage) *Feedback {
	var fb Feedback
	if err := json.Unmarshal(raw, &fb); err == nil && fb.Text != "" {
		fb.Parsed = true
		return &fb
	}

	if extracted, err := llm.ExtractJSON(string(raw)); err == nil {
		var fb Feedback
		if err := json.Unmarshal(extracted, &fb); err == nil && fb.Text != "" {
			fb.Parsed = true
			return &fb
		}
	}

	return &Feedback{Text: string(raw)}
}

// effectiveQuality picks the quality recorded in history: the feedback's
// own quality field overrides the choice's nominal tag when it is
// structurally present and valid, letting the backend recontextualize a
// decision based on narrative nuance.
func effectiveQuality(choice Choice, fb *Feedback) scoring.Quality {
	if fb != nil && fb.Parsed {
		switch scoring.Quality(fb.Quality) {
		case scoring.QualityOptimal, scoring.QualitySuboptimal, scoring.QualityPoor:
			return scoring.ClassifyOutcome(scoring.Quality(fb.Quality))
		}
	}
	return scoring.ClassifyOutcome(scoring.ParseQuality(choice.BaseQuality))
}
