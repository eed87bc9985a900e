package store

import (
	"context"
	"fmt"

	"github.com/kevinkeet/watershed/ent"
	"github.com/kevinkeet/watershed/ent/simulationevent"
)

func (r *eventRepo) AppendSimulationEvent(ctx context.Context, data SimulationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SimulationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetScenarioID(data.ScenarioID).
		SetScenarioType(data.ScenarioType).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetSteps(data.Steps).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save simulation event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySimulationSummaries(ctx context.Context, opts QueryOpts) ([]SimulationSummaryRecord, error) {
	query := r.client.SimulationEvent.Query().
		Where(simulationevent.Action("end")).
		Order(ent.Desc(simulationevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query simulation summaries: %w", err)
	}

	records := make([]SimulationSummaryRecord, len(events))
	for i, e := range events {
		records[i] = SimulationSummaryRecord{
			SessionID:    e.SessionID,
			Timestamp:    e.Timestamp,
			ScenarioID:   e.ScenarioID,
			ScenarioType: e.ScenarioType,
			Score:        e.Score,
			MaxScore:     e.MaxScore,
			Steps:        e.Steps,
		}
	}
	return records, nil
}

func (r *eventRepo) AppendDecisionEvent(ctx context.Context, data DecisionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DecisionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStep(data.Step).
		SetAction(data.Action).
		SetQuality(data.Quality).
		SetDelta(data.Delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save decision event: %w", err)
	}
	return nil
}
