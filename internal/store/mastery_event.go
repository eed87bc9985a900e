package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetDelta(data.Delta).
		SetPointsAfter(data.PointsAfter).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetTopic(data.Topic).
		SetCorrect(data.Correct).
		SetIntervalDays(data.IntervalDays).
		SetNextReview(data.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}
