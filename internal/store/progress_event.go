package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendXPEvent(ctx context.Context, data XPEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.XPEvent.Create().
		SetSequence(seqNum).
		SetAmount(data.Amount).
		SetActivity(data.Activity).
		SetReason(data.Reason).
		SetTotalAfter(data.TotalAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save XP event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetAchievementID(data.AchievementID).
		SetName(data.Name).
		SetXpReward(data.XPReward).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}
