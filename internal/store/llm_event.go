package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kevinkeet/watershed/ent"
	"github.com/kevinkeet/watershed/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = entLLMEventToRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := entLLMEventToRecord(e)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byPurpose := make(map[string]*LLMUsageStat)
	latencySums := make(map[string]int64)
	var order []string

	for _, e := range events {
		st, ok := byPurpose[e.Purpose]
		if !ok {
			st = &LLMUsageStat{Purpose: e.Purpose}
			byPurpose[e.Purpose] = st
			order = append(order, e.Purpose)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
		latencySums[e.Purpose] += e.LatencyMs
	}

	stats := make([]LLMUsageStat, 0, len(order))
	for _, p := range order {
		st := byPurpose[p]
		if st.Calls > 0 {
			st.AvgLatencyMs = latencySums[p] / int64(st.Calls)
		}
		stats = append(stats, *st)
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byModel := make(map[string]*LLMModelUsageStat)
	var order []string

	for _, e := range events {
		st, ok := byModel[e.Model]
		if !ok {
			st = &LLMModelUsageStat{Model: e.Model}
			byModel[e.Model] = st
			order = append(order, e.Model)
		}
		st.Calls++
		st.InputTokens += e.InputTokens
		st.OutputTokens += e.OutputTokens
	}

	stats := make([]LLMModelUsageStat, 0, len(order))
	for _, m := range order {
		stats = append(stats, *byModel[m])
	}
	return stats, nil
}

func (r *eventRepo) TodayLLMUsage(ctx context.Context, now time.Time) (int, int, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := r.client.LLMRequestEvent.Query().
		Where(
			llmrequestevent.TimestampGTE(dayStart),
			llmrequestevent.TimestampLT(dayEnd),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query today's LLM usage: %w", err)
	}

	calls := len(events)
	tokens := 0
	for _, e := range events {
		tokens += e.InputTokens + e.OutputTokens
	}
	return calls, tokens, nil
}

func entLLMEventToRecord(e *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
