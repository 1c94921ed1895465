package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/endevo/legacyready/ent"
	"github.com/endevo/legacyready/ent/llmrequestevent"
	"github.com/endevo/legacyready/ent/predicate"
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

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	var preds []predicate.LLMRequestEvent
	if opts.After > 0 {
		preds = append(preds, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, llmrequestevent.TimestampLTE(opts.To))
	}

	q := r.client.LLMRequestEvent.Query().
		Where(preds...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEvent, 0, len(events))
	for _, e := range events {
		out = append(out, *entLLMEventToEvent(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	return entLLMEventToEvent(e), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byPurpose := make(map[string]*PurposeUsage)
	latency := make(map[string]int64)
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &PurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[e.Purpose] += e.LatencyMs
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for p, u := range byPurpose {
		u.AvgLatencyMs = latency[p] / int64(u.Calls)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	byModel := make(map[string]*ModelUsage)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &ModelUsage{Model: e.Model}
			byModel[e.Model] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func entLLMEventToEvent(e *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
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
		},
	}
}
