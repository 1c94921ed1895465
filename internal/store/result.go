package store

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/endevo/legacyready/ent"
	"github.com/endevo/legacyready/ent/assessmentevent"
	"github.com/endevo/legacyready/ent/predicate"
	"github.com/google/uuid"
)

// resultRepo implements ResultRepo on the assessment_events table.
type resultRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *resultRepo) Save(ctx context.Context, res *Result) error {
	if res.RespondentID == "" {
		return fmt.Errorf("save result: respondent ID is required")
	}
	if res.ID == "" {
		res.ID = uuid.New().String()
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	modules := res.Modules
	if modules == nil {
		modules = []string{}
	}
	answers := res.Answers
	if answers == nil {
		answers = map[string]string{}
	}

	e, err := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetResultID(res.ID).
		SetRespondentID(res.RespondentID).
		SetScore(res.Score).
		SetModules(modules).
		SetAnswers(answers).
		SetBankVersion(res.BankVersion).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}

	res.Sequence = e.Sequence
	res.Timestamp = e.Timestamp
	return nil
}

func (r *resultRepo) Latest(ctx context.Context, respondentID string) (*Result, error) {
	e, err := r.client.AssessmentEvent.Query().
		Where(assessmentevent.RespondentID(respondentID)).
		Order(ent.Desc(assessmentevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	return entResultToResult(e), nil
}

func (r *resultRepo) Get(ctx context.Context, id string) (*Result, error) {
	e, err := r.client.AssessmentEvent.Query().
		Where(assessmentevent.ResultID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query result %s: %w", id, err)
	}
	return entResultToResult(e), nil
}

func (r *resultRepo) List(ctx context.Context, opts QueryOpts) ([]Result, error) {
	var preds []predicate.AssessmentEvent
	if opts.After > 0 {
		preds = append(preds, assessmentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, assessmentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, assessmentevent.TimestampLTE(opts.To))
	}
	if opts.RespondentID != "" {
		preds = append(preds, assessmentevent.RespondentID(opts.RespondentID))
	}

	q := r.client.AssessmentEvent.Query().
		Where(preds...).
		Order(ent.Desc(assessmentevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	out := make([]Result, 0, len(events))
	for _, e := range events {
		out = append(out, *entResultToResult(e))
	}
	return out, nil
}

func entResultToResult(e *ent.AssessmentEvent) *Result {
	return &Result{
		ID:           e.ResultID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		RespondentID: e.RespondentID,
		Score:        e.Score,
		Modules:      slices.Clone(e.Modules),
		Answers:      maps.Clone(e.Answers),
		BankVersion:  e.BankVersion,
	}
}
