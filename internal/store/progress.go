package store

import (
	"context"
	"fmt"

	"github.com/endevo/legacyready/ent"
	"github.com/endevo/legacyready/ent/progressevent"
)

// progressRepo implements ProgressRepo on the progress_events table.
type progressRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *progressRepo) Append(ctx context.Context, data ProgressEventData) error {
	if !data.Action.Valid() {
		return fmt.Errorf("append progress: unknown action %q", data.Action)
	}
	if data.RespondentID == "" || data.ModuleID == "" {
		return fmt.Errorf("append progress: respondent and module are required")
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seqNum).
		SetRespondentID(data.RespondentID).
		SetModuleID(data.ModuleID).
		SetAction(string(data.Action)).
		SetLessonsCompleted(data.LessonsCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *progressRepo) ByRespondent(ctx context.Context, respondentID string) ([]ProgressRecord, error) {
	events, err := r.client.ProgressEvent.Query().
		Where(progressevent.RespondentID(respondentID)).
		Order(ent.Asc(progressevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress for %s: %w", respondentID, err)
	}
	return entProgressToRecords(events), nil
}

func (r *progressRepo) All(ctx context.Context) ([]ProgressRecord, error) {
	events, err := r.client.ProgressEvent.Query().
		Order(ent.Asc(progressevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToRecords(events), nil
}

func entProgressToRecords(events []*ent.ProgressEvent) []ProgressRecord {
	out := make([]ProgressRecord, 0, len(events))
	for _, e := range events {
		out = append(out, ProgressRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			ProgressEventData: ProgressEventData{
				RespondentID:     e.RespondentID,
				ModuleID:         e.ModuleID,
				Action:           ProgressAction(e.Action),
				LessonsCompleted: e.LessonsCompleted,
			},
		})
	}
	return out
}
