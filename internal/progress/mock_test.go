package progress

import (
	"context"
	"time"

	"github.com/endevo/legacyready/internal/store"
)

// mockResultRepo implements store.ResultRepo for progress tests.
type mockResultRepo struct {
	results []store.Result
}

func (m *mockResultRepo) Save(_ context.Context, r *store.Result) error {
	r.Sequence = int64(len(m.results) + 1)
	m.results = append(m.results, *r)
	return nil
}

func (m *mockResultRepo) Latest(_ context.Context, respondentID string) (*store.Result, error) {
	for i := len(m.results) - 1; i >= 0; i-- {
		if m.results[i].RespondentID == respondentID {
			r := m.results[i]
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockResultRepo) Get(_ context.Context, id string) (*store.Result, error) {
	for _, r := range m.results {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *mockResultRepo) List(_ context.Context, _ store.QueryOpts) ([]store.Result, error) {
	return m.results, nil
}

// mockProgressRepo implements store.ProgressRepo for progress tests.
type mockProgressRepo struct {
	events []store.ProgressRecord
	now    time.Time
}

func (m *mockProgressRepo) Append(_ context.Context, data store.ProgressEventData) error {
	m.events = append(m.events, store.ProgressRecord{
		Sequence:          int64(len(m.events) + 1),
		Timestamp:         m.now.Add(time.Duration(len(m.events)) * time.Minute),
		ProgressEventData: data,
	})
	return nil
}

func (m *mockProgressRepo) ByRespondent(_ context.Context, respondentID string) ([]store.ProgressRecord, error) {
	var out []store.ProgressRecord
	for _, e := range m.events {
		if e.RespondentID == respondentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockProgressRepo) All(_ context.Context) ([]store.ProgressRecord, error) {
	return m.events, nil
}
