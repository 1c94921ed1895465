package progress

import (
	"testing"
	"time"

	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jane = directory.Employee{ID: "emp-1", FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Department: "Engineering", Role: directory.RoleEmployee}
	t0   = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
)

func ev(seq int64, module string, action store.ProgressAction, lessons int) store.ProgressRecord {
	return store.ProgressRecord{
		Sequence:  seq,
		Timestamp: t0.Add(time.Duration(seq) * time.Hour),
		ProgressEventData: store.ProgressEventData{
			RespondentID:     jane.ID,
			ModuleID:         module,
			Action:           action,
			LessonsCompleted: lessons,
		},
	}
}

func TestSummarize_NoResultAssignsCatalog(t *testing.T) {
	s := Summarize(jane, nil, nil)

	require.Len(t, s.Modules, 6)
	assert.Len(t, s.Assigned(), 6)
	assert.Equal(t, 0, s.Percent())
	assert.Equal(t, NotStarted, s.State())
	assert.Equal(t, 6, s.NotStarted)
	require.NotNil(t, s.Next())
	assert.Equal(t, "module-1", s.Next().Module.ID)
	assert.Nil(t, s.Current())
}

func TestSummarize_ReplaysEvents(t *testing.T) {
	result := &store.Result{RespondentID: jane.ID, Score: 80, Modules: []string{"module-1", "module-4", "module-6"}}
	events := []store.ProgressRecord{
		// Deliberately out of order; replay sorts by sequence.
		ev(3, "module-4", store.ActionComplete, 7),
		ev(1, "module-1", store.ActionStart, 0),
		ev(2, "module-1", store.ActionLesson, 2),
		ev(4, "module-2", store.ActionStart, 0),
		ev(5, "module-99", store.ActionStart, 0),
	}

	s := Summarize(jane, result, events)

	ids := make([]string, 0, len(s.Modules))
	for _, m := range s.Modules {
		ids = append(ids, m.Module.ID)
	}
	assert.Equal(t, []string{"module-1", "module-4", "module-6", "module-2"}, ids)

	m1 := s.Module("module-1")
	assert.Equal(t, InProgress, m1.Status)
	assert.Equal(t, 2, m1.LessonsCompleted)
	assert.Equal(t, 40, m1.Percent())
	assert.Equal(t, t0.Add(time.Hour), m1.StartedAt)

	m4 := s.Module("module-4")
	assert.Equal(t, Completed, m4.Status)
	assert.Equal(t, 100, m4.Percent())

	assert.False(t, s.Module("module-2").Assigned)
	assert.Nil(t, s.Module("module-99"))

	assert.Equal(t, 1, s.Completed)
	assert.Equal(t, 2, s.InProgress)
	assert.Equal(t, 1, s.NotStarted)
	assert.InDelta(t, 1.0, s.HoursInvested, 1e-9)
	assert.Equal(t, 33, s.Percent())
	assert.Equal(t, InProgress, s.State())

	assert.Equal(t, "module-6", s.Next().Module.ID)
	assert.Equal(t, "module-2", s.Current().Module.ID)
}

func TestSummarize_LessonsClampAndCompletionIsFinal(t *testing.T) {
	result := &store.Result{Modules: []string{"module-6"}}
	events := []store.ProgressRecord{
		ev(1, "module-6", store.ActionLesson, 40),
		ev(2, "module-6", store.ActionComplete, 4),
		ev(3, "module-6", store.ActionStart, 0),
	}

	s := Summarize(jane, result, events)
	m := s.Module("module-6")
	assert.Equal(t, Completed, m.Status)
	assert.Equal(t, 4, m.LessonsCompleted)
	assert.Equal(t, t0.Add(2*time.Hour), m.CompletedAt)
	assert.Equal(t, 100, s.Percent())
	assert.Equal(t, Completed, s.State())
	assert.Nil(t, s.Next())
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Not started", NotStarted.Label())
	assert.Equal(t, "In progress", InProgress.Label())
	assert.Equal(t, "Completed", Completed.Label())
}
