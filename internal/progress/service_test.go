package progress

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *mockResultRepo, *mockProgressRepo) {
	t.Helper()
	results := &mockResultRepo{}
	prog := &mockProgressRepo{now: t0}
	svc := NewService(directory.Seed(), results, prog, nil)
	svc.now = func() time.Time { return t0 }
	return svc, results, prog
}

func TestService_StartIsIdempotent(t *testing.T) {
	svc, _, prog := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx, "emp-1", "module-1"))
	require.NoError(t, svc.Start(ctx, "emp-1", "module-1"))
	assert.Len(t, prog.events, 1)

	sum, err := svc.Summary(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, InProgress, sum.Module("module-1").Status)
}

func TestService_UnknownInputs(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	assert.Error(t, svc.Start(ctx, "emp-1", "module-42"))

	err := svc.Start(ctx, "emp-404", "module-1")
	assert.True(t, errors.Is(err, directory.ErrNotFound))
}

func TestService_CompleteLessonFinishesModule(t *testing.T) {
	svc, _, prog := newTestService(t)
	ctx := context.Background()

	var mp *ModuleProgress
	var err error
	for i := 0; i < 4; i++ {
		mp, err = svc.CompleteLesson(ctx, "emp-1", "module-6")
		require.NoError(t, err)
	}
	assert.Equal(t, Completed, mp.Status)
	assert.Equal(t, 4, mp.LessonsCompleted)

	// start + 3 lessons + complete
	require.Len(t, prog.events, 5)
	assert.Equal(t, store.ActionStart, prog.events[0].Action)
	assert.Equal(t, store.ActionComplete, prog.events[4].Action)

	_, err = svc.CompleteLesson(ctx, "emp-1", "module-6")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.ErrorIs(t, svc.Complete(ctx, "emp-1", "module-6"), ErrAlreadyCompleted)
	assert.ErrorIs(t, svc.Start(ctx, "emp-1", "module-6"), ErrAlreadyCompleted)
}

func TestService_Certificates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	certs, err := svc.Certificates(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, certs)

	require.NoError(t, svc.Complete(ctx, "emp-1", "module-2"))
	certs, err = svc.Certificates(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, certs, 1)

	c := certs[0]
	assert.Equal(t, "Certificate_Important_Documents_Information.txt", c.Filename())

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "CERTIFICATE OF COMPLETION")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, `"Important Documents & Information"`)
	assert.Contains(t, out, "March 1, 2026")
}

func TestService_OrgReport(t *testing.T) {
	svc, results, _ := newTestService(t)
	ctx := context.Background()

	// Jane: plan of one module, completed.
	require.NoError(t, results.Save(ctx, &store.Result{ID: "r1", RespondentID: "emp-1", Score: 85, Modules: []string{"module-1"}}))
	require.NoError(t, svc.Complete(ctx, "emp-1", "module-1"))

	// Bob: low score, remedial plan, one module started.
	require.NoError(t, results.Save(ctx, &store.Result{ID: "r2", RespondentID: "emp-2", Score: 20,
		Modules: []string{"module-1", "module-2", "module-3", "module-4", "module-5", "module-6"}}))
	require.NoError(t, svc.Start(ctx, "emp-2", "module-1"))

	// Sarah: mid score, nothing started. Alex: never assessed.
	require.NoError(t, results.Save(ctx, &store.Result{ID: "r3", RespondentID: "emp-3", Score: 55, Modules: []string{"module-1", "module-3"}}))

	r, err := svc.OrgReport(ctx, "techcorp")
	require.NoError(t, err)

	// HR admins are excluded.
	require.Len(t, r.Employees, 4)
	assert.Equal(t, 1, r.Completed)
	assert.Equal(t, 1, r.InProgress)
	assert.Equal(t, 2, r.NotStarted)
	assert.Equal(t, 25, r.AvgPercent)
	assert.Equal(t, 1, r.TotalCompletions)

	counts := map[string]int{}
	for _, b := range r.Scores {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, map[string]int{"0-39": 1, "40-69": 1, "70-100": 1}, counts)
	assert.Equal(t, 1, r.NotTaken)

	require.Len(t, r.Departments, 4)
	assert.Equal(t, "Engineering", r.Departments[0].Department)
	assert.Equal(t, 100, r.Departments[0].AvgPercent)

	require.Len(t, r.Modules, 6)
	assert.Equal(t, 1, r.Modules[0].Completed)
	assert.Equal(t, 25, r.Modules[0].Rate)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "ORGANIZATION PROGRESS REPORT")
	assert.Contains(t, out, "TechCorp Solutions")
	assert.Contains(t, out, "Engineering: 100% avg progress (1 employees)")
	assert.Contains(t, out, "Jane Doe (Engineering)")
	assert.True(t, strings.Contains(out, "Not taken: 1"))
}

func TestService_OrgReportUnknownOrg(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.OrgReport(context.Background(), "nope")
	assert.ErrorIs(t, err, directory.ErrNotFound)
}

func TestSummary_WriteText(t *testing.T) {
	svc, results, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, results.Save(ctx, &store.Result{RespondentID: "emp-1", Score: 72, Modules: []string{"module-1", "module-2"}}))
	_, err := svc.CompleteLesson(ctx, "emp-1", "module-1")
	require.NoError(t, err)

	sum, err := svc.Summary(ctx, "emp-1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sum.WriteText(&buf, t0))
	out := buf.String()
	assert.Contains(t, out, "Assessment:     72/100")
	assert.Contains(t, out, "Progress: 20% (1/5 lessons)")
	assert.Contains(t, out, "Continue with: Understanding Your Legacy")
	assert.Contains(t, out, "No modules completed yet.")
}

type failingProgressRepo struct {
	mockProgressRepo
}

func (failingProgressRepo) ByRespondent(context.Context, string) ([]store.ProgressRecord, error) {
	return nil, errors.New("database is locked")
}

func TestService_OrgReportPropagatesErrors(t *testing.T) {
	svc := NewService(directory.Seed(), &mockResultRepo{}, &failingProgressRepo{}, nil)
	_, err := svc.OrgReport(context.Background(), "org-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
