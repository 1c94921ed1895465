package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/endevo/legacyready/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recordingEventRepo implements store.EventRepo, capturing appended events.
type recordingEventRepo struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}
func (r *recordingEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (r *recordingEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEvent, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}
func (r *recordingEventRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"reply":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	repo := &recordingEventRepo{}
	core, logs := observer.New(zap.InfoLevel)
	p := WithLogging(mock, repo, zap.New(core))

	ctx := WithPurpose(context.Background(), "coach")
	_, err := p.Generate(ctx, Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "how do I export?"}},
		Schema:   &Schema{Name: "coach-reply", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "mock" || ev.Purpose != "coach" || !ev.Success {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d, want 12/3", ev.InputTokens, ev.OutputTokens)
	}
	if ev.ResponseBody != `{"reply":"ok"}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
	for _, want := range []string{"[system]", "[user]", "how do I export?", "[schema: coach-reply]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Errorf("request body missing %q", want)
		}
	}

	if logs.FilterMessage("llm request").Len() != 1 {
		t.Errorf("expected one info log line, got %v", logs.All())
	}
}

func TestLoggingProvider_RecordsFailureAndSurvivesRepoError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	repo := &recordingEventRepo{err: errors.New("disk full")}
	core, logs := observer.New(zap.InfoLevel)
	p := WithLogging(mock, repo, zap.New(core))

	_, err := p.Generate(context.Background(), Request{})
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected provider error, got %v", err)
	}
	if repo.events[0].Success || repo.events[0].ErrorMessage != "boom" {
		t.Errorf("unexpected event: %+v", repo.events[0])
	}
	if repo.events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", repo.events[0].Purpose)
	}
	if logs.FilterMessage("failed to record LLM request event").Len() != 1 {
		t.Error("expected repo failure to be logged")
	}
}

func TestLoggingProvider_NilSinks(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ProviderName(p) != "mock" {
		t.Errorf("name = %q, want mock", ProviderName(p))
	}
}
