package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/llm"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		question string
		want     string
		ok       bool
	}{
		{"How do I navigate this thing?", "navigation", true},
		{"what does competency MEAN", "terms", true},
		{"Where is my PROGRESS", "progress", true},
		{"how many lessons are there", "modules", true},
		{"can I download a certificate", "export", true},
		{"what is my score", "assessment", true},
		{"export my progress", "progress", true}, // table order wins
		{"hello", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			topic, ok := Match(tt.question)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, topic.Key)
		})
	}
}

func TestAsk_KeywordOnly(t *testing.T) {
	c := New(nil, DefaultConfig(), nil)
	assert.False(t, c.UsesLLM())

	r, err := c.Ask(context.Background(), "how do I export?", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceKeyword, r.Source)
	assert.Equal(t, "export", r.Topic)

	r, err = c.Ask(context.Background(), "hi there", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceMenu, r.Source)
	assert.Equal(t, MenuReply, r.Text)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	c := New(nil, DefaultConfig(), nil)
	_, err := c.Ask(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestAsk_LLMReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"reply":"Start with the documents module.","topic":"modules","suggestions":["What is in module 2?"]}`),
	})
	c := New(mock, DefaultConfig(), nil)

	score := 42
	r, err := c.Ask(context.Background(), "where should I begin?", &Learner{
		Name:    "Jane Doe",
		Score:   &score,
		Modules: []string{"Understanding Your Legacy"},
		Percent: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, r.Source)
	assert.Equal(t, "Start with the documents module.", r.Text)
	assert.Equal(t, "modules", r.Topic)
	assert.Equal(t, []string{"What is in module 2?"}, r.Suggestions)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, "coach-reply", req.Schema.Name)
	assert.Contains(t, req.System, "Readiness score: 42/100")
	assert.Contains(t, req.System, "Jane Doe")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
}

func TestAsk_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("offline")})
	core, logs := observer.New(zap.WarnLevel)
	c := New(mock, DefaultConfig(), zap.New(core))

	r, err := c.Ask(context.Background(), "what does competency mean", nil)
	require.NoError(t, err)
	assert.Equal(t, SourceKeyword, r.Source)
	assert.Equal(t, "terms", r.Topic)
	assert.Equal(t, 1, logs.Len())
}

func TestAsk_FallsBackOnMalformedReply(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"just text"`)},
		llm.MockResponse{Content: json.RawMessage(`{"reply":"  ","topic":"other","suggestions":[]}`)},
	)
	c := New(mock, DefaultConfig(), nil)

	for i := 0; i < 2; i++ {
		r, err := c.Ask(context.Background(), "hello", nil)
		require.NoError(t, err)
		assert.Equal(t, SourceMenu, r.Source)
	}
}

func TestAsk_SendsTrimmedHistory(t *testing.T) {
	reply := llm.MockResponse{Content: json.RawMessage(`{"reply":"ok","topic":"other","suggestions":[]}`)}
	mock := llm.NewMockProvider(reply, reply, reply)
	cfg := DefaultConfig()
	cfg.History = 2
	c := New(mock, cfg, nil)

	for _, q := range []string{"first", "second", "third"} {
		_, err := c.Ask(context.Background(), q, nil)
		require.NoError(t, err)
	}

	require.Equal(t, 3, mock.CallCount())
	assert.Len(t, mock.Calls[0].Messages, 1)
	assert.Len(t, mock.Calls[1].Messages, 3)
	last := mock.Calls[2].Messages
	require.Len(t, last, 3)
	assert.Equal(t, "second", last[0].Content)
	assert.Equal(t, llm.RoleAssistant, last[1].Role)
	assert.Equal(t, "third", last[2].Content)

	c.Reset()
	mock.AddResponse(reply)
	_, err := c.Ask(context.Background(), "fourth", nil)
	require.NoError(t, err)
	assert.Len(t, mock.Calls[3].Messages, 1)
}

func TestReplySchema(t *testing.T) {
	props := ReplySchema.Definition["properties"].(map[string]any)
	enum := props["topic"].(map[string]any)["enum"].([]any)

	var keys []string
	for _, e := range enum {
		keys = append(keys, e.(string))
	}
	assert.Equal(t, append(TopicKeys(), TopicOther), keys)
	assert.True(t, strings.HasPrefix(Greeting, "Hi!"))
}

func TestLearnerFor(t *testing.T) {
	assert.Nil(t, LearnerFor(nil))

	emp := directory.Employee{ID: "emp-1", FirstName: "Jane", LastName: "Doe"}
	sum := progress.Summarize(emp, &store.Result{Score: 62, Modules: []string{"module-1", "module-3"}}, nil)

	l := LearnerFor(sum)
	require.NotNil(t, l)
	assert.Equal(t, "Jane Doe", l.Name)
	require.NotNil(t, l.Score)
	assert.Equal(t, 62, *l.Score)
	assert.Equal(t, []string{"Understanding Your Legacy", "Digital Assets & Online Accounts"}, l.Modules)
	assert.Equal(t, 0, l.Percent)

	prompt := buildSystemPrompt(l)
	assert.Contains(t, prompt, "Readiness score: 62/100")
	assert.Contains(t, prompt, "Digital Assets & Online Accounts")
}
