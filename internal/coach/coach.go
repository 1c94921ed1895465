// Package coach answers learner questions, with a language model when one is
// configured and a fixed keyword table otherwise.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/endevo/legacyready/internal/llm"
	"go.uber.org/zap"
)

// ErrEmptyQuestion is returned for blank questions.
var ErrEmptyQuestion = errors.New("question is empty")

// Source records where a reply came from.
type Source string

const (
	SourceLLM     Source = "llm"
	SourceKeyword Source = "keyword"
	SourceMenu    Source = "menu"
)

// Reply is the coach's answer.
type Reply struct {
	Text        string
	Topic       string
	Source      Source
	Suggestions []string
}

// Config holds coach generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// History is the number of prior messages sent with each question.
	History int
}

// DefaultConfig returns defaults for coach replies.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.4,
		History:     6,
	}
}

// Coach holds a single conversation. It is safe for concurrent use.
type Coach struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger

	mu      sync.Mutex
	history []llm.Message
}

// New creates a Coach. A nil provider limits it to keyword replies.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) *Coach {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{provider: provider, cfg: cfg, logger: logger}
}

// UsesLLM reports whether the coach has a model behind it.
func (c *Coach) UsesLLM() bool {
	return c.provider != nil
}

// KeywordReply answers from the topic table alone.
func KeywordReply(question string) Reply {
	if t, ok := Match(question); ok {
		return Reply{Text: t.Answer, Topic: t.Key, Source: SourceKeyword}
	}
	return Reply{Text: MenuReply, Source: SourceMenu}
}

// Ask answers question. Model failures fall back to the keyword table and
// are logged rather than returned.
func (c *Coach) Ask(ctx context.Context, question string, learner *Learner) (Reply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Reply{}, ErrEmptyQuestion
	}

	reply := KeywordReply(question)
	if c.provider != nil {
		r, err := c.generate(ctx, question, learner)
		if err != nil {
			c.logger.Warn("coach falling back to keyword reply", zap.Error(err))
		} else {
			reply = r
		}
	}

	c.remember(question, reply.Text)
	return reply, nil
}

type replyOutput struct {
	Reply       string   `json:"reply"`
	Topic       string   `json:"topic"`
	Suggestions []string `json:"suggestions"`
}

func (c *Coach) generate(ctx context.Context, question string, learner *Learner) (Reply, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeCoach)

	c.mu.Lock()
	messages := append([]llm.Message(nil), c.history...)
	c.mu.Unlock()
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: question})

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      buildSystemPrompt(learner),
		Messages:    messages,
		Schema:      ReplySchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("coach generation: %w", err)
	}

	var out replyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Reply{}, fmt.Errorf("parse coach response: %w", err)
	}
	if strings.TrimSpace(out.Reply) == "" {
		return Reply{}, fmt.Errorf("parse coach response: empty reply")
	}

	return Reply{
		Text:        out.Reply,
		Topic:       out.Topic,
		Source:      SourceLLM,
		Suggestions: out.Suggestions,
	}, nil
}

func (c *Coach) remember(question, answer string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history,
		llm.Message{Role: llm.RoleUser, Content: question},
		llm.Message{Role: llm.RoleAssistant, Content: answer},
	)
	if n := c.cfg.History; n >= 0 && len(c.history) > n {
		c.history = append([]llm.Message(nil), c.history[len(c.history)-n:]...)
	}
}

// Reset clears the conversation history.
func (c *Coach) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}
