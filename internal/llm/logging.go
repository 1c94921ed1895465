package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/endevo/legacyready/internal/store"
	"go.uber.org/zap"
)

// LoggingProvider records every request as an LLM event and a log line.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
	logger *zap.Logger
}

// WithLogging wraps p. Either sink may be nil.
func WithLogging(p Provider, events store.EventRepo, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, events: events, logger: logger}
}

func (l *LoggingProvider) Name() string    { return ProviderName(l.inner) }
func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Int64("latency_ms", ev.LatencyMs),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if cost := LookupCost(ev.Model); cost != nil && resp != nil {
		fields = append(fields, zap.Float64("cost_usd", cost.Cost(ev.InputTokens, ev.OutputTokens)))
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("llm request", fields...)
	}

	// Event storage failures are logged, never returned.
	if l.events != nil {
		if recErr := l.events.AppendLLMRequest(ctx, ev); recErr != nil {
			l.logger.Error("failed to record LLM request event", zap.Error(recErr))
		}
	}
	return resp, err
}

// transcript renders req as the plain text stored with the event.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
