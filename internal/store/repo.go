package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit        int       // max results (0 = unlimited)
	After        int64     // sequence > After
	Before       int64     // sequence < Before
	From         time.Time // timestamp >= From
	To           time.Time // timestamp <= To
	RespondentID string    // exact match when set
}

// Result is a persisted assessment outcome.
type Result struct {
	ID           string
	Sequence     int64
	Timestamp    time.Time
	RespondentID string
	Score        int
	Modules      []string
	Answers      map[string]string
	BankVersion  string
}

// ResultRepo stores assessment results.
type ResultRepo interface {
	// Save appends a result. ID, Sequence and Timestamp are filled in.
	Save(ctx context.Context, r *Result) error

	// Latest returns the newest result for a respondent, or nil if none.
	Latest(ctx context.Context, respondentID string) (*Result, error)

	// Get returns the result with the given ID, or nil if none.
	Get(ctx context.Context, id string) (*Result, error)

	// List returns results newest first.
	List(ctx context.Context, opts QueryOpts) ([]Result, error)
}

// ProgressAction is the kind of a progress event.
type ProgressAction string

const (
	ActionStart    ProgressAction = "start"
	ActionLesson   ProgressAction = "lesson"
	ActionComplete ProgressAction = "complete"
)

// Valid reports whether a is a known action.
func (a ProgressAction) Valid() bool {
	switch a {
	case ActionStart, ActionLesson, ActionComplete:
		return true
	}
	return false
}

// ProgressEventData captures a single progress event.
type ProgressEventData struct {
	RespondentID     string
	ModuleID         string
	Action           ProgressAction
	LessonsCompleted int
}

// ProgressRecord is a stored progress event.
type ProgressRecord struct {
	Sequence  int64
	Timestamp time.Time
	ProgressEventData
}

// ProgressRepo stores module progress events.
type ProgressRepo interface {
	Append(ctx context.Context, data ProgressEventData) error

	// ByRespondent returns a respondent's events oldest first.
	ByRespondent(ctx context.Context, respondentID string) ([]ProgressRecord, error)

	// All returns every progress event oldest first.
	All(ctx context.Context) ([]ProgressRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM usage for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
