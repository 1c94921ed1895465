// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ProgressEvent is the predicate function for progressevent builders.
type ProgressEvent func(*sql.Selector)
