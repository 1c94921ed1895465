// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/endevo/legacyready/ent/assessmentevent"
	"github.com/endevo/legacyready/ent/llmrequestevent"
	"github.com/endevo/legacyready/ent/progressevent"
	"github.com/endevo/legacyready/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescResultID is the schema descriptor for result_id field.
	assessmenteventDescResultID := assessmenteventFields[0].Descriptor()
	// assessmentevent.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	assessmentevent.ResultIDValidator = assessmenteventDescResultID.Validators[0].(func(string) error)
	// assessmenteventDescRespondentID is the schema descriptor for respondent_id field.
	assessmenteventDescRespondentID := assessmenteventFields[1].Descriptor()
	// assessmentevent.RespondentIDValidator is a validator for the "respondent_id" field. It is called by the builders before save.
	assessmentevent.RespondentIDValidator = assessmenteventDescRespondentID.Validators[0].(func(string) error)
	// assessmenteventDescScore is the schema descriptor for score field.
	assessmenteventDescScore := assessmenteventFields[2].Descriptor()
	// assessmentevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	assessmentevent.ScoreValidator = assessmenteventDescScore.Validators[0].(func(int) error)
	// assessmenteventDescBankVersion is the schema descriptor for bank_version field.
	assessmenteventDescBankVersion := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultBankVersion holds the default value on creation for the bank_version field.
	assessmentevent.DefaultBankVersion = assessmenteventDescBankVersion.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescRespondentID is the schema descriptor for respondent_id field.
	progresseventDescRespondentID := progresseventFields[0].Descriptor()
	// progressevent.RespondentIDValidator is a validator for the "respondent_id" field. It is called by the builders before save.
	progressevent.RespondentIDValidator = progresseventDescRespondentID.Validators[0].(func(string) error)
	// progresseventDescModuleID is the schema descriptor for module_id field.
	progresseventDescModuleID := progresseventFields[1].Descriptor()
	// progressevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	progressevent.ModuleIDValidator = progresseventDescModuleID.Validators[0].(func(string) error)
	// progresseventDescAction is the schema descriptor for action field.
	progresseventDescAction := progresseventFields[2].Descriptor()
	// progressevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	progressevent.ActionValidator = progresseventDescAction.Validators[0].(func(string) error)
	// progresseventDescLessonsCompleted is the schema descriptor for lessons_completed field.
	progresseventDescLessonsCompleted := progresseventFields[3].Descriptor()
	// progressevent.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	progressevent.DefaultLessonsCompleted = progresseventDescLessonsCompleted.Default.(int)
	// progressevent.LessonsCompletedValidator is a validator for the "lessons_completed" field. It is called by the builders before save.
	progressevent.LessonsCompletedValidator = progresseventDescLessonsCompleted.Validators[0].(func(int) error)
}
