// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "respondent_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "modules", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "bank_version", Type: field.TypeString, Default: ""},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_respondent_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "respondent_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_respondent_id_module_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[3], ProgressEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		LlmRequestEventsTable,
		ProgressEventsTable,
	}
)

func init() {
}
