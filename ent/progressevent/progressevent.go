// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressevent type in the database.
	Label = "progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRespondentID holds the string denoting the respondent_id field in the database.
	FieldRespondentID = "respondent_id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldLessonsCompleted holds the string denoting the lessons_completed field in the database.
	FieldLessonsCompleted = "lessons_completed"
	// Table holds the table name of the progressevent in the database.
	Table = "progress_events"
)

// Columns holds all SQL columns for progressevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRespondentID,
	FieldModuleID,
	FieldAction,
	FieldLessonsCompleted,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RespondentIDValidator is a validator for the "respondent_id" field. It is called by the builders before save.
	RespondentIDValidator func(string) error
	// ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	ModuleIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultLessonsCompleted holds the default value on creation for the "lessons_completed" field.
	DefaultLessonsCompleted int
	// LessonsCompletedValidator is a validator for the "lessons_completed" field. It is called by the builders before save.
	LessonsCompletedValidator func(int) error
)

// OrderOption defines the ordering options for the ProgressEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRespondentID orders the results by the respondent_id field.
func ByRespondentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondentID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByLessonsCompleted orders the results by the lessons_completed field.
func ByLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonsCompleted, opts...).ToFunc()
}
