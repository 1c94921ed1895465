// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldRespondentID holds the string denoting the respondent_id field in the database.
	FieldRespondentID = "respondent_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldModules holds the string denoting the modules field in the database.
	FieldModules = "modules"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldBankVersion holds the string denoting the bank_version field in the database.
	FieldBankVersion = "bank_version"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldResultID,
	FieldRespondentID,
	FieldScore,
	FieldModules,
	FieldAnswers,
	FieldBankVersion,
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
	// ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	ResultIDValidator func(string) error
	// RespondentIDValidator is a validator for the "respondent_id" field. It is called by the builders before save.
	RespondentIDValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultBankVersion holds the default value on creation for the "bank_version" field.
	DefaultBankVersion string
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
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

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// ByRespondentID orders the results by the respondent_id field.
func ByRespondentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondentID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByBankVersion orders the results by the bank_version field.
func ByBankVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBankVersion, opts...).ToFunc()
}
