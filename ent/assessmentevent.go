// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/endevo/legacyready/ent/assessmentevent"
)

// AssessmentEvent is the model entity for the AssessmentEvent schema.
type AssessmentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying this result
	ResultID string `json:"result_id,omitempty"`
	// Employee who took the assessment
	RespondentID string `json:"respondent_id,omitempty"`
	// Readiness score
	Score int `json:"score,omitempty"`
	// Assigned module IDs in order
	Modules []string `json:"modules,omitempty"`
	// Question ID to selected option value
	Answers map[string]string `json:"answers,omitempty"`
	// Question bank the answers were scored against
	BankVersion  string `json:"bank_version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AssessmentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldModules, assessmentevent.FieldAnswers:
			values[i] = new([]byte)
		case assessmentevent.FieldID, assessmentevent.FieldSequence, assessmentevent.FieldScore:
			values[i] = new(sql.NullInt64)
		case assessmentevent.FieldResultID, assessmentevent.FieldRespondentID, assessmentevent.FieldBankVersion:
			values[i] = new(sql.NullString)
		case assessmentevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AssessmentEvent fields.
func (_m *AssessmentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assessmentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case assessmentevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case assessmentevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case assessmentevent.FieldResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value.Valid {
				_m.ResultID = value.String
			}
		case assessmentevent.FieldRespondentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field respondent_id", values[i])
			} else if value.Valid {
				_m.RespondentID = value.String
			}
		case assessmentevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case assessmentevent.FieldModules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Modules); err != nil {
					return fmt.Errorf("unmarshal field modules: %w", err)
				}
			}
		case assessmentevent.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case assessmentevent.FieldBankVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank_version", values[i])
			} else if value.Valid {
				_m.BankVersion = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AssessmentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AssessmentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AssessmentEvent.
// Note that you need to call AssessmentEvent.Unwrap() before calling this method if this AssessmentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AssessmentEvent) Update() *AssessmentEventUpdateOne {
	return NewAssessmentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AssessmentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AssessmentEvent) Unwrap() *AssessmentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AssessmentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AssessmentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AssessmentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("result_id=")
	builder.WriteString(_m.ResultID)
	builder.WriteString(", ")
	builder.WriteString("respondent_id=")
	builder.WriteString(_m.RespondentID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("modules=")
	builder.WriteString(fmt.Sprintf("%v", _m.Modules))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("bank_version=")
	builder.WriteString(_m.BankVersion)
	builder.WriteByte(')')
	return builder.String()
}

// AssessmentEvents is a parsable slice of AssessmentEvent.
type AssessmentEvents []*AssessmentEvent
