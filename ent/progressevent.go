// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/endevo/legacyready/ent/progressevent"
)

// ProgressEvent is the model entity for the ProgressEvent schema.
type ProgressEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sequence holds the value of the "sequence" field.
	Sequence int64 `json:"sequence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// RespondentID holds the value of the "respondent_id" field.
	RespondentID string `json:"respondent_id,omitempty"`
	// ModuleID holds the value of the "module_id" field.
	ModuleID string `json:"module_id,omitempty"`
	// start, lesson or complete
	Action string `json:"action,omitempty"`
	// Lessons done after this event
	LessonsCompleted int `json:"lessons_completed,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressevent.FieldID, progressevent.FieldSequence, progressevent.FieldLessonsCompleted:
			values[i] = new(sql.NullInt64)
		case progressevent.FieldRespondentID, progressevent.FieldModuleID, progressevent.FieldAction:
			values[i] = new(sql.NullString)
		case progressevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressEvent fields.
func (_m *ProgressEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case progressevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case progressevent.FieldRespondentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field respondent_id", values[i])
			} else if value.Valid {
				_m.RespondentID = value.String
			}
		case progressevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case progressevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case progressevent.FieldLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lessons_completed", values[i])
			} else if value.Valid {
				_m.LessonsCompleted = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressEvent.
// Note that you need to call ProgressEvent.Unwrap() before calling this method if this ProgressEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressEvent) Update() *ProgressEventUpdateOne {
	return NewProgressEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressEvent) Unwrap() *ProgressEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("respondent_id=")
	builder.WriteString(_m.RespondentID)
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonsCompleted))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressEvents is a parsable slice of ProgressEvent.
type ProgressEvents []*ProgressEvent
