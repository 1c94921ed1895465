// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/endevo/legacyready/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RespondentID applies equality check predicate on the "respondent_id" field. It's identical to RespondentIDEQ.
func RespondentID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldRespondentID, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldModuleID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldAction, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldLessonsCompleted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RespondentIDEQ applies the EQ predicate on the "respondent_id" field.
func RespondentIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldRespondentID, v))
}

// RespondentIDNEQ applies the NEQ predicate on the "respondent_id" field.
func RespondentIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldRespondentID, v))
}

// RespondentIDIn applies the In predicate on the "respondent_id" field.
func RespondentIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldRespondentID, vs...))
}

// RespondentIDNotIn applies the NotIn predicate on the "respondent_id" field.
func RespondentIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldRespondentID, vs...))
}

// RespondentIDGT applies the GT predicate on the "respondent_id" field.
func RespondentIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldRespondentID, v))
}

// RespondentIDGTE applies the GTE predicate on the "respondent_id" field.
func RespondentIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldRespondentID, v))
}

// RespondentIDLT applies the LT predicate on the "respondent_id" field.
func RespondentIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldRespondentID, v))
}

// RespondentIDLTE applies the LTE predicate on the "respondent_id" field.
func RespondentIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldRespondentID, v))
}

// RespondentIDContains applies the Contains predicate on the "respondent_id" field.
func RespondentIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldRespondentID, v))
}

// RespondentIDHasPrefix applies the HasPrefix predicate on the "respondent_id" field.
func RespondentIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldRespondentID, v))
}

// RespondentIDHasSuffix applies the HasSuffix predicate on the "respondent_id" field.
func RespondentIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldRespondentID, v))
}

// RespondentIDEqualFold applies the EqualFold predicate on the "respondent_id" field.
func RespondentIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldRespondentID, v))
}

// RespondentIDContainsFold applies the ContainsFold predicate on the "respondent_id" field.
func RespondentIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldRespondentID, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldAction, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldLessonsCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.NotPredicates(p))
}
