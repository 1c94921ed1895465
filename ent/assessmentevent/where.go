// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/endevo/legacyready/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldResultID, v))
}

// RespondentID applies equality check predicate on the "respondent_id" field. It's identical to RespondentIDEQ.
func RespondentID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRespondentID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldScore, v))
}

// BankVersion applies equality check predicate on the "bank_version" field. It's identical to BankVersionEQ.
func BankVersion(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBankVersion, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldResultID, vs...))
}

// ResultIDGT applies the GT predicate on the "result_id" field.
func ResultIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldResultID, v))
}

// ResultIDGTE applies the GTE predicate on the "result_id" field.
func ResultIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldResultID, v))
}

// ResultIDLT applies the LT predicate on the "result_id" field.
func ResultIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldResultID, v))
}

// ResultIDLTE applies the LTE predicate on the "result_id" field.
func ResultIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldResultID, v))
}

// ResultIDContains applies the Contains predicate on the "result_id" field.
func ResultIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldResultID, v))
}

// ResultIDHasPrefix applies the HasPrefix predicate on the "result_id" field.
func ResultIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldResultID, v))
}

// ResultIDHasSuffix applies the HasSuffix predicate on the "result_id" field.
func ResultIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldResultID, v))
}

// ResultIDEqualFold applies the EqualFold predicate on the "result_id" field.
func ResultIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldResultID, v))
}

// ResultIDContainsFold applies the ContainsFold predicate on the "result_id" field.
func ResultIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldResultID, v))
}

// RespondentIDEQ applies the EQ predicate on the "respondent_id" field.
func RespondentIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldRespondentID, v))
}

// RespondentIDNEQ applies the NEQ predicate on the "respondent_id" field.
func RespondentIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldRespondentID, v))
}

// RespondentIDIn applies the In predicate on the "respondent_id" field.
func RespondentIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldRespondentID, vs...))
}

// RespondentIDNotIn applies the NotIn predicate on the "respondent_id" field.
func RespondentIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldRespondentID, vs...))
}

// RespondentIDGT applies the GT predicate on the "respondent_id" field.
func RespondentIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldRespondentID, v))
}

// RespondentIDGTE applies the GTE predicate on the "respondent_id" field.
func RespondentIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldRespondentID, v))
}

// RespondentIDLT applies the LT predicate on the "respondent_id" field.
func RespondentIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldRespondentID, v))
}

// RespondentIDLTE applies the LTE predicate on the "respondent_id" field.
func RespondentIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldRespondentID, v))
}

// RespondentIDContains applies the Contains predicate on the "respondent_id" field.
func RespondentIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldRespondentID, v))
}

// RespondentIDHasPrefix applies the HasPrefix predicate on the "respondent_id" field.
func RespondentIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldRespondentID, v))
}

// RespondentIDHasSuffix applies the HasSuffix predicate on the "respondent_id" field.
func RespondentIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldRespondentID, v))
}

// RespondentIDEqualFold applies the EqualFold predicate on the "respondent_id" field.
func RespondentIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldRespondentID, v))
}

// RespondentIDContainsFold applies the ContainsFold predicate on the "respondent_id" field.
func RespondentIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldRespondentID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldScore, v))
}

// BankVersionEQ applies the EQ predicate on the "bank_version" field.
func BankVersionEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldBankVersion, v))
}

// BankVersionNEQ applies the NEQ predicate on the "bank_version" field.
func BankVersionNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldBankVersion, v))
}

// BankVersionIn applies the In predicate on the "bank_version" field.
func BankVersionIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldBankVersion, vs...))
}

// BankVersionNotIn applies the NotIn predicate on the "bank_version" field.
func BankVersionNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldBankVersion, vs...))
}

// BankVersionGT applies the GT predicate on the "bank_version" field.
func BankVersionGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldBankVersion, v))
}

// BankVersionGTE applies the GTE predicate on the "bank_version" field.
func BankVersionGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldBankVersion, v))
}

// BankVersionLT applies the LT predicate on the "bank_version" field.
func BankVersionLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldBankVersion, v))
}

// BankVersionLTE applies the LTE predicate on the "bank_version" field.
func BankVersionLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldBankVersion, v))
}

// BankVersionContains applies the Contains predicate on the "bank_version" field.
func BankVersionContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldBankVersion, v))
}

// BankVersionHasPrefix applies the HasPrefix predicate on the "bank_version" field.
func BankVersionHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldBankVersion, v))
}

// BankVersionHasSuffix applies the HasSuffix predicate on the "bank_version" field.
func BankVersionHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldBankVersion, v))
}

// BankVersionEqualFold applies the EqualFold predicate on the "bank_version" field.
func BankVersionEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldBankVersion, v))
}

// BankVersionContainsFold applies the ContainsFold predicate on the "bank_version" field.
func BankVersionContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldBankVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
