// Code generated by ent, DO NOT EDIT.

package session

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tarsy-ai/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// AlertType applies equality check predicate on the "alert_type" field. It's identical to AlertTypeEQ.
func AlertType(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAlertType, v))
}

// RunbookURL applies equality check predicate on the "runbook_url" field. It's identical to RunbookURLEQ.
func RunbookURL(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRunbookURL, v))
}

// Runbook applies equality check predicate on the "runbook" field. It's identical to RunbookEQ.
func Runbook(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRunbook, v))
}

// ChainID applies equality check predicate on the "chain_id" field. It's identical to ChainIDEQ.
func ChainID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldChainID, v))
}

// CreatedAtUs applies equality check predicate on the "created_at_us" field. It's identical to CreatedAtUsEQ.
func CreatedAtUs(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAtUs, v))
}

// StartedAtUs applies equality check predicate on the "started_at_us" field. It's identical to StartedAtUsEQ.
func StartedAtUs(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAtUs, v))
}

// CompletedAtUs applies equality check predicate on the "completed_at_us" field. It's identical to CompletedAtUsEQ.
func CompletedAtUs(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAtUs, v))
}

// FinalAnalysis applies equality check predicate on the "final_analysis" field. It's identical to FinalAnalysisEQ.
func FinalAnalysis(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisSummary applies equality check predicate on the "final_analysis_summary" field. It's identical to FinalAnalysisSummaryEQ.
func FinalAnalysisSummary(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalAnalysisSummary, v))
}

// CurrentStageIndex applies equality check predicate on the "current_stage_index" field. It's identical to CurrentStageIndexEQ.
func CurrentStageIndex(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentStageIndex, v))
}

// CurrentStageExecutionID applies equality check predicate on the "current_stage_execution_id" field. It's identical to CurrentStageExecutionIDEQ.
func CurrentStageExecutionID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentStageExecutionID, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAuthor, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPodID, v))
}

// SlackMessageFingerprint applies equality check predicate on the "slack_message_fingerprint" field. It's identical to SlackMessageFingerprintEQ.
func SlackMessageFingerprint(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSlackMessageFingerprint, v))
}

// LastInteractionAtUs applies equality check predicate on the "last_interaction_at_us" field. It's identical to LastInteractionAtUsEQ.
func LastInteractionAtUs(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastInteractionAtUs, v))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAlertType, vs...))
}

// AlertTypeGT applies the GT predicate on the "alert_type" field.
func AlertTypeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAlertType, v))
}

// AlertTypeGTE applies the GTE predicate on the "alert_type" field.
func AlertTypeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAlertType, v))
}

// AlertTypeLT applies the LT predicate on the "alert_type" field.
func AlertTypeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAlertType, v))
}

// AlertTypeLTE applies the LTE predicate on the "alert_type" field.
func AlertTypeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAlertType, v))
}

// AlertTypeContains applies the Contains predicate on the "alert_type" field.
func AlertTypeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAlertType, v))
}

// AlertTypeHasPrefix applies the HasPrefix predicate on the "alert_type" field.
func AlertTypeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAlertType, v))
}

// AlertTypeHasSuffix applies the HasSuffix predicate on the "alert_type" field.
func AlertTypeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAlertType, v))
}

// AlertTypeEqualFold applies the EqualFold predicate on the "alert_type" field.
func AlertTypeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAlertType, v))
}

// AlertTypeContainsFold applies the ContainsFold predicate on the "alert_type" field.
func AlertTypeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAlertType, v))
}

// RunbookURLEQ applies the EQ predicate on the "runbook_url" field.
func RunbookURLEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRunbookURL, v))
}

// RunbookURLNEQ applies the NEQ predicate on the "runbook_url" field.
func RunbookURLNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldRunbookURL, v))
}

// RunbookURLIn applies the In predicate on the "runbook_url" field.
func RunbookURLIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldRunbookURL, vs...))
}

// RunbookURLNotIn applies the NotIn predicate on the "runbook_url" field.
func RunbookURLNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldRunbookURL, vs...))
}

// RunbookURLGT applies the GT predicate on the "runbook_url" field.
func RunbookURLGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldRunbookURL, v))
}

// RunbookURLGTE applies the GTE predicate on the "runbook_url" field.
func RunbookURLGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldRunbookURL, v))
}

// RunbookURLLT applies the LT predicate on the "runbook_url" field.
func RunbookURLLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldRunbookURL, v))
}

// RunbookURLLTE applies the LTE predicate on the "runbook_url" field.
func RunbookURLLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldRunbookURL, v))
}

// RunbookURLContains applies the Contains predicate on the "runbook_url" field.
func RunbookURLContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldRunbookURL, v))
}

// RunbookURLHasPrefix applies the HasPrefix predicate on the "runbook_url" field.
func RunbookURLHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldRunbookURL, v))
}

// RunbookURLHasSuffix applies the HasSuffix predicate on the "runbook_url" field.
func RunbookURLHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldRunbookURL, v))
}

// RunbookURLIsNil applies the IsNil predicate on the "runbook_url" field.
func RunbookURLIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRunbookURL))
}

// RunbookURLNotNil applies the NotNil predicate on the "runbook_url" field.
func RunbookURLNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRunbookURL))
}

// RunbookURLEqualFold applies the EqualFold predicate on the "runbook_url" field.
func RunbookURLEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldRunbookURL, v))
}

// RunbookURLContainsFold applies the ContainsFold predicate on the "runbook_url" field.
func RunbookURLContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldRunbookURL, v))
}

// RunbookEQ applies the EQ predicate on the "runbook" field.
func RunbookEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRunbook, v))
}

// RunbookNEQ applies the NEQ predicate on the "runbook" field.
func RunbookNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldRunbook, v))
}

// RunbookIn applies the In predicate on the "runbook" field.
func RunbookIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldRunbook, vs...))
}

// RunbookNotIn applies the NotIn predicate on the "runbook" field.
func RunbookNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldRunbook, vs...))
}

// RunbookGT applies the GT predicate on the "runbook" field.
func RunbookGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldRunbook, v))
}

// RunbookGTE applies the GTE predicate on the "runbook" field.
func RunbookGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldRunbook, v))
}

// RunbookLT applies the LT predicate on the "runbook" field.
func RunbookLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldRunbook, v))
}

// RunbookLTE applies the LTE predicate on the "runbook" field.
func RunbookLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldRunbook, v))
}

// RunbookContains applies the Contains predicate on the "runbook" field.
func RunbookContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldRunbook, v))
}

// RunbookHasPrefix applies the HasPrefix predicate on the "runbook" field.
func RunbookHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldRunbook, v))
}

// RunbookHasSuffix applies the HasSuffix predicate on the "runbook" field.
func RunbookHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldRunbook, v))
}

// RunbookIsNil applies the IsNil predicate on the "runbook" field.
func RunbookIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRunbook))
}

// RunbookNotNil applies the NotNil predicate on the "runbook" field.
func RunbookNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRunbook))
}

// RunbookEqualFold applies the EqualFold predicate on the "runbook" field.
func RunbookEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldRunbook, v))
}

// RunbookContainsFold applies the ContainsFold predicate on the "runbook" field.
func RunbookContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldRunbook, v))
}

// ChainIDEQ applies the EQ predicate on the "chain_id" field.
func ChainIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldChainID, v))
}

// ChainIDNEQ applies the NEQ predicate on the "chain_id" field.
func ChainIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldChainID, v))
}

// ChainIDIn applies the In predicate on the "chain_id" field.
func ChainIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldChainID, vs...))
}

// ChainIDNotIn applies the NotIn predicate on the "chain_id" field.
func ChainIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldChainID, vs...))
}

// ChainIDGT applies the GT predicate on the "chain_id" field.
func ChainIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldChainID, v))
}

// ChainIDGTE applies the GTE predicate on the "chain_id" field.
func ChainIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldChainID, v))
}

// ChainIDLT applies the LT predicate on the "chain_id" field.
func ChainIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldChainID, v))
}

// ChainIDLTE applies the LTE predicate on the "chain_id" field.
func ChainIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldChainID, v))
}

// ChainIDContains applies the Contains predicate on the "chain_id" field.
func ChainIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldChainID, v))
}

// ChainIDHasPrefix applies the HasPrefix predicate on the "chain_id" field.
func ChainIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldChainID, v))
}

// ChainIDHasSuffix applies the HasSuffix predicate on the "chain_id" field.
func ChainIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldChainID, v))
}

// ChainIDEqualFold applies the EqualFold predicate on the "chain_id" field.
func ChainIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldChainID, v))
}

// ChainIDContainsFold applies the ContainsFold predicate on the "chain_id" field.
func ChainIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldChainID, v))
}

// ChainConfigIsNil applies the IsNil predicate on the "chain_config" field.
func ChainConfigIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldChainConfig))
}

// ChainConfigNotNil applies the NotNil predicate on the "chain_config" field.
func ChainConfigNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldChainConfig))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtUsEQ applies the EQ predicate on the "created_at_us" field.
func CreatedAtUsEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAtUs, v))
}

// CreatedAtUsNEQ applies the NEQ predicate on the "created_at_us" field.
func CreatedAtUsNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAtUs, v))
}

// CreatedAtUsIn applies the In predicate on the "created_at_us" field.
func CreatedAtUsIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAtUs, vs...))
}

// CreatedAtUsNotIn applies the NotIn predicate on the "created_at_us" field.
func CreatedAtUsNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAtUs, vs...))
}

// CreatedAtUsGT applies the GT predicate on the "created_at_us" field.
func CreatedAtUsGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAtUs, v))
}

// CreatedAtUsGTE applies the GTE predicate on the "created_at_us" field.
func CreatedAtUsGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAtUs, v))
}

// CreatedAtUsLT applies the LT predicate on the "created_at_us" field.
func CreatedAtUsLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAtUs, v))
}

// CreatedAtUsLTE applies the LTE predicate on the "created_at_us" field.
func CreatedAtUsLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAtUs, v))
}

// StartedAtUsEQ applies the EQ predicate on the "started_at_us" field.
func StartedAtUsEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAtUs, v))
}

// StartedAtUsNEQ applies the NEQ predicate on the "started_at_us" field.
func StartedAtUsNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAtUs, v))
}

// StartedAtUsIn applies the In predicate on the "started_at_us" field.
func StartedAtUsIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAtUs, vs...))
}

// StartedAtUsNotIn applies the NotIn predicate on the "started_at_us" field.
func StartedAtUsNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAtUs, vs...))
}

// StartedAtUsGT applies the GT predicate on the "started_at_us" field.
func StartedAtUsGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAtUs, v))
}

// StartedAtUsGTE applies the GTE predicate on the "started_at_us" field.
func StartedAtUsGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAtUs, v))
}

// StartedAtUsLT applies the LT predicate on the "started_at_us" field.
func StartedAtUsLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAtUs, v))
}

// StartedAtUsLTE applies the LTE predicate on the "started_at_us" field.
func StartedAtUsLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAtUs, v))
}

// StartedAtUsIsNil applies the IsNil predicate on the "started_at_us" field.
func StartedAtUsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldStartedAtUs))
}

// StartedAtUsNotNil applies the NotNil predicate on the "started_at_us" field.
func StartedAtUsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldStartedAtUs))
}

// CompletedAtUsEQ applies the EQ predicate on the "completed_at_us" field.
func CompletedAtUsEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAtUs, v))
}

// CompletedAtUsNEQ applies the NEQ predicate on the "completed_at_us" field.
func CompletedAtUsNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAtUs, v))
}

// CompletedAtUsIn applies the In predicate on the "completed_at_us" field.
func CompletedAtUsIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAtUs, vs...))
}

// CompletedAtUsNotIn applies the NotIn predicate on the "completed_at_us" field.
func CompletedAtUsNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAtUs, vs...))
}

// CompletedAtUsGT applies the GT predicate on the "completed_at_us" field.
func CompletedAtUsGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAtUs, v))
}

// CompletedAtUsGTE applies the GTE predicate on the "completed_at_us" field.
func CompletedAtUsGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAtUs, v))
}

// CompletedAtUsLT applies the LT predicate on the "completed_at_us" field.
func CompletedAtUsLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAtUs, v))
}

// CompletedAtUsLTE applies the LTE predicate on the "completed_at_us" field.
func CompletedAtUsLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAtUs, v))
}

// CompletedAtUsIsNil applies the IsNil predicate on the "completed_at_us" field.
func CompletedAtUsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAtUs))
}

// CompletedAtUsNotNil applies the NotNil predicate on the "completed_at_us" field.
func CompletedAtUsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAtUs))
}

// FinalAnalysisEQ applies the EQ predicate on the "final_analysis" field.
func FinalAnalysisEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisNEQ applies the NEQ predicate on the "final_analysis" field.
func FinalAnalysisNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinalAnalysis, v))
}

// FinalAnalysisIn applies the In predicate on the "final_analysis" field.
func FinalAnalysisIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinalAnalysis, vs...))
}

// FinalAnalysisNotIn applies the NotIn predicate on the "final_analysis" field.
func FinalAnalysisNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinalAnalysis, vs...))
}

// FinalAnalysisGT applies the GT predicate on the "final_analysis" field.
func FinalAnalysisGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFinalAnalysis, v))
}

// FinalAnalysisGTE applies the GTE predicate on the "final_analysis" field.
func FinalAnalysisGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFinalAnalysis, v))
}

// FinalAnalysisLT applies the LT predicate on the "final_analysis" field.
func FinalAnalysisLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFinalAnalysis, v))
}

// FinalAnalysisLTE applies the LTE predicate on the "final_analysis" field.
func FinalAnalysisLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFinalAnalysis, v))
}

// FinalAnalysisContains applies the Contains predicate on the "final_analysis" field.
func FinalAnalysisContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldFinalAnalysis, v))
}

// FinalAnalysisHasPrefix applies the HasPrefix predicate on the "final_analysis" field.
func FinalAnalysisHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldFinalAnalysis, v))
}

// FinalAnalysisHasSuffix applies the HasSuffix predicate on the "final_analysis" field.
func FinalAnalysisHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldFinalAnalysis, v))
}

// FinalAnalysisIsNil applies the IsNil predicate on the "final_analysis" field.
func FinalAnalysisIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFinalAnalysis))
}

// FinalAnalysisNotNil applies the NotNil predicate on the "final_analysis" field.
func FinalAnalysisNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFinalAnalysis))
}

// FinalAnalysisEqualFold applies the EqualFold predicate on the "final_analysis" field.
func FinalAnalysisEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldFinalAnalysis, v))
}

// FinalAnalysisContainsFold applies the ContainsFold predicate on the "final_analysis" field.
func FinalAnalysisContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldFinalAnalysis, v))
}

// FinalAnalysisSummaryEQ applies the EQ predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryNEQ applies the NEQ predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryIn applies the In predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFinalAnalysisSummary, vs...))
}

// FinalAnalysisSummaryNotIn applies the NotIn predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFinalAnalysisSummary, vs...))
}

// FinalAnalysisSummaryGT applies the GT predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryGTE applies the GTE predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryLT applies the LT predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryLTE applies the LTE predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryContains applies the Contains predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryHasPrefix applies the HasPrefix predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryHasSuffix applies the HasSuffix predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryIsNil applies the IsNil predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFinalAnalysisSummary))
}

// FinalAnalysisSummaryNotNil applies the NotNil predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFinalAnalysisSummary))
}

// FinalAnalysisSummaryEqualFold applies the EqualFold predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldFinalAnalysisSummary, v))
}

// FinalAnalysisSummaryContainsFold applies the ContainsFold predicate on the "final_analysis_summary" field.
func FinalAnalysisSummaryContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldFinalAnalysisSummary, v))
}

// CurrentStageIndexEQ applies the EQ predicate on the "current_stage_index" field.
func CurrentStageIndexEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentStageIndex, v))
}

// CurrentStageIndexNEQ applies the NEQ predicate on the "current_stage_index" field.
func CurrentStageIndexNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCurrentStageIndex, v))
}

// CurrentStageIndexIn applies the In predicate on the "current_stage_index" field.
func CurrentStageIndexIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCurrentStageIndex, vs...))
}

// CurrentStageIndexNotIn applies the NotIn predicate on the "current_stage_index" field.
func CurrentStageIndexNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCurrentStageIndex, vs...))
}

// CurrentStageIndexGT applies the GT predicate on the "current_stage_index" field.
func CurrentStageIndexGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCurrentStageIndex, v))
}

// CurrentStageIndexGTE applies the GTE predicate on the "current_stage_index" field.
func CurrentStageIndexGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCurrentStageIndex, v))
}

// CurrentStageIndexLT applies the LT predicate on the "current_stage_index" field.
func CurrentStageIndexLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCurrentStageIndex, v))
}

// CurrentStageIndexLTE applies the LTE predicate on the "current_stage_index" field.
func CurrentStageIndexLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCurrentStageIndex, v))
}

// CurrentStageIndexIsNil applies the IsNil predicate on the "current_stage_index" field.
func CurrentStageIndexIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCurrentStageIndex))
}

// CurrentStageIndexNotNil applies the NotNil predicate on the "current_stage_index" field.
func CurrentStageIndexNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCurrentStageIndex))
}

// CurrentStageExecutionIDEQ applies the EQ predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDNEQ applies the NEQ predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDIn applies the In predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCurrentStageExecutionID, vs...))
}

// CurrentStageExecutionIDNotIn applies the NotIn predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCurrentStageExecutionID, vs...))
}

// CurrentStageExecutionIDGT applies the GT predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDGTE applies the GTE predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDLT applies the LT predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDLTE applies the LTE predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDContains applies the Contains predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDHasPrefix applies the HasPrefix predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDHasSuffix applies the HasSuffix predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDIsNil applies the IsNil predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCurrentStageExecutionID))
}

// CurrentStageExecutionIDNotNil applies the NotNil predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCurrentStageExecutionID))
}

// CurrentStageExecutionIDEqualFold applies the EqualFold predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldCurrentStageExecutionID, v))
}

// CurrentStageExecutionIDContainsFold applies the ContainsFold predicate on the "current_stage_execution_id" field.
func CurrentStageExecutionIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldCurrentStageExecutionID, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorIsNil applies the IsNil predicate on the "author" field.
func AuthorIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldAuthor))
}

// AuthorNotNil applies the NotNil predicate on the "author" field.
func AuthorNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldAuthor))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldAuthor, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPodID, v))
}

// SlackMessageFingerprintEQ applies the EQ predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintNEQ applies the NEQ predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintIn applies the In predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSlackMessageFingerprint, vs...))
}

// SlackMessageFingerprintNotIn applies the NotIn predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSlackMessageFingerprint, vs...))
}

// SlackMessageFingerprintGT applies the GT predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintGTE applies the GTE predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintLT applies the LT predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintLTE applies the LTE predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintContains applies the Contains predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintHasPrefix applies the HasPrefix predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintHasSuffix applies the HasSuffix predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintIsNil applies the IsNil predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldSlackMessageFingerprint))
}

// SlackMessageFingerprintNotNil applies the NotNil predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldSlackMessageFingerprint))
}

// SlackMessageFingerprintEqualFold applies the EqualFold predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSlackMessageFingerprint, v))
}

// SlackMessageFingerprintContainsFold applies the ContainsFold predicate on the "slack_message_fingerprint" field.
func SlackMessageFingerprintContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSlackMessageFingerprint, v))
}

// LastInteractionAtUsEQ applies the EQ predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastInteractionAtUs, v))
}

// LastInteractionAtUsNEQ applies the NEQ predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastInteractionAtUs, v))
}

// LastInteractionAtUsIn applies the In predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastInteractionAtUs, vs...))
}

// LastInteractionAtUsNotIn applies the NotIn predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastInteractionAtUs, vs...))
}

// LastInteractionAtUsGT applies the GT predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastInteractionAtUs, v))
}

// LastInteractionAtUsGTE applies the GTE predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastInteractionAtUs, v))
}

// LastInteractionAtUsLT applies the LT predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastInteractionAtUs, v))
}

// LastInteractionAtUsLTE applies the LTE predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastInteractionAtUs, v))
}

// LastInteractionAtUsIsNil applies the IsNil predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastInteractionAtUs))
}

// LastInteractionAtUsNotNil applies the NotNil predicate on the "last_interaction_at_us" field.
func LastInteractionAtUsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastInteractionAtUs))
}

// HasStageExecutions applies the HasEdge predicate on the "stage_executions" edge.
func HasStageExecutions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageExecutionsTable, StageExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageExecutionsWith applies the HasEdge predicate on the "stage_executions" edge with a given conditions (other predicates).
func HasStageExecutionsWith(preds ...predicate.StageExecution) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newStageExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLlmInteractions applies the HasEdge predicate on the "llm_interactions" edge.
func HasLlmInteractions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LlmInteractionsTable, LlmInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLlmInteractionsWith applies the HasEdge predicate on the "llm_interactions" edge with a given conditions (other predicates).
func HasLlmInteractionsWith(preds ...predicate.LLMInteraction) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newLlmInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMcpInteractions applies the HasEdge predicate on the "mcp_interactions" edge.
func HasMcpInteractions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, McpInteractionsTable, McpInteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMcpInteractionsWith applies the HasEdge predicate on the "mcp_interactions" edge with a given conditions (other predicates).
func HasMcpInteractionsWith(preds ...predicate.MCPInteraction) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMcpInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
