// Code generated by ent, DO NOT EDIT.

package warning

import (
	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-ai/tarsy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Warning {
	return predicate.Warning(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Warning {
	return predicate.Warning(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Warning {
	return predicate.Warning(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Warning {
	return predicate.Warning(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Warning {
	return predicate.Warning(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Warning {
	return predicate.Warning(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Warning {
	return predicate.Warning(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Warning {
	return predicate.Warning(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Warning {
	return predicate.Warning(sql.FieldContainsFold(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldCategory, v))
}

// ServerID applies equality check predicate on the "server_id" field. It's identical to ServerIDEQ.
func ServerID(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldServerID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldMessage, v))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldDetails, v))
}

// CreatedAtUs applies equality check predicate on the "created_at_us" field. It's identical to CreatedAtUsEQ.
func CreatedAtUs(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldCreatedAtUs, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContainsFold(FieldCategory, v))
}

// ServerIDEQ applies the EQ predicate on the "server_id" field.
func ServerIDEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldServerID, v))
}

// ServerIDNEQ applies the NEQ predicate on the "server_id" field.
func ServerIDNEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldNEQ(FieldServerID, v))
}

// ServerIDIn applies the In predicate on the "server_id" field.
func ServerIDIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldIn(FieldServerID, vs...))
}

// ServerIDNotIn applies the NotIn predicate on the "server_id" field.
func ServerIDNotIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldNotIn(FieldServerID, vs...))
}

// ServerIDGT applies the GT predicate on the "server_id" field.
func ServerIDGT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGT(FieldServerID, v))
}

// ServerIDGTE applies the GTE predicate on the "server_id" field.
func ServerIDGTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGTE(FieldServerID, v))
}

// ServerIDLT applies the LT predicate on the "server_id" field.
func ServerIDLT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLT(FieldServerID, v))
}

// ServerIDLTE applies the LTE predicate on the "server_id" field.
func ServerIDLTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLTE(FieldServerID, v))
}

// ServerIDContains applies the Contains predicate on the "server_id" field.
func ServerIDContains(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContains(FieldServerID, v))
}

// ServerIDHasPrefix applies the HasPrefix predicate on the "server_id" field.
func ServerIDHasPrefix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasPrefix(FieldServerID, v))
}

// ServerIDHasSuffix applies the HasSuffix predicate on the "server_id" field.
func ServerIDHasSuffix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasSuffix(FieldServerID, v))
}

// ServerIDIsNil applies the IsNil predicate on the "server_id" field.
func ServerIDIsNil() predicate.Warning {
	return predicate.Warning(sql.FieldIsNull(FieldServerID))
}

// ServerIDNotNil applies the NotNil predicate on the "server_id" field.
func ServerIDNotNil() predicate.Warning {
	return predicate.Warning(sql.FieldNotNull(FieldServerID))
}

// ServerIDEqualFold applies the EqualFold predicate on the "server_id" field.
func ServerIDEqualFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEqualFold(FieldServerID, v))
}

// ServerIDContainsFold applies the ContainsFold predicate on the "server_id" field.
func ServerIDContainsFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContainsFold(FieldServerID, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContainsFold(FieldMessage, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.Warning {
	return predicate.Warning(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.Warning {
	return predicate.Warning(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.Warning {
	return predicate.Warning(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.Warning {
	return predicate.Warning(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.Warning {
	return predicate.Warning(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.Warning {
	return predicate.Warning(sql.FieldNotNull(FieldDetails))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.Warning {
	return predicate.Warning(sql.FieldContainsFold(FieldDetails, v))
}

// CreatedAtUsEQ applies the EQ predicate on the "created_at_us" field.
func CreatedAtUsEQ(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldEQ(FieldCreatedAtUs, v))
}

// CreatedAtUsNEQ applies the NEQ predicate on the "created_at_us" field.
func CreatedAtUsNEQ(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldNEQ(FieldCreatedAtUs, v))
}

// CreatedAtUsIn applies the In predicate on the "created_at_us" field.
func CreatedAtUsIn(vs ...int64) predicate.Warning {
	return predicate.Warning(sql.FieldIn(FieldCreatedAtUs, vs...))
}

// CreatedAtUsNotIn applies the NotIn predicate on the "created_at_us" field.
func CreatedAtUsNotIn(vs ...int64) predicate.Warning {
	return predicate.Warning(sql.FieldNotIn(FieldCreatedAtUs, vs...))
}

// CreatedAtUsGT applies the GT predicate on the "created_at_us" field.
func CreatedAtUsGT(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldGT(FieldCreatedAtUs, v))
}

// CreatedAtUsGTE applies the GTE predicate on the "created_at_us" field.
func CreatedAtUsGTE(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldGTE(FieldCreatedAtUs, v))
}

// CreatedAtUsLT applies the LT predicate on the "created_at_us" field.
func CreatedAtUsLT(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldLT(FieldCreatedAtUs, v))
}

// CreatedAtUsLTE applies the LTE predicate on the "created_at_us" field.
func CreatedAtUsLTE(v int64) predicate.Warning {
	return predicate.Warning(sql.FieldLTE(FieldCreatedAtUs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Warning) predicate.Warning {
	return predicate.Warning(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Warning) predicate.Warning {
	return predicate.Warning(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Warning) predicate.Warning {
	return predicate.Warning(sql.NotPredicates(p))
}
