// Code generated by ent, DO NOT EDIT.

package warning

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the warning type in the database.
	Label = "warning"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "warning_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldServerID holds the string denoting the server_id field in the database.
	FieldServerID = "server_id"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCreatedAtUs holds the string denoting the created_at_us field in the database.
	FieldCreatedAtUs = "created_at_us"
	// Table holds the table name of the warning in the database.
	Table = "warnings"
)

// Columns holds all SQL columns for warning fields.
var Columns = []string{
	FieldID,
	FieldCategory,
	FieldServerID,
	FieldMessage,
	FieldDetails,
	FieldCreatedAtUs,
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

// OrderOption defines the ordering options for the Warning queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByServerID orders the results by the server_id field.
func ByServerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServerID, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByCreatedAtUs orders the results by the created_at_us field.
func ByCreatedAtUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAtUs, opts...).ToFunc()
}
