// Package schema defines the storage-engine schema descriptor and the
// two ways of producing one: inferring it from a sample record, or
// deriving it from a Go struct type.
//
// A Schema is an ordered list of fields; the order is significant
// because it defines positional correspondence with storage rows. Field
// names in a Schema are always storage names, produced by the key
// mapper's encode direction at construction time.
package schema

import "strings"

// FieldType represents the scalar type of a schema field
type FieldType string

const (
	FieldTypeInteger   FieldType = "integer"
	FieldTypeDouble    FieldType = "double"
	FieldTypeDecimal   FieldType = "decimal"
	FieldTypeBoolean   FieldType = "boolean"
	FieldTypeString    FieldType = "string"
	FieldTypeDate      FieldType = "date"
	FieldTypeTimestamp FieldType = "timestamp"
)

// Field is a single schema field. Name is a storage name.
type Field struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Nullable bool      `json:"nullable"`
}

// Schema is an ordered field list. Treated as immutable once built.
type Schema struct {
	Fields []Field `json:"fields"`
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.Fields)
}

// FieldNames returns the storage names of all fields in schema order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Find returns the field whose name matches the given storage name
// case-insensitively, along with its position. The boolean is false
// when no field matches.
func (s *Schema) Find(name string) (Field, int, bool) {
	for i, f := range s.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, i, true
		}
	}
	return Field{}, -1, false
}
