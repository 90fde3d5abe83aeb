package session

import (
	"strings"

	"github.com/borealis-data/borealis/pkg/schema"
)

// snowflakeType maps a schema field type to a Snowflake column type.
func snowflakeType(t schema.FieldType) string {
	switch t {
	case schema.FieldTypeInteger:
		return "NUMBER(38,0)"
	case schema.FieldTypeDouble:
		return "DOUBLE"
	case schema.FieldTypeDecimal:
		return "NUMBER(38,9)"
	case schema.FieldTypeBoolean:
		return "BOOLEAN"
	case schema.FieldTypeDate:
		return "DATE"
	case schema.FieldTypeTimestamp:
		return "TIMESTAMP_NTZ"
	default:
		return "VARCHAR"
	}
}

// fieldTypeFor maps a database type name reported by the driver back
// to a schema field type. Unrecognized names degrade to string, which
// is always scannable.
func fieldTypeFor(dbType string) schema.FieldType {
	switch strings.ToUpper(dbType) {
	case "FIXED", "NUMBER", "INT", "INTEGER", "BIGINT":
		return schema.FieldTypeInteger
	case "REAL", "FLOAT", "DOUBLE":
		return schema.FieldTypeDouble
	case "DECIMAL", "NUMERIC":
		return schema.FieldTypeDecimal
	case "BOOLEAN":
		return schema.FieldTypeBoolean
	case "DATE":
		return schema.FieldTypeDate
	case "TIMESTAMP_NTZ", "TIMESTAMP_LTZ", "TIMESTAMP_TZ", "DATETIME":
		return schema.FieldTypeTimestamp
	default:
		return schema.FieldTypeString
	}
}

// buildCreateTableSQL builds the CREATE TABLE statement for a schema.
func buildCreateTableSQL(name string, sc *schema.Schema, temporary bool) string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if temporary {
		b.WriteString("TEMPORARY ")
	}
	b.WriteString("TABLE IF NOT EXISTS ")
	b.WriteString(name)
	b.WriteString(" (")
	for i, f := range sc.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte(' ')
		b.WriteString(snowflakeType(f.Type))
		if !f.Nullable {
			b.WriteString(" NOT NULL")
		}
	}
	b.WriteString(")")
	return b.String()
}

// buildInsertSQL builds a positional INSERT statement for a schema.
func buildInsertSQL(name string, sc *schema.Schema) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(name)
	b.WriteString(" (")
	b.WriteString(strings.Join(sc.FieldNames(), ", "))
	b.WriteString(") VALUES (")
	for i := range sc.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('?')
	}
	b.WriteString(")")
	return b.String()
}
