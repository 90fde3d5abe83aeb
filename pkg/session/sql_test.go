package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
	"github.com/borealis-data/borealis/pkg/schema"
)

func testSchema() *schema.Schema {
	return &schema.Schema{Fields: []schema.Field{
		{Name: "ID", Type: schema.FieldTypeInteger, Nullable: false},
		{Name: "FIRST_NAME", Type: schema.FieldTypeString, Nullable: false},
		{Name: "AGE", Type: schema.FieldTypeInteger, Nullable: true},
		{Name: "HIRED_ON", Type: schema.FieldTypeDate, Nullable: true},
	}}
}

func TestBuildCreateTableSQL(t *testing.T) {
	got := buildCreateTableSQL("EMPLOYEES", testSchema(), true)

	want := "CREATE TEMPORARY TABLE IF NOT EXISTS EMPLOYEES (" +
		"ID NUMBER(38,0) NOT NULL, " +
		"FIRST_NAME VARCHAR NOT NULL, " +
		"AGE NUMBER(38,0), " +
		"HIRED_ON DATE)"
	assert.Equal(t, want, got)
}

func TestBuildCreateTableSQLPermanent(t *testing.T) {
	got := buildCreateTableSQL("EMPLOYEES", testSchema(), false)
	assert.NotContains(t, got, "TEMPORARY")
}

func TestBuildInsertSQL(t *testing.T) {
	got := buildInsertSQL("EMPLOYEES", testSchema())

	want := "INSERT INTO EMPLOYEES (ID, FIRST_NAME, AGE, HIRED_ON) VALUES (?, ?, ?, ?)"
	assert.Equal(t, want, got)
}

func TestSnowflakeType(t *testing.T) {
	cases := map[schema.FieldType]string{
		schema.FieldTypeInteger:   "NUMBER(38,0)",
		schema.FieldTypeDouble:    "DOUBLE",
		schema.FieldTypeDecimal:   "NUMBER(38,9)",
		schema.FieldTypeBoolean:   "BOOLEAN",
		schema.FieldTypeString:    "VARCHAR",
		schema.FieldTypeDate:      "DATE",
		schema.FieldTypeTimestamp: "TIMESTAMP_NTZ",
	}
	for ft, want := range cases {
		assert.Equal(t, want, snowflakeType(ft), string(ft))
	}
}

func TestFieldTypeFor(t *testing.T) {
	assert.Equal(t, schema.FieldTypeInteger, fieldTypeFor("FIXED"))
	assert.Equal(t, schema.FieldTypeDouble, fieldTypeFor("REAL"))
	assert.Equal(t, schema.FieldTypeBoolean, fieldTypeFor("BOOLEAN"))
	assert.Equal(t, schema.FieldTypeDate, fieldTypeFor("DATE"))
	assert.Equal(t, schema.FieldTypeTimestamp, fieldTypeFor("TIMESTAMP_NTZ"))
	assert.Equal(t, schema.FieldTypeString, fieldTypeFor("TEXT"))
	assert.Equal(t, schema.FieldTypeString, fieldTypeFor("VARIANT"))
}

func TestMapperByName(t *testing.T) {
	m, err := mapperByName("camel-upper")
	require.NoError(t, err)
	assert.True(t, m.Equal(keymap.CamelUpper))

	m, err = mapperByName("identity")
	require.NoError(t, err)
	assert.True(t, m.Equal(keymap.Identity))

	_, err = mapperByName("kebab")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}
