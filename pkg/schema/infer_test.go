package schema

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
	"github.com/borealis-data/borealis/pkg/record"
)

func TestInferEmptySample(t *testing.T) {
	_, err := Infer(nil, keymap.Upper)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmptyInput))

	_, err = Infer(record.Record{}, keymap.Upper)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeEmptyInput))
}

func TestInferTypePrecedence(t *testing.T) {
	sample := record.Record{
		"count":   int64(3),
		"ratio":   1.5,
		"price":   decimal.NewFromInt(42),
		"active":  true,
		"day":     civil.Date{Year: 2024, Month: time.March, Day: 1},
		"seen_at": time.Now(),
		"name":    "ada",
		"token":   record.Symbol("north"),
		"blob":    struct{}{},
	}

	sc, err := Infer(sample, keymap.Upper)
	require.NoError(t, err)

	byName := map[string]Field{}
	for _, f := range sc.Fields {
		byName[f.Name] = f
	}

	assert.Equal(t, FieldTypeInteger, byName["COUNT"].Type)
	assert.Equal(t, FieldTypeDouble, byName["RATIO"].Type)
	assert.Equal(t, FieldTypeDecimal, byName["PRICE"].Type)
	assert.Equal(t, FieldTypeBoolean, byName["ACTIVE"].Type)
	assert.Equal(t, FieldTypeDate, byName["DAY"].Type)
	assert.Equal(t, FieldTypeTimestamp, byName["SEEN_AT"].Type)
	assert.Equal(t, FieldTypeString, byName["NAME"].Type)
	// Symbols and unmodeled values fall back to string.
	assert.Equal(t, FieldTypeString, byName["TOKEN"].Type)
	assert.Equal(t, FieldTypeString, byName["BLOB"].Type)
}

func TestInferAllFieldsNullable(t *testing.T) {
	sc, err := Infer(record.Record{"id": int64(1), "name": "ada"}, keymap.Upper)
	require.NoError(t, err)

	for _, f := range sc.Fields {
		assert.True(t, f.Nullable, "field %s must be nullable", f.Name)
	}
}

func TestInferUsesSuppliedEncode(t *testing.T) {
	// An off-beat encode that no built-in convention would produce.
	m := keymap.New("prefixed",
		func(key string) string { return "C_" + key },
		func(name string) string { return name[2:] },
	)

	sc, err := Infer(record.Record{"dept": "eng"}, m)
	require.NoError(t, err)
	require.Len(t, sc.Fields, 1)
	assert.Equal(t, "C_dept", sc.Fields[0].Name)
}

func TestInferDeterministicOrder(t *testing.T) {
	sample := record.Record{"b": 1, "a": 2, "c": 3}

	first, err := Infer(sample, keymap.Identity)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Infer(sample, keymap.Identity)
		require.NoError(t, err)
		assert.Equal(t, first.FieldNames(), again.FieldNames())
	}
	assert.Equal(t, []string{"a", "b", "c"}, first.FieldNames())
}
