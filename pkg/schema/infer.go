package schema

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
	"github.com/borealis-data/borealis/pkg/record"
)

// Infer builds a schema descriptor from a single sample record. Field
// names are the record's keys passed through the mapper's encode
// direction, in sorted key order so repeated runs over the same record
// produce the same schema.
//
// A one-record sample cannot establish a non-null guarantee, so every
// inferred field is nullable. Values whose type is outside the modeled
// scalar set fall back to the string type rather than failing; Derive
// is the strict counterpart.
func Infer(sample record.Record, m keymap.Mapper) (*Schema, error) {
	if len(sample) == 0 {
		return nil, errors.New(errors.ErrorTypeEmptyInput, "no sample record to infer schema from")
	}

	fields := make([]Field, 0, len(sample))
	for _, key := range sample.Keys() {
		fields = append(fields, Field{
			Name:     m.Encode(key),
			Type:     inferType(sample[key]),
			Nullable: true,
		})
	}

	return &Schema{Fields: fields}, nil
}

// inferType maps a runtime value to a field type. The case order is the
// dispatch precedence: integers before floats before decimals, then
// booleans and temporals, with string as the fallback for anything
// unmodeled (including nil).
func inferType(value interface{}) FieldType {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return FieldTypeInteger
	case float32, float64:
		return FieldTypeDouble
	case decimal.Decimal, *decimal.Decimal:
		return FieldTypeDecimal
	case bool:
		return FieldTypeBoolean
	case civil.Date:
		return FieldTypeDate
	case time.Time:
		return FieldTypeTimestamp
	default:
		return FieldTypeString
	}
}
