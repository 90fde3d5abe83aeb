// Package convert translates between application records and
// schema-positioned storage rows.
//
// The two directions are deliberately asymmetric around optional
// fields: a key that is absent from a record becomes an explicit nil
// slot in the row, and a nil slot coming back from storage is omitted
// from the output record rather than surfacing as a nil-valued key.
// Round-tripping a record therefore reproduces its exact key set.
//
// Conversions are pure: they take immutable inputs, return fresh
// outputs, and perform no I/O. Batch variants apply the element
// conversion independently per element, preserving order.
package convert

import (
	"strings"

	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
	"github.com/borealis-data/borealis/pkg/record"
	"github.com/borealis-data/borealis/pkg/schema"
)

// RecordToRow converts one application record to a storage row
// positioned by the schema. For each schema field the record value
// whose encoded key matches the field name case-insensitively fills
// that slot; absent keys leave a nil slot. Extra record keys with no
// schema field are ignored, which lets callers pass records richer
// than a fixed table schema.
func RecordToRow(rec record.Record, sc *schema.Schema, m keymap.Mapper) record.Row {
	encoded := make(map[string]interface{}, len(rec))
	for key, value := range rec {
		encoded[strings.ToUpper(m.Encode(key))] = value
	}

	row := make(record.Row, len(sc.Fields))
	for i, f := range sc.Fields {
		value, ok := encoded[strings.ToUpper(f.Name)]
		if !ok {
			continue
		}
		row[i] = coerce(value)
	}
	return row
}

// RowToRecord converts one storage row back to an application record.
// Non-nil slots become decode(field name) entries; nil slots contribute
// no key at all.
func RowToRecord(row record.Row, sc *schema.Schema, m keymap.Mapper) (record.Record, error) {
	if len(row) != len(sc.Fields) {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"row has %d slots, schema has %d fields", len(row), len(sc.Fields))
	}

	rec := make(record.Record, len(row))
	for i, value := range row {
		if value == nil {
			continue
		}
		rec[m.Decode(sc.Fields[i].Name)] = value
	}
	return rec, nil
}

// RecordsToRows converts a record slice element-wise, preserving order.
func RecordsToRows(recs []record.Record, sc *schema.Schema, m keymap.Mapper) []record.Row {
	rows := make([]record.Row, len(recs))
	for i, rec := range recs {
		rows[i] = RecordToRow(rec, sc, m)
	}
	return rows
}

// RowsToRecords converts a row slice element-wise, preserving order.
// The conversion fails as a whole on the first malformed row.
func RowsToRecords(rows []record.Row, sc *schema.Schema, m keymap.Mapper) ([]record.Record, error) {
	recs := make([]record.Record, len(rows))
	for i, row := range rows {
		rec, err := RowToRecord(row, sc, m)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "converting rows to records")
		}
		recs[i] = rec
	}
	return recs, nil
}

// coerce rewrites scalars into storage-friendly primitives. Symbols
// lose their token identity and travel as plain strings; every other
// scalar passes through unchanged.
func coerce(value interface{}) interface{} {
	if sym, ok := value.(record.Symbol); ok {
		return string(sym)
	}
	return value
}
