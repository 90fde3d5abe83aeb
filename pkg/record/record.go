// Package record defines the application-side record model and the
// storage-side row model that the conversion layer translates between.
//
// A Record is an unordered mapping from application keys to scalar
// values. Absence of a key, not a nil value, is how a record expresses
// "this optional field has no value". A Row is the remote engine's
// ordered counterpart: one slot per schema field, with nil filling the
// slots whose field is absent from the originating record.
package record

import "sort"

// Record is an unordered application-side mapping of keys to scalar values.
//
// Supported scalar values are the Go integer and float families, bool,
// string, Symbol, decimal.Decimal, civil.Date and time.Time. Nested
// structures are not modeled.
type Record map[string]interface{}

// Row is a schema-positioned storage row. Slot i corresponds to field i
// of the schema the row was built against; nil marks an absent value.
type Row []interface{}

// Symbol is a symbolic token (keyword, enum value, interned identifier).
// Symbols are coerced to their plain string form when written to storage.
type Symbol string

// String returns the plain string form of the symbol.
func (s Symbol) String() string {
	return string(s)
}

// Keys returns the record's keys in sorted order. Go map iteration
// order is randomized, so sorting is what makes key walks reproducible.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
