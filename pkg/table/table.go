// Package table exposes a remote table's columns through name-based
// lookup, keyed by application-side field keys.
//
// A Table is a read-only view: it wraps a live remote handle plus a key
// mapper and resolves application keys to column references on demand.
// Every resolve and every iteration re-reads the table's field list
// from the handle, so repeated calls always reflect the table's current
// remote state at the cost of a metadata round trip per call.
package table

import (
	"context"
	"fmt"

	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
)

// Column is a reference to one column of a remote table. Callers own a
// returned Column; the facade neither caches nor invalidates it.
type Column struct {
	Table string
	Name  string
}

// String returns the qualified column name.
func (c *Column) String() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}

// Handle is the narrow interface a remote table must satisfy.
type Handle interface {
	// Name identifies the table.
	Name() string
	// FieldNames returns the table's current storage-side field names
	// in schema order. Called on every resolve; implementations decide
	// whether that is a live round trip.
	FieldNames(ctx context.Context) ([]string, error)
	// ColumnRef produces a reference to the named column.
	ColumnRef(name string) *Column
}

// Pair is one (decoded application key, column reference) entry of the
// facade's iteration view.
type Pair struct {
	Key string
	Col *Column
}

// Table is the column-resolving facade over a remote table handle.
type Table struct {
	handle Handle
	mapper keymap.Mapper
}

// New wraps a remote table handle with a key mapper.
func New(h Handle, m keymap.Mapper) *Table {
	return &Table{handle: h, mapper: m}
}

// Col resolves an application key to a column reference, or nil when
// the table has no such column. Absence is an expected condition, not
// an error; the error return covers only handle failures.
func (t *Table) Col(ctx context.Context, key string) (*Column, error) {
	col, _, err := t.resolve(ctx, key)
	return col, err
}

// Lookup is the comma-ok form of Col. Both styles share one resolve
// path and cannot disagree.
func (t *Table) Lookup(ctx context.Context, key string) (*Column, bool, error) {
	return t.resolve(ctx, key)
}

// resolve encodes the key and checks exact membership in the live
// field-name list. No case folding happens here beyond whatever the
// mapper's encode itself does.
func (t *Table) resolve(ctx context.Context, key string) (*Column, bool, error) {
	names, err := t.handle.FieldNames(ctx)
	if err != nil {
		return nil, false, errors.Wrap(err, errors.ErrorTypeConnection, "reading table fields")
	}

	name := t.mapper.Encode(key)
	for _, n := range names {
		if n == name {
			return t.handle.ColumnRef(name), true, nil
		}
	}
	return nil, false, nil
}

// Len returns the number of fields in the table's current schema.
func (t *Table) Len(ctx context.Context) (int, error) {
	names, err := t.handle.FieldNames(ctx)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeConnection, "reading table fields")
	}
	return len(names), nil
}

// Pairs returns the (decoded key, column reference) sequence in schema
// field order. Keys and Cols derive from this sequence, so the three
// views stay mutually consistent.
func (t *Table) Pairs(ctx context.Context) ([]Pair, error) {
	names, err := t.handle.FieldNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConnection, "reading table fields")
	}

	pairs := make([]Pair, len(names))
	for i, name := range names {
		pairs[i] = Pair{
			Key: t.mapper.Decode(name),
			Col: t.handle.ColumnRef(name),
		}
	}
	return pairs, nil
}

// Keys returns the decoded application keys in schema field order.
func (t *Table) Keys(ctx context.Context) ([]string, error) {
	pairs, err := t.Pairs(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	return keys, nil
}

// Cols returns the column references in schema field order.
func (t *Table) Cols(ctx context.Context) ([]*Column, error) {
	pairs, err := t.Pairs(ctx)
	if err != nil {
		return nil, err
	}
	cols := make([]*Column, len(pairs))
	for i, p := range pairs {
		cols[i] = p.Col
	}
	return cols, nil
}

// Set is unsupported: the facade is a read-only view over a remote
// schema, and a silent no-op would hide the misuse.
func (t *Table) Set(key string, col *Column) error {
	return errors.New(errors.ErrorTypeUnsupportedOperation,
		"table facade is read-only: cannot set column").WithDetail("key", key)
}

// Delete is unsupported for the same reason as Set.
func (t *Table) Delete(key string) error {
	return errors.New(errors.ErrorTypeUnsupportedOperation,
		"table facade is read-only: cannot delete column").WithDetail("key", key)
}

// String describes the wrapped handle and mapping options, not the
// lazily resolved columns.
func (t *Table) String() string {
	return fmt.Sprintf("table{name=%s mapper=%s}", t.handle.Name(), t.mapper.Name())
}

// Equal reports whether two facades wrap the same handle with the same
// mapping options.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	return t.handle == other.handle && t.mapper.Equal(other.mapper)
}
