package schema

import (
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/borealis-data/borealis/pkg/errors"
	"github.com/borealis-data/borealis/pkg/keymap"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	dateType    = reflect.TypeOf(civil.Date{})
	decimalType = reflect.TypeOf(decimal.Decimal{})
)

// Derive builds a schema descriptor from a Go struct type. The type is
// the application-level description of a flat record: each exported
// field declares one schema field, in declaration order.
//
// Pointer-typed fields are the one place required-vs-optional semantics
// enter the system: they derive as nullable, everything else as
// non-null. The application key is the `db` tag when present, otherwise
// the Go field name; either way the storage name is produced by the
// mapper's encode direction.
//
// A non-struct type fails with an invalid-schema error. Field types
// outside the modeled scalar set (nested structs, slices, maps, ...)
// fail with an unsupported-type error rather than coercing to string,
// because a silently degraded schema loses fidelity without warning.
func Derive(rt reflect.Type, m keymap.Mapper) (*Schema, error) {
	if rt == nil {
		return nil, errors.New(errors.ErrorTypeInvalidSchema, "nil type")
	}
	if rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, errors.Newf(errors.ErrorTypeInvalidSchema,
			"expected a flat struct type, got %s", rt.Kind())
	}

	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous {
			return nil, errors.Newf(errors.ErrorTypeUnsupportedType,
				"embedded field %s: nested record types are not supported", sf.Name)
		}

		ft := sf.Type
		nullable := false
		if ft.Kind() == reflect.Ptr {
			nullable = true
			ft = ft.Elem()
		}

		fieldType, err := scalarType(ft)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeUnsupportedType,
				"field "+sf.Name)
		}

		key := sf.Name
		if tag, ok := sf.Tag.Lookup("db"); ok && tag != "" {
			key = tag
		}

		fields = append(fields, Field{
			Name:     m.Encode(key),
			Type:     fieldType,
			Nullable: nullable,
		})
	}

	return &Schema{Fields: fields}, nil
}

// scalarType maps a Go type to a schema field type, failing loudly for
// anything outside the modeled scalar set.
func scalarType(rt reflect.Type) (FieldType, error) {
	switch rt {
	case timeType:
		return FieldTypeTimestamp, nil
	case dateType:
		return FieldTypeDate, nil
	case decimalType:
		return FieldTypeDecimal, nil
	}

	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return FieldTypeInteger, nil
	case reflect.Float32, reflect.Float64:
		return FieldTypeDouble, nil
	case reflect.Bool:
		return FieldTypeBoolean, nil
	case reflect.String:
		return FieldTypeString, nil
	default:
		return "", errors.Newf(errors.ErrorTypeUnsupportedType,
			"type %s is not a supported scalar", rt)
	}
}
