// Package keymap defines the key-mapping contract between application
// field keys and storage-engine column names.
//
// A Mapper carries a caller-supplied pair of mutually inverse functions:
// Encode translates an application key into a storage name, Decode
// translates a storage name back. Nothing in the conversion layer ever
// applies a casing rule of its own; every translation goes through
// exactly one of the two functions. The named conventions in this
// package (Identity, Upper, CamelUpper) are explicit configuration
// values selected at session or table construction, never consulted as
// a hidden fallback by the converters themselves.
package keymap

import "strings"

// EncodeFunc translates an application key into a storage name.
type EncodeFunc func(key string) string

// DecodeFunc translates a storage name into an application key.
type DecodeFunc func(name string) string

// Mapper is an encode/decode function pair. The two functions are
// expected to be inverses over the identifiers a schema actually uses;
// this is never validated globally, only relied on per call.
//
// The zero Mapper behaves as the identity mapping.
type Mapper struct {
	name   string
	encode EncodeFunc
	decode DecodeFunc
}

// New constructs a Mapper from an explicit encode/decode pair. The name
// identifies the convention in logs and equality checks; custom pairs
// should pick a distinct name.
func New(name string, encode EncodeFunc, decode DecodeFunc) Mapper {
	return Mapper{name: name, encode: encode, decode: decode}
}

// Encode translates an application key into a storage name.
func (m Mapper) Encode(key string) string {
	if m.encode == nil {
		return key
	}
	return m.encode(key)
}

// Decode translates a storage name into an application key.
func (m Mapper) Decode(name string) string {
	if m.decode == nil {
		return name
	}
	return m.decode(name)
}

// Name returns the convention name. The zero Mapper reports "identity".
func (m Mapper) Name() string {
	if m.name == "" && m.encode == nil && m.decode == nil {
		return "identity"
	}
	return m.name
}

// Equal reports whether two mappers carry the same named convention.
// Function values are not comparable in Go, so equality is by name.
func (m Mapper) Equal(other Mapper) bool {
	return m.Name() == other.Name()
}

// ByName resolves a built-in convention from its configuration name.
func ByName(name string) (Mapper, bool) {
	switch name {
	case "identity":
		return Identity, true
	case "upper":
		return Upper, true
	case "camel-upper":
		return CamelUpper, true
	default:
		return Mapper{}, false
	}
}

// Identity maps every identifier to itself in both directions.
var Identity = New("identity", nil, nil)

// Upper maps lower-case application identifiers to their upper-case
// storage form and back. Suitable when both sides use snake_case and
// differ only in letter case.
var Upper = New("upper", strings.ToUpper, strings.ToLower)

// CamelUpper maps lowerCamelCase application keys to UPPER_SNAKE_CASE
// storage names and back.
var CamelUpper = New("camel-upper", CamelToUpperSnake, UpperSnakeToCamel)

// CamelToUpperSnake converts a lowerCamelCase identifier to
// UPPER_SNAKE_CASE: "firstName" becomes "FIRST_NAME".
func CamelToUpperSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			continue
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r - 'a' + 'A')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// UpperSnakeToCamel converts an UPPER_SNAKE_CASE identifier to
// lowerCamelCase: "FIRST_NAME" becomes "firstName".
func UpperSnakeToCamel(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upperNext := false
	for i, r := range name {
		if r == '_' {
			upperNext = true
			continue
		}
		switch {
		case i == 0:
			b.WriteRune(toLower(r))
		case upperNext:
			b.WriteRune(toUpper(r))
			upperNext = false
		default:
			b.WriteRune(toLower(r))
		}
	}
	return b.String()
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
