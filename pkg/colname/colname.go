// Package colname parses and normalizes raw storage-engine column
// identifiers.
//
// Engines return synthetic names for computed and aggregate columns as
// double-quoted expressions, e.g. `"COUNT(DEPT)"`. Plain column names
// come back unquoted. This package canonicalizes the quoted form to a
// single flat token so the rest of the system never sees quoting.
package colname

import (
	"regexp"

	"github.com/borealis-data/borealis/pkg/errors"
)

// aggregatePattern matches the FUNC(ARGS) shape inside a quoted name.
var aggregatePattern = regexp.MustCompile(`^(\w+)\((.+)\)$`)

// Parsed is the decomposition of a raw column identifier. Exactly one
// of Name and Quoted carries the identifier: Name for a plain unquoted
// name, Quoted for the interior of a quote-wrapped one.
type Parsed struct {
	Name     string
	Quoted   string
	IsQuoted bool
}

// Parse splits a raw column identifier into its unquoted or
// quoted-interior form. An empty input parses to the zero value.
func Parse(raw string) Parsed {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return Parsed{Quoted: raw[1 : len(raw)-1], IsQuoted: true}
	}
	return Parsed{Name: raw}
}

// Normalize canonicalizes a raw column identifier to a single token.
// Unquoted names pass through verbatim. A quoted aggregate expression
// `"FUNC(ARGS)"` becomes `FUNC-ARGS`. Any other quoted form fails with
// an unsupported-column error: silently stripping quotes from a plain
// quoted identifier could collide with an unquoted column of the same
// spelling. Empty input normalizes to the empty string without error.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	parsed := Parse(raw)
	if !parsed.IsQuoted {
		return parsed.Name, nil
	}

	m := aggregatePattern.FindStringSubmatch(parsed.Quoted)
	if m == nil {
		return "", errors.New(errors.ErrorTypeUnsupportedColumn,
			"quoted column name is not an aggregate expression").
			WithDetail("column", raw)
	}
	return m[1] + "-" + m[2], nil
}
