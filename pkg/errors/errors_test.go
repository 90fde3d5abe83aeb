package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeInvalidSchema, "not a record type")

	assert.Equal(t, ErrorTypeInvalidSchema, err.Type)
	assert.Equal(t, "invalid_schema: not a record type", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrorTypeConnection, "opening session")

	assert.Equal(t, "connection: opening session: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestWrapNil(t *testing.T) {
	var err *Error = Wrap(nil, ErrorTypeInternal, "ignored")
	assert.Nil(t, err)
}

func TestWrapPreservesStack(t *testing.T) {
	inner := New(ErrorTypeUnsupportedType, "field type chan")
	outer := Wrap(inner, ErrorTypeInvalidSchema, "deriving schema")

	require.NotEmpty(t, outer.Stack)
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeEmptyInput, "no sample records")

	assert.True(t, IsType(err, ErrorTypeEmptyInput))
	assert.False(t, IsType(err, ErrorTypeNotFound))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeEmptyInput))

	// Wrapped errors still match on the outermost type.
	wrapped := Wrap(err, ErrorTypeValidation, "inferring schema")
	assert.True(t, IsType(wrapped, ErrorTypeValidation))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeUnsupportedColumn, "quoted identifier").
		WithDetail("column", `"DEPT"`)

	assert.Equal(t, `"DEPT"`, err.Details["column"])
}
