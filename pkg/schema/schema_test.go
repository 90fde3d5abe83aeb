package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldNames(t *testing.T) {
	sc := &Schema{Fields: []Field{
		{Name: "ID", Type: FieldTypeInteger},
		{Name: "FIRST_NAME", Type: FieldTypeString},
	}}

	assert.Equal(t, []string{"ID", "FIRST_NAME"}, sc.FieldNames())
	assert.Equal(t, 2, sc.Len())
}

func TestFind(t *testing.T) {
	sc := &Schema{Fields: []Field{
		{Name: "ID", Type: FieldTypeInteger},
		{Name: "First_Name", Type: FieldTypeString},
	}}

	f, i, ok := sc.Find("first_name")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, "First_Name", f.Name)

	_, i, ok = sc.Find("AGE")
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}
