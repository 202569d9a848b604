package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSearchFilter_Defaults(t *testing.T) {
	f := NewSearchFilter("", 0, true, 0, 0)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset())

	f = NewSearchFilter("", 0, true, -3, -1)
	assert.Equal(t, DefaultPage, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
}

func TestNewSearchFilter_MaxLimit(t *testing.T) {
	f := NewSearchFilter("", 0, true, 1, 5000)
	assert.Equal(t, MaxLimit, f.Limit)
}

func TestSearchFilter_Offset(t *testing.T) {
	f := NewSearchFilter("golang", 2, true, 3, 20)
	assert.Equal(t, 40, f.Offset())
	assert.Equal(t, "golang", f.Keyword)
	assert.Equal(t, uint(2), f.CategoryID)
}
