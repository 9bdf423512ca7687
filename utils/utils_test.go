package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page       int
		total      int64
		totalPages int
	}{
		{1, 45, 3},
		{3, 45, 3},
		{1, 40, 2},
		{1, 0, 0},
		{1, 1, 1},
		{2, 20, 1},
	}
	for _, tt := range tests {
		p := NewPagination(tt.page, tt.total)
		assert.Equal(t, tt.page, p.Page)
		assert.Equal(t, PageSize, p.PageSize)
		assert.Equal(t, tt.total, p.Total)
		assert.Equal(t, tt.totalPages, p.TotalPages, "total=%d", tt.total)
	}
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, OptionalText(nil))

	empty := "   "
	assert.Nil(t, OptionalText(&empty))

	padded := "  follow up next week  "
	got := OptionalText(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "follow up next week", *got)
}
