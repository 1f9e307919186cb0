package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		count      int64
		requested  int
		pageSize   int
		wantPage   int
		wantTotal  int
		wantOffset int
	}{
		{"empty result has one page", 0, 1, 6, 1, 1, 0},
		{"empty result clamps high page", 0, 9, 6, 1, 1, 0},
		{"exact multiple", 12, 2, 6, 2, 2, 6},
		{"partial last page", 13, 3, 6, 3, 3, 12},
		{"page past the end clamps", 13, 50, 6, 3, 3, 12},
		{"zero page clamps up", 13, 0, 6, 1, 3, 0},
		{"cart page size", 7, 2, 3, 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewPageWindow(tt.count, tt.requested, tt.pageSize)
			assert.Equal(t, tt.wantPage, w.Page)
			assert.Equal(t, tt.wantTotal, w.TotalPages)
			assert.Equal(t, tt.wantOffset, w.Offset)
			assert.Equal(t, tt.pageSize, w.Limit)
			assert.GreaterOrEqual(t, w.Page, 1)
			assert.LessOrEqual(t, w.Page, w.TotalPages)
		})
	}
}

func TestNewOffsetPageFlags(t *testing.T) {
	first := newOffsetPage(7, NewPageWindow(7, 1, 3), []int{1, 2, 3})
	assert.True(t, first.Next)
	assert.False(t, first.Previous)

	middle := newOffsetPage(7, NewPageWindow(7, 2, 3), []int{4, 5, 6})
	assert.True(t, middle.Next)
	assert.True(t, middle.Previous)

	last := newOffsetPage(7, NewPageWindow(7, 3, 3), []int{7})
	assert.False(t, last.Next)
	assert.True(t, last.Previous)
}

func TestOffsetPageEncodesEmptyResultsAsArray(t *testing.T) {
	page := newOffsetPage[int](0, NewPageWindow(0, 1, 6), nil)

	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"total_pages":1,"page":1,"next":false,"previous":false,"results":[]}`, string(data))
}
