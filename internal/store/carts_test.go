package store

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	lineItems, total := BuildSnapshot([]CartItemInput{
		{ID: 1, Name: "A", Price: decimal.NewFromInt(10), Quantity: 2},
		{ID: 2, Name: "B", Price: decimal.NewFromInt(5), Quantity: 1},
	})

	assert.Equal(t, "25", total.String())
	require.Len(t, lineItems, 2)
	assert.Equal(t, int64(1), lineItems[0].ID)
	assert.Equal(t, "A", lineItems[0].Name)
	assert.Equal(t, 2, lineItems[0].Quantity)
	assert.Equal(t, "10", lineItems[0].Price)
}

func TestBuildSnapshotIsExact(t *testing.T) {
	_, total := BuildSnapshot([]CartItemInput{
		{ID: 1, Name: "A", Price: decimal.RequireFromString("0.1"), Quantity: 3},
		{ID: 2, Name: "B", Price: decimal.RequireFromString("0.2"), Quantity: 1},
	})

	assert.Equal(t, "0.5", total.String())
}

func TestBuildSnapshotZeroValues(t *testing.T) {
	lineItems, total := BuildSnapshot([]CartItemInput{{ID: 3, Name: "C"}})

	assert.True(t, total.IsZero())
	require.Len(t, lineItems, 1)
	assert.Equal(t, "0", lineItems[0].Price)
	assert.Equal(t, 0, lineItems[0].Quantity)
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[0-9A-F]{8}$`)

	a := generateOrderNumber()
	b := generateOrderNumber()

	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b)
}

func TestFormatDecimal(t *testing.T) {
	tests := map[string]string{
		"25":      "25",
		"10.50":   "10.50",
		"0":       "0",
		"1299.99": "1299.99",
		"1e2":     "100",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDecimal(decimal.RequireFromString(in)), in)
	}
}

func TestBuildSnapshotKeepsScale(t *testing.T) {
	lineItems, total := BuildSnapshot([]CartItemInput{
		{ID: 1, Name: "A", Price: decimal.RequireFromString("10.50"), Quantity: 2},
	})

	assert.Equal(t, "10.50", lineItems[0].Price)
	assert.Equal(t, "21.00", FormatDecimal(total))
}
