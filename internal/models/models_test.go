package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyEncodesTwoPlaces(t *testing.T) {
	tests := map[string]string{
		"1":       `"1.00"`,
		"1.00":    `"1.00"`,
		"1299.99": `"1299.99"`,
		"25":      `"25.00"`,
	}
	for in, want := range tests {
		data, err := json.Marshal(NewMoney(decimal.RequireFromString(in)))
		require.NoError(t, err)
		assert.Equal(t, want, string(data), in)
	}
}

func TestProductAndCartJSON(t *testing.T) {
	product, err := json.Marshal(Product{ID: 1, Name: "Hub", Price: NewMoney(decimal.RequireFromString("1")), Stock: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Hub","description":"","price":"1.00","stock":3}`, string(product))

	cart, err := json.Marshal(Cart{
		ID:         2,
		Products:   []LineItem{},
		TotalPrice: NewMoney(decimal.RequireFromString("21.5")),
		CreatedAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"order_number":"","products":[],"total_price":"21.50","created_at":"2024-01-01T00:00:00Z"}`, string(cart))
}
