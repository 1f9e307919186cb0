package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money is a stored amount. It always encodes with two decimal places,
// matching the NUMERIC scale of the catalog.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Stock       int    `json:"stock"`
}

// LineItem is a snapshot of a product as it was when the cart was saved.
// Price keeps the unit price in its submitted decimal form.
type LineItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type Cart struct {
	ID          int64      `json:"id"`
	OrderNumber string     `json:"order_number"`
	Products    []LineItem `json:"products"`
	TotalPrice  Money      `json:"total_price"`
	CreatedAt   time.Time  `json:"created_at"`
}
