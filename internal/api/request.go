package api

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/safar/go-storefront/internal/store"
	"github.com/shopspring/decimal"
)

type saveCartRequest struct {
	Items []cartItemRequest `json:"items"`
}

// Every item field decodes leniently so one malformed value never fails the
// whole submission.
type cartItemRequest struct {
	ID       lenientInt64   `json:"id"`
	Name     lenientString  `json:"name"`
	Price    lenientDecimal `json:"price"`
	Quantity lenientInt     `json:"quantity"`
}

func (r saveCartRequest) toInputs() []store.CartItemInput {
	inputs := make([]store.CartItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		inputs = append(inputs, store.CartItemInput{
			ID:       int64(item.ID),
			Name:     string(item.Name),
			Price:    item.Price.Decimal,
			Quantity: int(item.Quantity),
		})
	}
	return inputs
}

// lenientDecimal accepts a JSON number or a numeric string. Anything else,
// including null, decodes to zero instead of failing the request.
type lenientDecimal struct {
	decimal.Decimal
}

func (d *lenientDecimal) UnmarshalJSON(data []byte) error {
	d.Decimal = decimal.Zero
	if v, ok := numericText(data); ok {
		if parsed, err := decimal.NewFromString(v); err == nil {
			d.Decimal = parsed
		}
	}
	return nil
}

// lenientInt accepts a JSON number or a numeric string, truncating any
// fractional part. Values outside the int32 range decode to zero.
type lenientInt int

func (n *lenientInt) UnmarshalJSON(data []byte) error {
	*n = lenientInt(integerIn(data, math.MinInt32, math.MaxInt32))
	return nil
}

// lenientInt64 is lenientInt over the full int64 range.
type lenientInt64 int64

func (n *lenientInt64) UnmarshalJSON(data []byte) error {
	*n = lenientInt64(integerIn(data, math.MinInt64, math.MaxInt64))
	return nil
}

// lenientString keeps JSON strings and turns any other value into "".
type lenientString string

func (s *lenientString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		v = ""
	}
	*s = lenientString(v)
	return nil
}

// integerIn truncates a numeric JSON value toward zero, returning 0 when it
// is not numeric or falls outside [lo, hi].
func integerIn(data []byte, lo, hi int64) int64 {
	v, ok := numericText(data)
	if !ok {
		return 0
	}
	parsed, err := decimal.NewFromString(v)
	if err != nil {
		return 0
	}
	parsed = parsed.Truncate(0)
	if parsed.LessThan(decimal.NewFromInt(lo)) || parsed.GreaterThan(decimal.NewFromInt(hi)) {
		return 0
	}
	return parsed.IntPart()
}

func numericText(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false
		}
		return string(bytes.TrimSpace([]byte(s))), true
	}
	return string(data), true
}
