package store

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Optional parses raw with parse. Blank or malformed input yields nil, which
// callers treat as "filter not applied".
func Optional[T any](raw string, parse func(string) (T, error)) *T {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil
	}
	return &v
}

func ParseDecimal(raw string) *decimal.Decimal {
	return Optional(raw, decimal.NewFromString)
}

func ParseDate(raw string) *time.Time {
	return Optional(raw, func(s string) (time.Time, error) {
		return time.Parse(dateLayout, s)
	})
}

// ParsePage returns the 1-based page number requested, defaulting to 1.
func ParsePage(raw string) int {
	page := Optional(raw, strconv.Atoi)
	if page == nil || *page < 1 {
		return 1
	}
	return *page
}

type ProductFilter struct {
	Name     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

func ParseProductFilter(q url.Values) ProductFilter {
	return ProductFilter{
		Name:     strings.TrimSpace(q.Get("name")),
		MinPrice: ParseDecimal(q.Get("min_price")),
		MaxPrice: ParseDecimal(q.Get("max_price")),
	}
}

func (f ProductFilter) where() (string, []interface{}) {
	var w whereBuilder
	if f.Name != "" {
		w.add("name ILIKE %s", "%"+escapeLike(f.Name)+"%")
	}
	if f.MinPrice != nil {
		w.add("price >= %s", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add("price <= %s", *f.MaxPrice)
	}
	return w.build()
}

type CartFilter struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	DateFrom *time.Time
	DateTo   *time.Time
}

func ParseCartFilter(q url.Values) CartFilter {
	return CartFilter{
		MinPrice: ParseDecimal(q.Get("min_price")),
		MaxPrice: ParseDecimal(q.Get("max_price")),
		DateFrom: ParseDate(q.Get("date_from")),
		DateTo:   ParseDate(q.Get("date_to")),
	}
}

func (f CartFilter) where() (string, []interface{}) {
	var w whereBuilder
	if f.MinPrice != nil {
		w.add("total_price >= %s", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add("total_price <= %s", *f.MaxPrice)
	}
	// Dates compare against the UTC calendar day of created_at.
	if f.DateFrom != nil {
		w.add("(created_at AT TIME ZONE 'UTC')::date >= %s::date", f.DateFrom.Format(dateLayout))
	}
	if f.DateTo != nil {
		w.add("(created_at AT TIME ZONE 'UTC')::date <= %s::date", f.DateTo.Format(dateLayout))
	}
	return w.build()
}

// whereBuilder numbers placeholders in the order conditions are added.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, "$"+strconv.Itoa(len(w.args))))
}

func (w *whereBuilder) build() (string, []interface{}) {
	if len(w.conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(w.conds, " AND "), w.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
