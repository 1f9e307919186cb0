package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/safar/go-storefront/internal/database"
	"github.com/safar/go-storefront/internal/models"
	"github.com/shopspring/decimal"
)

// CartItemInput is one submitted line. Price and Quantity are already
// coerced; missing or malformed values arrive as zero.
type CartItemInput struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// SavedCart is the outcome of submitting a cart.
type SavedCart struct {
	Success     bool              `json:"success"`
	OrderNumber string            `json:"order_number"`
	CartID      int64             `json:"cart_id"`
	Products    []models.LineItem `json:"products"`
	TotalPrice  string            `json:"total_price"`
}

// FormatDecimal renders d keeping the scale it carries, so "10.50" × 2
// prints as "21.00" rather than "21".
func FormatDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

func generateOrderNumber() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:8])
}

// BuildSnapshot turns submitted items into line items and sums
// price × quantity over them.
func BuildSnapshot(items []CartItemInput) ([]models.LineItem, decimal.Decimal) {
	lineItems := make([]models.LineItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		lineItems = append(lineItems, models.LineItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    FormatDecimal(item.Price),
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return lineItems, total
}

// SaveCart validates and persists a submitted cart as a single insert.
func SaveCart(ctx context.Context, db *sql.DB, items []CartItemInput) (*SavedCart, error) {
	if len(items) == 0 {
		return nil, database.ErrEmptyCart
	}

	lineItems, total := BuildSnapshot(items)
	orderNumber := generateOrderNumber()

	cart, err := CreateCart(ctx, db, orderNumber, lineItems, total)
	if err != nil {
		return nil, err
	}

	return &SavedCart{
		Success:     true,
		OrderNumber: orderNumber,
		CartID:      cart.ID,
		Products:    lineItems,
		TotalPrice:  FormatDecimal(total),
	}, nil
}

func CreateCart(ctx context.Context, db *sql.DB, orderNumber string, lineItems []models.LineItem, total decimal.Decimal) (*models.Cart, error) {
	productsJSON, err := json.Marshal(lineItems)
	if err != nil {
		return nil, fmt.Errorf("marshal line items: %w", err)
	}

	cart := &models.Cart{
		OrderNumber: orderNumber,
		Products:    lineItems,
		TotalPrice:  models.NewMoney(total),
	}

	query := `
		INSERT INTO carts (order_number, products, total_price, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`

	err = db.QueryRowContext(ctx, query, orderNumber, string(productsJSON), total).Scan(&cart.ID, &cart.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	return cart, nil
}

func GetCart(ctx context.Context, db *sql.DB, id int64) (*models.Cart, error) {
	query := `
		SELECT id, order_number, products, total_price, created_at
		FROM carts
		WHERE id = $1`

	cart, err := scanCart(db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

func DeleteCart(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return database.ErrCartNotFound
	}

	return nil
}

// ListCarts returns one page of saved carts, newest first.
func ListCarts(ctx context.Context, db *sql.DB, filter CartFilter, page int) (*OffsetPage[models.Cart], error) {
	where, args := filter.where()

	var total int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM carts `+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count carts: %w", err)
	}

	window := NewPageWindow(total, page, CartPageSize)

	query := fmt.Sprintf(`
		SELECT id, order_number, products, total_price, created_at
		FROM carts
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := db.QueryContext(ctx, query, append(args, window.Limit, window.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	defer rows.Close()

	var carts []models.Cart
	for rows.Next() {
		cart, err := scanCart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart: %w", err)
		}
		carts = append(carts, *cart)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return newOffsetPage(total, window, carts), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCart(row rowScanner) (*models.Cart, error) {
	var cart models.Cart
	var productsJSON []byte

	err := row.Scan(
		&cart.ID,
		&cart.OrderNumber,
		&productsJSON,
		&cart.TotalPrice,
		&cart.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(productsJSON, &cart.Products); err != nil {
		return nil, fmt.Errorf("unmarshal line items: %w", err)
	}
	if cart.Products == nil {
		cart.Products = []models.LineItem{}
	}

	return &cart, nil
}
