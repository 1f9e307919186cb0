package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safar/go-storefront/internal/database"
	"github.com/safar/go-storefront/internal/models"
	"github.com/shopspring/decimal"
)

func CreateProduct(ctx context.Context, db *sql.DB, name, description string, price decimal.Decimal, stock int) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock`

	err := db.QueryRowContext(ctx, query, name, description, price, stock).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func GetProduct(ctx context.Context, db *sql.DB, id int64) (*models.Product, error) {
	product := &models.Product{}

	query := `
		SELECT id, name, description, price, stock
		FROM products
		WHERE id = $1`

	err := db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// ListProducts returns one page of the catalog ordered by name.
func ListProducts(ctx context.Context, db *sql.DB, filter ProductFilter, page int) (*OffsetPage[models.Product], error) {
	where, args := filter.where()

	var total int64
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	window := NewPageWindow(total, page, ProductPageSize)

	query := fmt.Sprintf(`
		SELECT id, name, description, price, stock
		FROM products
		%s
		ORDER BY name ASC, id ASC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := db.QueryContext(ctx, query, append(args, window.Limit, window.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return newOffsetPage(total, window, products), nil
}

// SeedResult reports whether a seed product was inserted or already present.
type SeedResult struct {
	Name    string
	Created bool
}

// SeedProducts inserts each product whose name is not already in the
// catalog. Existing rows are left untouched.
func SeedProducts(ctx context.Context, tx *sql.Tx, products []models.Product) ([]SeedResult, error) {
	query := `
		INSERT INTO products (name, description, price, stock)
		SELECT $1::varchar, $2::text, $3::numeric, $4::integer
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
		RETURNING id`

	results := make([]SeedResult, 0, len(products))
	for _, p := range products {
		var id int64
		err := tx.QueryRowContext(ctx, query, p.Name, p.Description, p.Price, p.Stock).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			results = append(results, SeedResult{Name: p.Name})
		case err != nil:
			return nil, fmt.Errorf("seed product %q: %w", p.Name, err)
		default:
			results = append(results, SeedResult{Name: p.Name, Created: true})
		}
	}

	return results, nil
}

// DeleteAllProducts empties the catalog and returns the number of rows removed.
func DeleteAllProducts(ctx context.Context, tx *sql.Tx) (int64, error) {
	result, err := tx.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}

	return rowsAffected, nil
}
