package store

import (
	"context"
	"database/sql"

	"github.com/safar/go-storefront/internal/models"
)

// Store binds the package functions to a connection pool so HTTP handlers
// can depend on an interface.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ListProducts(ctx context.Context, filter ProductFilter, page int) (*OffsetPage[models.Product], error) {
	return ListProducts(ctx, s.db, filter, page)
}

func (s *Store) SaveCart(ctx context.Context, items []CartItemInput) (*SavedCart, error) {
	return SaveCart(ctx, s.db, items)
}

func (s *Store) ListCarts(ctx context.Context, filter CartFilter, page int) (*OffsetPage[models.Cart], error) {
	return ListCarts(ctx, s.db, filter, page)
}

func (s *Store) GetCart(ctx context.Context, id int64) (*models.Cart, error) {
	return GetCart(ctx, s.db, id)
}

func (s *Store) DeleteCart(ctx context.Context, id int64) error {
	return DeleteCart(ctx, s.db, id)
}
