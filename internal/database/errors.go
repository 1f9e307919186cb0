package database

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrEmptyCart       = errors.New("the items list cannot be empty")
)
