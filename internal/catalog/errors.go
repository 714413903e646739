package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidSeed     = errors.New("invalid seed data")
)
