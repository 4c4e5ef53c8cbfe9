package services

import "errors"

// Domain errors surfaced by the services. Handlers map these to HTTP status
// codes: not-found errors become 404, invalid input becomes 400, anything
// else is treated as a storage failure and becomes 500.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be a number greater than 0")
	ErrQuantityLimit   = errors.New("quantity exceeds the per-item limit")
	ErrCartLimit       = errors.New("cart holds the maximum number of distinct items")
)
