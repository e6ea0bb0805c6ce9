package model

import "errors"

// Not-found sentinels. Handlers map these to 404 responses whose detail
// string is exactly the error text.
var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSubMenuNotFound = errors.New("submenu not found")
	ErrDishNotFound    = errors.New("dish not found")
)

// ErrInvalidPrice marks a price payload that does not parse as a number.
// Handlers map it to a 400.
var ErrInvalidPrice = errors.New("price must be a number")
