package domain

import "errors"

// Sentinel errors for cart admission failures.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrExpiredProduct    = errors.New("product expired")
)

// CartError wraps a sentinel with the offending product name so callers can
// both classify with errors.Is and report which product was rejected.
type CartError struct {
	Product string
	Err     error
}

func (e *CartError) Error() string {
	return e.Err.Error() + " for " + e.Product
}

func (e *CartError) Unwrap() error {
	return e.Err
}
