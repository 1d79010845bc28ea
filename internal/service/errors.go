package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// responses through their error tables.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyCart     = errors.New("cart is empty")
)
