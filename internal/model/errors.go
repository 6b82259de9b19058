package model

import "errors"

var (
	// ErrDuplicateKey is returned when a customer email is already taken.
	ErrDuplicateKey = errors.New("email already exists")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidID        = errors.New("invalid id")
)
