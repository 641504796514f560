package order

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("shipping info and all pricing fields are required")
	ErrInvalidStatus = errors.New("invalid order status")

	// -- Authentication/Authorization --
	ErrUnauthorized = errors.New("cannot access others' orders")

	// -- Resource State --
	ErrOrderNotFound = errors.New("order not found")
)
