package product

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("product name, price, stock, category and description are required")

	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
)
