package coupon

import "errors"

var (
	// -- Validation & Input --
	ErrMissingFields = errors.New("coupon code and amount are required")

	// -- Resource State --
	ErrCouponNotFound = errors.New("invalid coupon code")
	ErrCodeExists     = errors.New("coupon code already exists")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
