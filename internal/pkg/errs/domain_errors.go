package errs

import "errors"

// Sentinel errors shared across the usecase and handler layers.
var (
	// Checkout input errors (caller-correctable)
	ErrInvalidToolCode        = errors.New("invalid tool code")
	ErrInvalidCheckoutDate    = errors.New("invalid checkout date")
	ErrInvalidRentalDays      = errors.New("invalid rental days")
	ErrInvalidDiscountPercent = errors.New("invalid discount percent")

	// Lookup errors
	ErrToolNotFound = errors.New("tool not found")
)
