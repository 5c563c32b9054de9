package request

import (
	"strings"
	"time"
)

type CheckoutRequest struct {
	ToolCode        string `json:"toolCode"`
	CheckoutDate    string `json:"checkoutDate"` // ISO date, e.g. 2024-03-16
	RentalDays      int    `json:"rentalDays"`
	DiscountPercent int    `json:"discountPercent"`
}

// ParseCheckoutDate returns the zero time for an absent date so the engine
// can report it as a missing checkout date rather than a malformed one.
func (r CheckoutRequest) ParseCheckoutDate() (time.Time, error) {
	raw := strings.TrimSpace(r.CheckoutDate)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(time.DateOnly, raw, time.UTC)
}
