//go:build unit

package agreement_test

import (
	"testing"
	"time"

	"toolrental-service/internal/domain/agreement"
	"toolrental-service/internal/domain/holiday"
	"toolrental-service/internal/domain/tool"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCharges(t *testing.T) {
	chainsawRate := decimal.RequireFromString("1.49")
	ladderRate := decimal.RequireFromString("1.99")
	jackhammerRate := decimal.RequireFromString("2.99")

	tests := []struct {
		name       string
		rate       decimal.Decimal
		checkout   time.Time
		rentalDays int
		policy     tool.ChargePolicy
		holidays   holiday.Set
		wantDays   int
		wantCharge string
	}{
		{
			name:       "chainsaw over a weekend skips Sunday",
			rate:       chainsawRate,
			checkout:   holiday.Date(2024, time.March, 16), // Saturday
			rentalDays: 5,
			policy:     tool.ChargePolicy{Weekdays: true, Holidays: true},
			holidays:   holiday.Set{},
			wantDays:   4, // Mon-Thu; Sunday 3/17 is free
			wantCharge: "5.96",
		},
		{
			name:       "checkout day itself is never charged",
			rate:       ladderRate,
			checkout:   holiday.Date(2024, time.March, 18), // Monday
			rentalDays: 1,
			policy:     tool.ChargePolicy{Weekdays: true, Weekends: true},
			holidays:   holiday.Set{},
			wantDays:   1, // only Tuesday 3/19
			wantCharge: "1.99",
		},
		{
			name:       "holiday on a weekday is skipped when holidays are free",
			rate:       jackhammerRate,
			checkout:   holiday.Date(2024, time.September, 1), // Sunday before Labor Day
			rentalDays: 3,
			policy:     tool.ChargePolicy{Weekdays: true},
			holidays:   holiday.Set{holiday.Date(2024, time.September, 2): {}},
			wantDays:   2, // Tue + Wed; Labor Day Monday is free
			wantCharge: "5.98",
		},
		{
			name:       "holiday flag wins over weekend flag",
			rate:       ladderRate,
			checkout:   holiday.Date(2020, time.July, 3), // Friday; July 4 falls on Saturday
			rentalDays: 2,
			policy:     tool.ChargePolicy{Weekdays: true, Weekends: true},
			holidays:   holiday.Set{holiday.Date(2020, time.July, 4): {}},
			wantDays:   1, // Sunday only; the Saturday holiday is judged by the holiday flag
			wantCharge: "1.99",
		},
		{
			name:       "holiday on a weekend billed when holidays are chargeable",
			rate:       chainsawRate,
			checkout:   holiday.Date(2020, time.July, 3),
			rentalDays: 1,
			policy:     tool.ChargePolicy{Holidays: true},
			holidays:   holiday.Set{holiday.Date(2020, time.July, 4): {}},
			wantDays:   1,
			wantCharge: "1.49",
		},
		{
			name:       "nothing chargeable yields zero",
			rate:       jackhammerRate,
			checkout:   holiday.Date(2024, time.March, 16),
			rentalDays: 4,
			policy:     tool.ChargePolicy{},
			holidays:   holiday.Set{},
			wantDays:   0,
			wantCharge: "0",
		},
		{
			name:       "long rental accumulates without drift",
			rate:       chainsawRate,
			checkout:   holiday.Date(2024, time.January, 1),
			rentalDays: 1000,
			policy:     tool.ChargePolicy{Weekdays: true, Weekends: true, Holidays: true},
			holidays:   holiday.Set{},
			wantDays:   1000,
			wantCharge: "1490",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := agreement.CalculateCharges(tt.rate, tt.checkout, tt.rentalDays, tt.policy, tt.holidays)

			assert.Equal(t, tt.wantDays, got.Days)
			assert.True(t, got.Charge.Equal(decimal.RequireFromString(tt.wantCharge)),
				"charge = %s, want %s", got.Charge, tt.wantCharge)
		})
	}
}

func TestCalculateCharges_NormalizesCheckoutTime(t *testing.T) {
	// A checkout timestamp with a time-of-day component walks the same days
	// as the bare calendar date.
	rate := decimal.RequireFromString("1.99")
	policy := tool.ChargePolicy{Weekdays: true, Weekends: true}

	fromDate := agreement.CalculateCharges(rate, holiday.Date(2024, time.March, 16), 3, policy, holiday.Set{})
	fromTimestamp := agreement.CalculateCharges(rate, time.Date(2024, time.March, 16, 23, 45, 0, 0, time.UTC), 3, policy, holiday.Set{})

	assert.Equal(t, fromDate.Days, fromTimestamp.Days)
	assert.True(t, fromDate.Charge.Equal(fromTimestamp.Charge))
}
