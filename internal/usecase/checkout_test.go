//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"toolrental-service/internal/domain/holiday"
	"toolrental-service/internal/infra/catalog"
	"toolrental-service/internal/pkg/clock"
	"toolrental-service/internal/pkg/config"
	"toolrental-service/internal/pkg/errs"
	"toolrental-service/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutUseCase(t *testing.T) usecase.CheckoutUseCase {
	t.Helper()
	store, err := catalog.NewDefault()
	require.NoError(t, err)

	mockClock := clock.NewMockClock(time.UnixMilli(1711154921145))
	return usecase.NewCheckoutUseCase(store, mockClock, config.NewTestConfig())
}

func TestCheckout_Chainsaw(t *testing.T) {
	uc := newCheckoutUseCase(t)

	a, err := uc.Checkout(context.Background(), usecase.CheckoutParams{
		ToolCode:        "CHNS",
		CheckoutDate:    holiday.Date(2024, time.March, 16), // Saturday
		RentalDays:      5,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "LU3DGJAX-XYZAB", a.ID())
	assert.Equal(t, "CHNS", a.ToolCode())
	assert.Equal(t, "Chainsaw", a.ToolType())
	assert.Equal(t, "Stihl", a.ToolBrand())
	assert.Equal(t, 5, a.RentalDays())
	assert.Equal(t, holiday.Date(2024, time.March, 21), a.DueDate())
	assert.Equal(t, 4, a.ChargeDays()) // Sunday is free for chainsaws

	assert.True(t, a.PreDiscountCharge().Equal(decimal.RequireFromString("5.96")), "pre-discount charge = %s", a.PreDiscountCharge())
	assert.True(t, a.DiscountAmount().Equal(decimal.RequireFromString("0.60")), "discount amount = %s", a.DiscountAmount())
	assert.True(t, a.FinalCharge().Equal(decimal.RequireFromString("5.36")), "final charge = %s", a.FinalCharge())
}

func TestCheckout_LadderOverObservedHoliday(t *testing.T) {
	uc := newCheckoutUseCase(t)

	// July 4 2020 is a Saturday, observed on Friday July 3. Ladders charge
	// weekdays and weekends but not holidays.
	a, err := uc.Checkout(context.Background(), usecase.CheckoutParams{
		ToolCode:        "LADW",
		CheckoutDate:    holiday.Date(2020, time.July, 2),
		RentalDays:      3,
		DiscountPercent: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, a.ChargeDays()) // Sat + Sun; observed holiday Friday is free
	assert.True(t, a.PreDiscountCharge().Equal(decimal.RequireFromString("3.98")))
	assert.True(t, a.DiscountAmount().Equal(decimal.RequireFromString("0.40")))
	assert.True(t, a.FinalCharge().Equal(decimal.RequireFromString("3.58")))
}

func TestCheckout_DiscountRoundsHalfUp(t *testing.T) {
	uc := newCheckoutUseCase(t)

	// Five chargeable weekdays at 2.99 = 14.95; 50% of that is 7.475,
	// which must round half-up to 7.48.
	a, err := uc.Checkout(context.Background(), usecase.CheckoutParams{
		ToolCode:        "JAKD",
		CheckoutDate:    holiday.Date(2024, time.March, 18), // Monday
		RentalDays:      7,
		DiscountPercent: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, a.ChargeDays())
	assert.True(t, a.PreDiscountCharge().Equal(decimal.RequireFromString("14.95")))
	assert.True(t, a.DiscountAmount().Equal(decimal.RequireFromString("7.48")))
	assert.True(t, a.FinalCharge().Equal(decimal.RequireFromString("7.47")))
}

func TestCheckout_DiscountBounds(t *testing.T) {
	uc := newCheckoutUseCase(t)
	params := usecase.CheckoutParams{
		ToolCode:     "LADW",
		CheckoutDate: holiday.Date(2024, time.March, 18),
		RentalDays:   2,
	}

	t.Run("zero percent keeps full charge", func(t *testing.T) {
		p := params
		p.DiscountPercent = 0
		a, err := uc.Checkout(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, a.DiscountAmount().IsZero())
		assert.True(t, a.FinalCharge().Equal(a.PreDiscountCharge()))
	})

	t.Run("hundred percent zeroes the final charge", func(t *testing.T) {
		p := params
		p.DiscountPercent = 100
		a, err := uc.Checkout(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, a.DiscountAmount().Equal(a.PreDiscountCharge()))
		assert.True(t, a.FinalCharge().IsZero())
	})
}

func TestCheckout_Validation(t *testing.T) {
	uc := newCheckoutUseCase(t)
	valid := usecase.CheckoutParams{
		ToolCode:        "JAKR",
		CheckoutDate:    holiday.Date(2015, time.September, 3),
		RentalDays:      5,
		DiscountPercent: 10,
	}

	tests := []struct {
		name   string
		mutate func(*usecase.CheckoutParams)
		errIs  error
	}{
		{
			name:   "empty tool code",
			mutate: func(p *usecase.CheckoutParams) { p.ToolCode = "" },
			errIs:  errs.ErrInvalidToolCode,
		},
		{
			name:   "blank tool code",
			mutate: func(p *usecase.CheckoutParams) { p.ToolCode = "   " },
			errIs:  errs.ErrInvalidToolCode,
		},
		{
			name:   "unknown tool code",
			mutate: func(p *usecase.CheckoutParams) { p.ToolCode = "DRIL" },
			errIs:  errs.ErrInvalidToolCode,
		},
		{
			name:   "missing checkout date",
			mutate: func(p *usecase.CheckoutParams) { p.CheckoutDate = time.Time{} },
			errIs:  errs.ErrInvalidCheckoutDate,
		},
		{
			name:   "zero rental days",
			mutate: func(p *usecase.CheckoutParams) { p.RentalDays = 0 },
			errIs:  errs.ErrInvalidRentalDays,
		},
		{
			name:   "negative rental days",
			mutate: func(p *usecase.CheckoutParams) { p.RentalDays = -3 },
			errIs:  errs.ErrInvalidRentalDays,
		},
		{
			name:   "discount below range",
			mutate: func(p *usecase.CheckoutParams) { p.DiscountPercent = -1 },
			errIs:  errs.ErrInvalidDiscountPercent,
		},
		{
			name:   "discount above range",
			mutate: func(p *usecase.CheckoutParams) { p.DiscountPercent = 101 },
			errIs:  errs.ErrInvalidDiscountPercent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			_, err := uc.Checkout(context.Background(), p)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestCheckout_ValidationOrder(t *testing.T) {
	uc := newCheckoutUseCase(t)

	// Tool code is checked first, so the rental days defect is not reported.
	_, err := uc.Checkout(context.Background(), usecase.CheckoutParams{
		ToolCode:        "",
		CheckoutDate:    time.Time{},
		RentalDays:      0,
		DiscountPercent: 200,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidToolCode)
	assert.NotErrorIs(t, err, errs.ErrInvalidRentalDays)
}

func TestCheckout_Idempotent(t *testing.T) {
	uc := newCheckoutUseCase(t)
	params := usecase.CheckoutParams{
		ToolCode:        "CHNS",
		CheckoutDate:    holiday.Date(2024, time.March, 16),
		RentalDays:      5,
		DiscountPercent: 10,
	}

	first, err := uc.Checkout(context.Background(), params)
	require.NoError(t, err)
	second, err := uc.Checkout(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID()) // clock is frozen in tests
	assert.Equal(t, first.Render(), second.Render())
}

func TestValidators_Individual(t *testing.T) {
	uc := newCheckoutUseCase(t)

	assert.NoError(t, uc.ValidateToolCode("CHNS"))
	assert.ErrorIs(t, uc.ValidateToolCode("NOPE"), errs.ErrInvalidToolCode)

	assert.NoError(t, uc.ValidateCheckoutDate(holiday.Date(2024, time.March, 16)))
	assert.ErrorIs(t, uc.ValidateCheckoutDate(time.Time{}), errs.ErrInvalidCheckoutDate)

	assert.NoError(t, uc.ValidateRentalDays(1))
	assert.ErrorIs(t, uc.ValidateRentalDays(0), errs.ErrInvalidRentalDays)

	assert.NoError(t, uc.ValidateDiscountPercent(0))
	assert.NoError(t, uc.ValidateDiscountPercent(100))
	assert.ErrorIs(t, uc.ValidateDiscountPercent(-1), errs.ErrInvalidDiscountPercent)
	assert.ErrorIs(t, uc.ValidateDiscountPercent(101), errs.ErrInvalidDiscountPercent)
}
