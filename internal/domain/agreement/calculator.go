package agreement

import (
	"time"

	"github.com/shopspring/decimal"

	"toolrental-service/internal/domain/holiday"
	"toolrental-service/internal/domain/tool"
)

// ChargeDetails is the billable outcome of walking a rental period:
// how many days are chargeable and the accumulated pre-discount charge.
type ChargeDetails struct {
	Days   int
	Charge decimal.Decimal
}

// CalculateCharges walks the rental period one day at a time, from the day
// after checkout through the due date, and bills every day the charge
// policy covers. A holiday is judged solely by the holiday flag even when
// it falls on a weekend. Accumulation is exact decimal arithmetic.
func CalculateCharges(dailyCharge decimal.Decimal, checkoutDate time.Time, rentalDays int, policy tool.ChargePolicy, holidays holiday.Set) ChargeDetails {
	checkout := holiday.Normalize(checkoutDate)

	chargeDays := 0
	preDiscountCharge := decimal.Zero

	for i := 1; i <= rentalDays; i++ {
		day := checkout.AddDate(0, 0, i)

		isHoliday := holidays.Contains(day)
		isWeekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
		isWeekday := !isHoliday && !isWeekend

		if (isHoliday && policy.Holidays) ||
			(isWeekend && !isHoliday && policy.Weekends) ||
			(isWeekday && policy.Weekdays) {
			chargeDays++
			preDiscountCharge = preDiscountCharge.Add(dailyCharge)
		}
	}

	return ChargeDetails{Days: chargeDays, Charge: preDiscountCharge}
}
