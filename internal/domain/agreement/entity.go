package agreement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"toolrental-service/internal/pkg/format"
)

// Agreement is the immutable result of a tool rental checkout. It is fully
// assembled by the checkout usecase and never mutated afterwards.
type Agreement struct {
	id                string
	toolCode          string
	toolType          string
	toolBrand         string
	rentalDays        int
	checkoutDate      time.Time
	discountPercent   int
	dueDate           time.Time
	chargeDays        int
	dailyRentalCharge decimal.Decimal
	preDiscountCharge decimal.Decimal
	discountAmount    decimal.Decimal
	finalCharge       decimal.Decimal
}

type Params struct {
	ID                string
	ToolCode          string
	ToolType          string
	ToolBrand         string
	RentalDays        int
	CheckoutDate      time.Time
	DiscountPercent   int
	DueDate           time.Time
	ChargeDays        int
	DailyRentalCharge decimal.Decimal
	PreDiscountCharge decimal.Decimal
	DiscountAmount    decimal.Decimal
	FinalCharge       decimal.Decimal
}

func New(p Params) *Agreement {
	return &Agreement{
		id:                p.ID,
		toolCode:          p.ToolCode,
		toolType:          p.ToolType,
		toolBrand:         p.ToolBrand,
		rentalDays:        p.RentalDays,
		checkoutDate:      p.CheckoutDate,
		discountPercent:   p.DiscountPercent,
		dueDate:           p.DueDate,
		chargeDays:        p.ChargeDays,
		dailyRentalCharge: p.DailyRentalCharge,
		preDiscountCharge: p.PreDiscountCharge,
		discountAmount:    p.DiscountAmount,
		finalCharge:       p.FinalCharge,
	}
}

func (a *Agreement) ID() string                         { return a.id }
func (a *Agreement) ToolCode() string                   { return a.toolCode }
func (a *Agreement) ToolType() string                   { return a.toolType }
func (a *Agreement) ToolBrand() string                  { return a.toolBrand }
func (a *Agreement) RentalDays() int                    { return a.rentalDays }
func (a *Agreement) CheckoutDate() time.Time            { return a.checkoutDate }
func (a *Agreement) DiscountPercent() int               { return a.discountPercent }
func (a *Agreement) DueDate() time.Time                 { return a.dueDate }
func (a *Agreement) ChargeDays() int                    { return a.chargeDays }
func (a *Agreement) DailyRentalCharge() decimal.Decimal { return a.dailyRentalCharge }
func (a *Agreement) PreDiscountCharge() decimal.Decimal { return a.preDiscountCharge }
func (a *Agreement) DiscountAmount() decimal.Decimal    { return a.discountAmount }
func (a *Agreement) FinalCharge() decimal.Decimal       { return a.finalCharge }

// Render writes the agreement as the labeled receipt lines handed to the
// customer, in the required order and formats.
func (a *Agreement) Render() string {
	var b strings.Builder
	b.WriteString("Tool code: " + a.toolCode + "\n")
	b.WriteString("Tool type: " + a.toolType + "\n")
	b.WriteString("Tool brand: " + a.toolBrand + "\n")
	b.WriteString("Rental days: " + format.Int(a.rentalDays) + "\n")
	b.WriteString("Check out date: " + format.ShortDate(a.checkoutDate) + "\n")
	b.WriteString("Due date: " + format.ShortDate(a.dueDate) + "\n")
	b.WriteString("Daily rental charge: " + format.Money(a.dailyRentalCharge) + "\n")
	b.WriteString("Charge days: " + format.Int(a.chargeDays) + "\n")
	b.WriteString("Pre-discount charge: " + format.Money(a.preDiscountCharge) + "\n")
	b.WriteString("Discount percent: " + format.Percent(a.discountPercent) + "\n")
	b.WriteString("Discount amount: " + format.Money(a.discountAmount) + "\n")
	b.WriteString("Final charge: " + format.Money(a.finalCharge) + "\n")
	return b.String()
}
