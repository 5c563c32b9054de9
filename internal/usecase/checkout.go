package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"toolrental-service/internal/domain/agreement"
	"toolrental-service/internal/domain/holiday"
	"toolrental-service/internal/domain/tool"
	"toolrental-service/internal/pkg/clock"
	"toolrental-service/internal/pkg/config"
	"toolrental-service/internal/pkg/errs"
)

// ToolCatalog is the read-only tool and holiday-rule lookup the checkout
// engine consumes. Lookups never block; everything is static configuration.
type ToolCatalog interface {
	ToolByCode(code string) (tool.Tool, bool)
	TypeByCode(code string) (tool.Type, bool)
	ToolExists(code string) bool
	HolidayRules() []holiday.Rule
}

type CheckoutParams struct {
	ToolCode        string
	CheckoutDate    time.Time
	RentalDays      int
	DiscountPercent int
}

// CheckoutUseCase computes rental agreements. The per-field validators are
// exposed individually so interactive callers can re-prompt on a single
// invalid field.
type CheckoutUseCase interface {
	Checkout(ctx context.Context, params CheckoutParams) (*agreement.Agreement, error)
	ValidateToolCode(code string) error
	ValidateCheckoutDate(date time.Time) error
	ValidateRentalDays(days int) error
	ValidateDiscountPercent(percent int) error
}

type checkoutUseCaseImpl struct {
	catalog ToolCatalog
	clock   clock.Clock
	app     config.AppConfig
}

func NewCheckoutUseCase(catalog ToolCatalog, clk clock.Clock, cfg config.Config) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		catalog: catalog,
		clock:   clk,
		app:     cfg.App,
	}
}

var oneHundred = decimal.NewFromInt(100)

func (u *checkoutUseCaseImpl) Checkout(_ context.Context, p CheckoutParams) (*agreement.Agreement, error) {
	if err := u.validateParams(p); err != nil {
		return nil, err
	}

	rentalTool, ok := u.catalog.ToolByCode(p.ToolCode)
	if !ok {
		return nil, errs.Mark(errs.Newf("tool not found: %s", p.ToolCode), errs.ErrInvalidToolCode)
	}
	toolType, ok := u.catalog.TypeByCode(rentalTool.TypeCode())
	if !ok {
		return nil, errs.Mark(errs.Newf("tool type not found: %s", rentalTool.TypeCode()), errs.ErrInvalidToolCode)
	}

	checkoutDate := holiday.Normalize(p.CheckoutDate)
	dueDate := checkoutDate.AddDate(0, 0, p.RentalDays)

	holidays, err := holiday.Resolve(checkoutDate.Year(), dueDate.Year(), u.catalog.HolidayRules())
	if err != nil {
		return nil, errs.Wrap(err, "failed to resolve holidays")
	}

	details := agreement.CalculateCharges(toolType.DailyCharge(), checkoutDate, p.RentalDays, toolType.Policy(), holidays)

	discountAmount := details.Charge.Mul(decimal.NewFromInt(int64(p.DiscountPercent))).Div(oneHundred).Round(2)
	finalCharge := details.Charge.Sub(discountAmount)

	slog.Debug("creating rental agreement",
		"tool_code", rentalTool.Code(),
		"checkout_date", checkoutDate.Format(time.DateOnly),
		"charge_days", details.Days,
	)

	id := agreement.EncodeReceiptID(u.clock.Now().UnixMilli(), u.app.StoreID, u.app.TerminalID)

	return agreement.New(agreement.Params{
		ID:                id,
		ToolCode:          rentalTool.Code(),
		ToolType:          toolType.Label(),
		ToolBrand:         rentalTool.Brand(),
		RentalDays:        p.RentalDays,
		CheckoutDate:      checkoutDate,
		DiscountPercent:   p.DiscountPercent,
		DueDate:           dueDate,
		ChargeDays:        details.Days,
		DailyRentalCharge: toolType.DailyCharge(),
		PreDiscountCharge: details.Charge,
		DiscountAmount:    discountAmount,
		FinalCharge:       finalCharge,
	}), nil
}

func (u *checkoutUseCaseImpl) validateParams(p CheckoutParams) error {
	if err := u.ValidateToolCode(p.ToolCode); err != nil {
		return err
	}
	if err := u.ValidateCheckoutDate(p.CheckoutDate); err != nil {
		return err
	}
	if err := u.ValidateRentalDays(p.RentalDays); err != nil {
		return err
	}
	return u.ValidateDiscountPercent(p.DiscountPercent)
}

func (u *checkoutUseCaseImpl) ValidateToolCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.Mark(errs.New("tool code is required"), errs.ErrInvalidToolCode)
	}
	if !u.catalog.ToolExists(code) {
		return errs.Mark(errs.Newf("tool code is not valid: %s", code), errs.ErrInvalidToolCode)
	}
	return nil
}

func (u *checkoutUseCaseImpl) ValidateCheckoutDate(date time.Time) error {
	if date.IsZero() {
		return errs.Mark(errs.New("checkout date is required"), errs.ErrInvalidCheckoutDate)
	}
	return nil
}

func (u *checkoutUseCaseImpl) ValidateRentalDays(days int) error {
	if days <= 0 {
		return errs.Mark(errs.New("rental days must be greater than zero"), errs.ErrInvalidRentalDays)
	}
	return nil
}

func (u *checkoutUseCaseImpl) ValidateDiscountPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return errs.Mark(errs.New("discount percent must be between 0 and 100"), errs.ErrInvalidDiscountPercent)
	}
	return nil
}
