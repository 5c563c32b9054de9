package response

import (
	"time"

	"toolrental-service/internal/domain/agreement"
)

type AgreementResponse struct {
	ID                string `json:"id"`
	ToolCode          string `json:"toolCode"`
	ToolType          string `json:"toolType"`
	ToolBrand         string `json:"toolBrand"`
	RentalDays        int    `json:"rentalDays"`
	CheckoutDate      string `json:"checkoutDate"`
	DiscountPercent   int    `json:"discountPercent"`
	DueDate           string `json:"dueDate"`
	ChargeDays        int    `json:"chargeDays"`
	DailyRentalCharge string `json:"dailyRentalCharge"`
	PreDiscountCharge string `json:"preDiscountCharge"`
	DiscountAmount    string `json:"discountAmount"`
	FinalCharge       string `json:"finalCharge"`
}

func FromAgreement(a *agreement.Agreement) *AgreementResponse {
	return &AgreementResponse{
		ID:                a.ID(),
		ToolCode:          a.ToolCode(),
		ToolType:          a.ToolType(),
		ToolBrand:         a.ToolBrand(),
		RentalDays:        a.RentalDays(),
		CheckoutDate:      a.CheckoutDate().Format(time.DateOnly),
		DiscountPercent:   a.DiscountPercent(),
		DueDate:           a.DueDate().Format(time.DateOnly),
		ChargeDays:        a.ChargeDays(),
		DailyRentalCharge: a.DailyRentalCharge().StringFixed(2),
		PreDiscountCharge: a.PreDiscountCharge().StringFixed(2),
		DiscountAmount:    a.DiscountAmount().StringFixed(2),
		FinalCharge:       a.FinalCharge().StringFixed(2),
	}
}
