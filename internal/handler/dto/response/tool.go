package response

import (
	"toolrental-service/internal/usecase/queries"
)

type ToolResponse struct {
	Code     string `json:"code"`
	TypeCode string `json:"typeCode"`
	Brand    string `json:"brand"`
}

type ToolTypeResponse struct {
	Code               string `json:"code"`
	Label              string `json:"label"`
	DailyCharge        string `json:"dailyCharge"`
	ChargeableWeekdays bool   `json:"chargeableWeekdays"`
	ChargeableWeekends bool   `json:"chargeableWeekends"`
	ChargeableHolidays bool   `json:"chargeableHolidays"`
}

func FromToolView(v *queries.ToolView) *ToolResponse {
	return &ToolResponse{
		Code:     v.Code,
		TypeCode: v.TypeCode,
		Brand:    v.Brand,
	}
}

func FromToolTypeView(v *queries.ToolTypeView) *ToolTypeResponse {
	return &ToolTypeResponse{
		Code:               v.Code,
		Label:              v.Label,
		DailyCharge:        v.DailyCharge.StringFixed(2),
		ChargeableWeekdays: v.ChargeableWeekdays,
		ChargeableWeekends: v.ChargeableWeekends,
		ChargeableHolidays: v.ChargeableHolidays,
	}
}
