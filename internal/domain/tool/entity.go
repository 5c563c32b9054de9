package tool

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode      = errors.New("tool code must not be empty")
	ErrEmptyTypeCode  = errors.New("tool type code must not be empty")
	ErrEmptyLabel     = errors.New("tool type label must not be empty")
	ErrNegativeCharge = errors.New("daily charge must not be negative")
)

// ChargePolicy holds the three independent chargeability flags of a tool
// type. Holiday classification takes priority over weekend classification
// when a billable day is judged.
type ChargePolicy struct {
	Weekdays bool
	Weekends bool
	Holidays bool
}

// Type is a rental tool category with its daily rate and charge policy.
type Type struct {
	code        string
	label       string
	dailyCharge decimal.Decimal
	policy      ChargePolicy
}

func NewType(code, label string, dailyCharge decimal.Decimal, policy ChargePolicy) (Type, error) {
	if strings.TrimSpace(code) == "" {
		return Type{}, ErrEmptyTypeCode
	}
	if strings.TrimSpace(label) == "" {
		return Type{}, ErrEmptyLabel
	}
	if dailyCharge.IsNegative() {
		return Type{}, ErrNegativeCharge
	}
	return Type{
		code:        code,
		label:       label,
		dailyCharge: dailyCharge,
		policy:      policy,
	}, nil
}

func (t Type) Code() string                 { return t.code }
func (t Type) Label() string                { return t.label }
func (t Type) DailyCharge() decimal.Decimal { return t.dailyCharge }
func (t Type) Policy() ChargePolicy         { return t.policy }

// Tool is a rentable item identified by its code.
type Tool struct {
	code     string
	typeCode string
	brand    string
}

func NewTool(code, typeCode, brand string) (Tool, error) {
	if strings.TrimSpace(code) == "" {
		return Tool{}, ErrEmptyCode
	}
	if strings.TrimSpace(typeCode) == "" {
		return Tool{}, ErrEmptyTypeCode
	}
	return Tool{
		code:     code,
		typeCode: typeCode,
		brand:    brand,
	}, nil
}

func (t Tool) Code() string     { return t.code }
func (t Tool) TypeCode() string { return t.typeCode }
func (t Tool) Brand() string    { return t.brand }
