// Package catalog provides the in-memory tool, tool-type, and holiday-rule
// catalog. The data is static store configuration; there is no persistence
// behind it.
package catalog

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"toolrental-service/internal/domain/holiday"
	"toolrental-service/internal/domain/tool"
)

// Static serves catalog lookups from maps seeded at construction. It is
// immutable after New and safe for concurrent readers.
type Static struct {
	tools map[string]tool.Tool
	types map[string]tool.Type
	rules []holiday.Rule
	codes []string
}

func New(tools []tool.Tool, types []tool.Type, rules []holiday.Rule) *Static {
	s := &Static{
		tools: make(map[string]tool.Tool, len(tools)),
		types: make(map[string]tool.Type, len(types)),
		rules: rules,
	}
	for _, t := range tools {
		s.tools[t.Code()] = t
		s.codes = append(s.codes, t.Code())
	}
	for _, tt := range types {
		s.types[tt.Code()] = tt
	}
	sort.Strings(s.codes)
	return s
}

// NewDefault seeds the demo store inventory and the US holiday rules.
func NewDefault() (*Static, error) {
	ladder, err := tool.NewType("LADDER", "Ladder", decimal.RequireFromString("1.99"), tool.ChargePolicy{Weekdays: true, Weekends: true})
	if err != nil {
		return nil, err
	}
	chainsaw, err := tool.NewType("CHAINSAW", "Chainsaw", decimal.RequireFromString("1.49"), tool.ChargePolicy{Weekdays: true, Holidays: true})
	if err != nil {
		return nil, err
	}
	jackhammer, err := tool.NewType("JACKHAMMER", "Jackhammer", decimal.RequireFromString("2.99"), tool.ChargePolicy{Weekdays: true})
	if err != nil {
		return nil, err
	}

	toolSpecs := []struct {
		code     string
		typeCode string
		brand    string
	}{
		{"CHNS", "CHAINSAW", "Stihl"},
		{"LADW", "LADDER", "Werner"},
		{"JAKD", "JACKHAMMER", "DeWalt"},
		{"JAKR", "JACKHAMMER", "Ridgid"},
	}

	tools := make([]tool.Tool, 0, len(toolSpecs))
	for _, spec := range toolSpecs {
		t, err := tool.NewTool(spec.code, spec.typeCode, spec.brand)
		if err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}

	rules := []holiday.Rule{
		holiday.FixedDate("US", "Independence Day", time.July, 4, holiday.AdjustToClosestWeekday),
		holiday.FixedWeekday("US", "Labor Day", time.September, 1, 1), // first Monday
	}

	return New(tools, []tool.Type{ladder, chainsaw, jackhammer}, rules), nil
}

func (s *Static) ToolByCode(code string) (tool.Tool, bool) {
	t, ok := s.tools[code]
	return t, ok
}

func (s *Static) TypeByCode(code string) (tool.Type, bool) {
	tt, ok := s.types[code]
	return tt, ok
}

func (s *Static) ToolExists(code string) bool {
	_, ok := s.tools[code]
	return ok
}

func (s *Static) HolidayRules() []holiday.Rule {
	return s.rules
}

func (s *Static) Tools() []tool.Tool {
	tools := make([]tool.Tool, 0, len(s.codes))
	for _, code := range s.codes {
		tools = append(tools, s.tools[code])
	}
	return tools
}

func (s *Static) Types() []tool.Type {
	codes := make([]string, 0, len(s.types))
	for code := range s.types {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	types := make([]tool.Type, 0, len(codes))
	for _, code := range codes {
		types = append(types, s.types[code])
	}
	return types
}

func (s *Static) ToolCodes() []string {
	codes := make([]string, len(s.codes))
	copy(codes, s.codes)
	return codes
}
