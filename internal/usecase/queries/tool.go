package queries

import (
	"context"

	"github.com/shopspring/decimal"

	"toolrental-service/internal/domain/tool"
	"toolrental-service/internal/pkg/errs"
)

type ToolView struct {
	Code     string
	TypeCode string
	Brand    string
}

type ToolTypeView struct {
	Code               string
	Label              string
	DailyCharge        decimal.Decimal
	ChargeableWeekdays bool
	ChargeableWeekends bool
	ChargeableHolidays bool
}

// ToolReadStore enumerates the static catalog for read endpoints and the
// interactive console.
type ToolReadStore interface {
	Tools() []tool.Tool
	Types() []tool.Type
	ToolByCode(code string) (tool.Tool, bool)
	ToolCodes() []string
}

type ToolQueries interface {
	ListTools(ctx context.Context) []ToolView
	ListToolTypes(ctx context.Context) []ToolTypeView
	GetTool(ctx context.Context, code string) (*ToolView, error)
	ToolCodes(ctx context.Context) []string
}

type toolQueriesImpl struct {
	store ToolReadStore
}

func NewToolQueries(store ToolReadStore) ToolQueries {
	return &toolQueriesImpl{store: store}
}

func (q *toolQueriesImpl) ListTools(_ context.Context) []ToolView {
	tools := q.store.Tools()
	views := make([]ToolView, len(tools))
	for i, t := range tools {
		views[i] = toToolView(t)
	}
	return views
}

func (q *toolQueriesImpl) ListToolTypes(_ context.Context) []ToolTypeView {
	types := q.store.Types()
	views := make([]ToolTypeView, len(types))
	for i, tt := range types {
		views[i] = ToolTypeView{
			Code:               tt.Code(),
			Label:              tt.Label(),
			DailyCharge:        tt.DailyCharge(),
			ChargeableWeekdays: tt.Policy().Weekdays,
			ChargeableWeekends: tt.Policy().Weekends,
			ChargeableHolidays: tt.Policy().Holidays,
		}
	}
	return views
}

func (q *toolQueriesImpl) GetTool(_ context.Context, code string) (*ToolView, error) {
	t, ok := q.store.ToolByCode(code)
	if !ok {
		return nil, errs.Mark(errs.Newf("tool not found: %s", code), errs.ErrToolNotFound)
	}
	view := toToolView(t)
	return &view, nil
}

func (q *toolQueriesImpl) ToolCodes(_ context.Context) []string {
	return q.store.ToolCodes()
}

func toToolView(t tool.Tool) ToolView {
	return ToolView{
		Code:     t.Code(),
		TypeCode: t.TypeCode(),
		Brand:    t.Brand(),
	}
}
