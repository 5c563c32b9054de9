package bootstrap

import (
	"log/slog"
	"time"

	"toolrental-service/internal/domain/holiday"
	"toolrental-service/internal/infra/catalog"
	"toolrental-service/internal/usecase"
	"toolrental-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		catalog.NewDefault,
		func(s *catalog.Static) usecase.ToolCatalog { return s },
		func(s *catalog.Static) queries.ToolReadStore { return s },
	),
	fx.Invoke(validateHolidayRules),
)

// validateHolidayRules resolves the current year once at startup so a
// malformed rule aborts the application instead of failing checkouts later.
func validateHolidayRules(s *catalog.Static, logger *slog.Logger) error {
	year := time.Now().Year()
	if _, err := holiday.Resolve(year, year, s.HolidayRules()); err != nil {
		return err
	}
	logger.Info("holiday rules validated", "rules", len(s.HolidayRules()))
	return nil
}
