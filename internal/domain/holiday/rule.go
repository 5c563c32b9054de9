package holiday

import "time"

// Kind discriminates how a holiday rule resolves to a calendar date.
type Kind string

const (
	// KindFixedDate is a holiday observed on a fixed month/day, shifted off
	// weekends by the rule's adjustment strategy (e.g. Independence Day).
	KindFixedDate Kind = "FIXED_DATE"
	// KindFixedWeekday is a holiday on the n-th weekday of a month
	// (e.g. Labor Day, first Monday of September).
	KindFixedWeekday Kind = "FIXED_WEEKDAY"
)

// Adjustment names a weekend-shift strategy for fixed-date holidays. The
// strategy set is closed; an unrecognized code is a configuration defect.
type Adjustment string

const (
	// AdjustToClosestWeekday observes Saturday holidays on the preceding
	// Friday and Sunday holidays on the following Monday.
	AdjustToClosestWeekday Adjustment = "ADJUST_WEEKEND_TO_CLOSEST_WEEKDAY"
	// AdjustToMonday observes weekend holidays on the following Monday.
	AdjustToMonday Adjustment = "ADJUST_WEEKEND_TO_MONDAY"
	// AdjustToFriday observes weekend holidays on the preceding Friday.
	AdjustToFriday Adjustment = "ADJUST_WEEKEND_TO_FRIDAY"
)

// Rule is an immutable declarative holiday definition loaded from static
// configuration. Only the fields relevant to its Kind are consulted.
type Rule struct {
	CountryCode string
	Kind        Kind
	Name        string
	Month       time.Month
	Day         int        // FIXED_DATE only
	DayOfWeek   int        // FIXED_WEEKDAY only, ISO: 1=Monday .. 7=Sunday
	Occurrence  int        // FIXED_WEEKDAY only, 1st, 2nd, ...
	Adjustment  Adjustment // FIXED_DATE only
}

// FixedDate builds a fixed month/day rule with a weekend adjustment.
func FixedDate(countryCode, name string, month time.Month, day int, adjustment Adjustment) Rule {
	return Rule{
		CountryCode: countryCode,
		Kind:        KindFixedDate,
		Name:        name,
		Month:       month,
		Day:         day,
		Adjustment:  adjustment,
	}
}

// FixedWeekday builds an n-th-weekday-of-month rule.
func FixedWeekday(countryCode, name string, month time.Month, dayOfWeek, occurrence int) Rule {
	return Rule{
		CountryCode: countryCode,
		Kind:        KindFixedWeekday,
		Name:        name,
		Month:       month,
		DayOfWeek:   dayOfWeek,
		Occurrence:  occurrence,
	}
}
