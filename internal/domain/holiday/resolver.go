package holiday

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRule marks malformed holiday rule configuration. It indicates
// bad static data and must abort startup-equivalent processing.
var ErrInvalidRule = errors.New("invalid holiday rule")

// Set is a collection of observed holiday dates keyed on UTC midnight.
type Set map[time.Time]struct{}

func (s Set) Contains(t time.Time) bool {
	_, ok := s[Normalize(t)]
	return ok
}

// Date builds a calendar date at UTC midnight, the canonical representation
// used throughout the engine.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize truncates a time to its UTC calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return Date(y, m, d)
}

// Resolve computes the observed holiday dates for every year in
// [startYear, endYear] inclusive across all rules. Duplicate observances
// collapse. Resolution is pure; nothing is cached between calls.
func Resolve(startYear, endYear int, rules []Rule) (Set, error) {
	holidays := make(Set)
	for year := startYear; year <= endYear; year++ {
		for _, rule := range rules {
			date, err := resolveRule(year, rule)
			if err != nil {
				return nil, err
			}
			holidays[date] = struct{}{}
		}
	}
	return holidays, nil
}

func resolveRule(year int, rule Rule) (time.Time, error) {
	switch rule.Kind {
	case KindFixedDate:
		return adjustWeekend(Date(year, rule.Month, rule.Day), rule.Adjustment)
	case KindFixedWeekday:
		return nthWeekdayOfMonth(year, rule.Month, rule.DayOfWeek, rule.Occurrence)
	default:
		return time.Time{}, fmt.Errorf("%w: unrecognized rule kind %q for %q", ErrInvalidRule, rule.Kind, rule.Name)
	}
}

// adjustWeekend validates the adjustment code before looking at the date,
// so a bad code is rejected even in years where the holiday lands on a
// weekday.
func adjustWeekend(date time.Time, adjustment Adjustment) (time.Time, error) {
	var saturdayShift, sundayShift int
	switch adjustment {
	case AdjustToClosestWeekday:
		saturdayShift, sundayShift = -1, 1 // Friday, Monday
	case AdjustToMonday:
		saturdayShift, sundayShift = 2, 1
	case AdjustToFriday:
		saturdayShift, sundayShift = -1, -2
	default:
		return time.Time{}, fmt.Errorf("%w: unknown weekend adjustment code %q", ErrInvalidRule, adjustment)
	}

	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, saturdayShift), nil
	case time.Sunday:
		return date.AddDate(0, 0, sundayShift), nil
	default:
		return date, nil
	}
}

// nthWeekdayOfMonth resolves the occurrence-th ISO weekday (1=Monday ..
// 7=Sunday) within the given month. Only positive ordinals are supported.
func nthWeekdayOfMonth(year int, month time.Month, isoDayOfWeek, occurrence int) (time.Time, error) {
	if isoDayOfWeek < 1 || isoDayOfWeek > 7 {
		return time.Time{}, fmt.Errorf("%w: invalid day of week %d", ErrInvalidRule, isoDayOfWeek)
	}
	if occurrence < 1 {
		return time.Time{}, fmt.Errorf("%w: invalid occurrence %d", ErrInvalidRule, occurrence)
	}

	// time.Weekday counts Sunday=0; ISO counts Monday=1 .. Sunday=7.
	target := time.Weekday(isoDayOfWeek % 7)

	first := Date(year, month, 1)
	offset := (int(target) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(occurrence-1)*7), nil
}
