// Package format renders agreement values the way the rental receipt
// expects them: US-style money, comma-grouped integers, MM/DD/YY dates.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const ShortDateLayout = "01/02/06"

// Money formats a decimal amount as US currency with thousands grouping.
// Display rounding is ROUND UP to two decimals; this intentionally differs
// from the HALF UP rounding used when computing discount amounts.
func Money(v decimal.Decimal) string {
	return "$" + groupThousands(v.RoundUp(2).StringFixed(2))
}

// Percent formats an integer percentage as "NN%", ungrouped.
func Percent(v int) string {
	return strconv.Itoa(v) + "%"
}

// Int formats an integer with thousands grouping.
func Int(v int) string {
	return groupThousands(decimal.NewFromInt(int64(v)).String())
}

// ShortDate formats a date as MM/DD/YY.
func ShortDate(t time.Time) string {
	return t.Format(ShortDateLayout)
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
