package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyMarkers may appear once, before or after the number. Longer
// markers come first so "Rs." is not left with a dangling dot.
var currencyMarkers = []string{"INR", "Rs.", "Rs", "₹"}

var (
	plainAmount = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	// 1,250,000.50 or the Indian 12,50,000.50 grouping.
	groupedAmount = regexp.MustCompile(`^-?(\d{1,3}(,\d{3})+|\d{1,2}(,\d{2})*,\d{3})(\.\d+)?$`)
)

// ParseAmount parses a fare cell such as "1250", "1,250.50", "₹ 300" or
// "Rs. 99". A single currency marker is allowed at either end and commas
// must form thousands groups; anything else is an error, including blanks.
func ParseAmount(s string) (decimal.Decimal, error) {
	num := stripCurrency(strings.TrimSpace(s))
	if num == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	switch {
	case plainAmount.MatchString(num):
	case groupedAmount.MatchString(num):
		num = strings.ReplaceAll(num, ",", "")
	default:
		return decimal.Zero, fmt.Errorf("malformed amount %q", s)
	}
	return decimal.NewFromString(num)
}

func stripCurrency(s string) string {
	for _, m := range currencyMarkers {
		if len(s) >= len(m) && strings.EqualFold(s[:len(m)], m) {
			return strings.TrimSpace(s[len(m):])
		}
		if len(s) >= len(m) && strings.EqualFold(s[len(s)-len(m):], m) {
			return strings.TrimSpace(s[:len(s)-len(m)])
		}
	}
	return s
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatCurrency renders "₹ 1,234.50" style amounts.
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	out := sign + formatThousand(intPart) + "." + frac
	if symbol == "" {
		return out
	}
	return symbol + " " + out
}

func formatThousand(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
