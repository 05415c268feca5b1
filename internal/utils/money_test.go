package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"1250":      "1250",
		"1,250.50":  "1250.5",
		"₹ 300":     "300",
		"₹300.75":   "300.75",
		"Rs. 99":    "99",
		"INR 1,000": "1000",
		" 42.10 ":   "42.1",
		"0":         "0",
		"300 Rs":    "300",
		"12,50,000": "1250000",
		"-10":       "-10",
	}
	for in, want := range cases {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("%q: expected %s, got %s", in, want, got)
		}
	}

	for _, in := range []string{"", "  ", "₹", "twelve", "12abc", "12 Rs 5", "1,2,3", "1,,000", "Rs 12 Rs", "1000,00"} {
		if _, err := ParseAmount(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		symbol string
		amount string
		want   string
	}{
		{"₹", "1234.5", "₹ 1,234.50"},
		{"₹", "116.666666", "₹ 116.67"},
		{"₹", "0", "₹ 0.00"},
		{"Rs.", "1234567.891", "Rs. 1,234,567.89"},
		{"", "999", "999.00"},
		{"$", "-1500", "$ -1,500.00"},
	}
	for _, tc := range cases {
		got := FormatCurrency(tc.symbol, decimal.RequireFromString(tc.amount))
		if got != tc.want {
			t.Fatalf("FormatCurrency(%q, %s): expected %q, got %q", tc.symbol, tc.amount, tc.want, got)
		}
	}
}
