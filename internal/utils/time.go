package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"cabreport/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"

	// Largest Excel serial date (9999-12-31).
	maxExcelSerial = 2958465
)

// isoLayouts are year-first and never ambiguous.
var isoLayouts = []string{
	layoutDate,
	layoutDateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
}

var monthFirstLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/2006 15:04:05",
	"01-02-2006 15:04:05",
}

var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006 15:04:05",
	"02-01-2006 15:04:05",
}

var namedMonthLayouts = []string{
	"2 Jan 2006",
	"02 Jan 2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// tripDateLayouts lists every layout in the order they are tried for order.
// The non-preferred numeric order comes right after the preferred one, so
// 13/01/2024 still parses when month-first is preferred.
func tripDateLayouts(order domain.DateOrder) []string {
	first, second := monthFirstLayouts, dayFirstLayouts
	if order == domain.DateDayFirst {
		first, second = dayFirstLayouts, monthFirstLayouts
	}
	out := make([]string, 0, len(isoLayouts)+len(first)+len(second)+len(namedMonthLayouts))
	out = append(out, isoLayouts...)
	out = append(out, first...)
	out = append(out, second...)
	return append(out, namedMonthLayouts...)
}

var ErrEmptyDate = errors.New("empty date")

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseTripDate turns a raw Trip_Date cell into a calendar date at UTC
// midnight. Numeric cells are Excel serial dates (1900 system). Ambiguous
// numeric dates follow order; the zero value reads month-first.
func ParseTripDate(raw string, order domain.DateOrder) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 || serial > maxExcelSerial {
			return time.Time{}, errors.New("serial date out of range")
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return DateOnly(t), nil
	}

	var lastErr error
	for _, layout := range tripDateLayouts(order) {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOnly(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// DateOnly drops the clock part, keeping the calendar date as written.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS".
func FormatDateTime(t time.Time) string {
	return t.Format(layoutDateTime)
}
