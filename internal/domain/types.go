package domain

import (
	"fmt"
	"strings"
)

// BlankFarePolicy decides what a blank Fare_Amount cell means.
type BlankFarePolicy string

const (
	// BlankFareReject treats a blank fare as a DataValidationError.
	BlankFareReject BlankFarePolicy = "reject"
	// BlankFareZero counts a blank fare as 0 and keeps the booking.
	BlankFareZero BlankFarePolicy = "zero"
)

// ParseBlankFarePolicy accepts "reject" or "zero" (case-insensitive); empty means reject.
func ParseBlankFarePolicy(s string) (BlankFarePolicy, error) {
	switch BlankFarePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", BlankFareReject:
		return BlankFareReject, nil
	case BlankFareZero:
		return BlankFareZero, nil
	default:
		return BlankFareReject, ValidationError{Field: "BLANK_FARE_POLICY", Msg: fmt.Sprintf("unknown policy %q (want reject or zero)", s)}
	}
}

// DateOrder decides how ambiguous slash or dash dates such as 05/01/2024
// are read. Either order falls back to the other when the first field
// cannot be a month or day of the preferred order.
type DateOrder string

const (
	DateMonthFirst DateOrder = "mdy"
	DateDayFirst   DateOrder = "dmy"
)

// ParseDateOrder accepts "mdy" or "dmy" (case-insensitive); empty means mdy.
func ParseDateOrder(s string) (DateOrder, error) {
	switch DateOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", DateMonthFirst:
		return DateMonthFirst, nil
	case DateDayFirst:
		return DateDayFirst, nil
	default:
		return DateMonthFirst, ValidationError{Field: "DATE_ORDER", Msg: fmt.Sprintf("unknown date order %q (want mdy or dmy)", s)}
	}
}

// Pagination carries paging params and totals.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total,omitempty"`
}

// Normalize clamps page to >= 1 and pageSize to 1..max (default def).
func (p Pagination) Normalize(def, max int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = def
	}
	if p.PageSize > max {
		p.PageSize = max
	}
	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}
