package domain

import (
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ParseError{Msg: "bad"}, "parse_error"},
		{MissingColumnError{Columns: []string{"Fare_Amount"}}, "missing_column"},
		{DataValidationError{Row: 3, Column: "Fare_Amount", Value: "x"}, "data_validation_error"},
		{DateParseError{Row: 4, Value: "x"}, "date_parse_error"},
		{EmptyTableError{}, "empty_table"},
		{ValidationError{Field: "id"}, "validation_error"},
		{NotFoundError{Resource: "upload"}, "not_found"},
		{UnauthorizedError{}, "unauthorized"},
		{fmt.Errorf("build: %w", DateParseError{Value: "x"}), "date_parse_error"},
		{fmt.Errorf("boom"), "internal_error"},
	}
	for _, tc := range cases {
		if got := Code(tc.err); got != tc.want {
			t.Fatalf("Code(%v): expected %q, got %q", tc.err, tc.want, got)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	if got := (MissingColumnError{Columns: []string{"City", "Fare_Amount"}}).Error(); got != "missing required columns City, Fare_Amount" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := (DataValidationError{Row: 5, Column: "Fare_Amount", Value: "abc", Msg: "fare is not a number"}).Error(); got != `row 5, Fare_Amount: fare is not a number ("abc")` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestParseBlankFarePolicy(t *testing.T) {
	if p, err := ParseBlankFarePolicy(""); err != nil || p != BlankFareReject {
		t.Fatalf("empty: got %q %v", p, err)
	}
	if p, err := ParseBlankFarePolicy(" ZERO "); err != nil || p != BlankFareZero {
		t.Fatalf("zero: got %q %v", p, err)
	}
	if _, err := ParseBlankFarePolicy("skip"); !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestParseDateOrder(t *testing.T) {
	if o, err := ParseDateOrder(""); err != nil || o != DateMonthFirst {
		t.Fatalf("empty: got %q %v", o, err)
	}
	if o, err := ParseDateOrder(" dmy "); err != nil || o != DateDayFirst {
		t.Fatalf("dmy: got %q %v", o, err)
	}
	if _, err := ParseDateOrder("ymd"); !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{Page: -1, PageSize: 0}.Normalize(20, 100)
	if p.Page != 1 || p.PageSize != 20 || p.Offset() != 0 {
		t.Fatalf("unexpected %+v", p)
	}
	p = Pagination{Page: 3, PageSize: 1000}.Normalize(20, 100)
	if p.PageSize != 100 || p.Offset() != 200 {
		t.Fatalf("unexpected %+v", p)
	}
}
