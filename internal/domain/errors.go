package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError means the uploaded byte stream is not a usable spreadsheet.
type ParseError struct {
	Msg string
	Err error
}

func (e ParseError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return fmt.Sprintf("cannot read spreadsheet: %v", e.Err)
	default:
		return "cannot read spreadsheet"
	}
}

func (e ParseError) Unwrap() error { return e.Err }

// MissingColumnError lists every required column absent from the header row.
type MissingColumnError struct {
	Columns []string
}

func (e MissingColumnError) Error() string {
	if len(e.Columns) == 1 {
		return fmt.Sprintf("missing required column %s", e.Columns[0])
	}
	return fmt.Sprintf("missing required columns %s", strings.Join(e.Columns, ", "))
}

// DataValidationError reports a cell whose value does not fit its column type.
// Row is the 1-based spreadsheet row (the header is row 1).
type DataValidationError struct {
	Row    int
	Column string
	Value  string
	Msg    string
	Err    error
}

func (e DataValidationError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "invalid value"
	}
	if e.Row > 0 {
		return fmt.Sprintf("row %d, %s: %s (%q)", e.Row, e.Column, msg, e.Value)
	}
	return fmt.Sprintf("%s: %s (%q)", e.Column, msg, e.Value)
}

func (e DataValidationError) Unwrap() error { return e.Err }

type DateParseError struct {
	Row   int
	Value string
	Err   error
}

func (e DateParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d, Trip_Date: cannot parse %q as a date", e.Row, e.Value)
	}
	return fmt.Sprintf("Trip_Date: cannot parse %q as a date", e.Value)
}

func (e DateParseError) Unwrap() error { return e.Err }

// EmptyTableError is returned instead of a NaN average when there are no rows.
type EmptyTableError struct {
	Op string
}

func (e EmptyTableError) Error() string {
	if e.Op == "" {
		return "the uploaded table has no booking rows"
	}
	return fmt.Sprintf("%s: the uploaded table has no booking rows", e.Op)
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type UnauthorizedError struct {
	Msg string
	Err error
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsParse(err error) bool {
	var target ParseError
	return errors.As(err, &target)
}

func IsMissingColumn(err error) bool {
	var target MissingColumnError
	return errors.As(err, &target)
}

func IsDataValidation(err error) bool {
	var target DataValidationError
	return errors.As(err, &target)
}

func IsDateParse(err error) bool {
	var target DateParseError
	return errors.As(err, &target)
}

func IsEmptyTable(err error) bool {
	var target EmptyTableError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// Code returns the stable error code used in API payloads and the upload audit.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsParse(err):
		return "parse_error"
	case IsMissingColumn(err):
		return "missing_column"
	case IsDataValidation(err):
		return "data_validation_error"
	case IsDateParse(err):
		return "date_parse_error"
	case IsEmptyTable(err):
		return "empty_table"
	case IsValidation(err):
		return "validation_error"
	case IsNotFound(err):
		return "not_found"
	case IsUnauthorized(err):
		return "unauthorized"
	case IsInternal(err):
		return "internal_error"
	default:
		return "internal_error"
	}
}
