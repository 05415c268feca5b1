package handlers

import (
	"errors"
	"net/http"

	"cabreport/internal/domain"
	"cabreport/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	if err, ok := details.(error); ok {
		details = err.Error()
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	code := domain.Code(err)
	switch {
	case domain.IsParse(err):
		respondError(c, http.StatusBadRequest, code, err.Error(), nil)
	case domain.IsMissingColumn(err):
		var mc domain.MissingColumnError
		errors.As(err, &mc)
		respondError(c, http.StatusUnprocessableEntity, code, err.Error(), gin.H{"columns": mc.Columns})
	case domain.IsDataValidation(err):
		var dv domain.DataValidationError
		errors.As(err, &dv)
		respondError(c, http.StatusUnprocessableEntity, code, err.Error(), gin.H{"row": dv.Row, "column": dv.Column, "value": dv.Value})
	case domain.IsDateParse(err):
		var dp domain.DateParseError
		errors.As(err, &dp)
		respondError(c, http.StatusUnprocessableEntity, code, err.Error(), gin.H{"row": dp.Row, "value": dp.Value})
	case domain.IsEmptyTable(err):
		respondError(c, http.StatusUnprocessableEntity, code, err.Error(), nil)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, code, err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, code, err.Error(), nil)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, code, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
