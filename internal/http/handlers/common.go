package handlers

import (
	"errors"
	"net/http"
	"strings"

	"cabreport/internal/domain"
	"cabreport/internal/services"

	"github.com/gin-gonic/gin"
)

const uploadField = "file"

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload", err)
		return false
	}
	return true
}

// readUpload pulls the multipart "file" field, capped at maxBytes.
func readUpload(c *gin.Context, maxBytes int64) (services.UploadInput, func(), bool) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}
	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large"):
			respondError(c, http.StatusRequestEntityTooLarge, "too_large", "upload exceeds the size limit", gin.H{"max_bytes": maxBytes})
		case errors.Is(err, http.ErrMissingFile):
			RespondDomainError(c, domain.ValidationError{Field: uploadField, Msg: "choose an .xlsx file to upload"})
		default:
			RespondDomainError(c, domain.ParseError{Msg: "cannot read multipart upload", Err: err})
		}
		return services.UploadInput{}, nil, false
	}

	f, err := fh.Open()
	if err != nil {
		RespondDomainError(c, domain.ParseError{Msg: "cannot open uploaded file", Err: err})
		return services.UploadInput{}, nil, false
	}
	in := services.UploadInput{FileName: fh.Filename, SizeBytes: fh.Size, Body: f}
	return in, func() { _ = f.Close() }, true
}

func sendAttachment(c *gin.Context, mime, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, mime, data)
}
