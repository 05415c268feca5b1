package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UploadStatusOK       = "ok"
	UploadStatusRejected = "rejected"
)

// UploadAudit is the metadata kept about one upload attempt. Booking rows are
// never stored.
type UploadAudit struct {
	ID           int64           `json:"id"`
	RequestID    string          `json:"request_id"`
	FileName     string          `json:"file_name"`
	SizeBytes    int64           `json:"size_bytes"`
	RowCount     int             `json:"row_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Status       string          `json:"status"`
	ErrorCode    string          `json:"error_code,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
