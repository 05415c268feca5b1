package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intconfig "cabreport/internal/config"
	intdb "cabreport/internal/db"
	"cabreport/internal/domain"
	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/shopspring/decimal"
)

const uploadsTable = "dashboard_uploads"

const createUploadsTable = `CREATE TABLE IF NOT EXISTS dashboard_uploads (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	request_id VARCHAR(64) NULL,
	file_name VARCHAR(255) NOT NULL,
	size_bytes BIGINT NOT NULL DEFAULT 0,
	row_count INT NOT NULL DEFAULT 0,
	total_revenue DECIMAL(18,2) NOT NULL DEFAULT 0,
	status VARCHAR(16) NOT NULL,
	error_code VARCHAR(64) NULL,
	created_at DATETIME NOT NULL,
	INDEX idx_dashboard_uploads_created_at (created_at)
) CHARACTER SET utf8mb4`

type UploadAuditRepository struct {
	DB *sql.DB
}

func (r UploadAuditRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.CurrentDB()
}

// EnsureSchema creates the audit table when it is missing.
func (r UploadAuditRepository) EnsureSchema(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return intconfig.ErrNoDatabase
	}
	if intdb.HasTable(ctx, db, uploadsTable) {
		return nil
	}
	if _, err := db.ExecContext(ctx, createUploadsTable); err != nil {
		return fmt.Errorf("create %s: %w", uploadsTable, err)
	}
	return nil
}

// Insert stores one audit record and returns its id.
func (r UploadAuditRepository) Insert(ctx context.Context, rec models.UploadAudit) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, intconfig.ErrNoDatabase
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO dashboard_uploads (request_id, file_name, size_bytes, row_count, total_revenue, status, error_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		intdb.NullIfEmpty(rec.RequestID),
		rec.FileName,
		rec.SizeBytes,
		rec.RowCount,
		utils.FormatMoney(rec.TotalRevenue),
		rec.Status,
		intdb.NullIfEmpty(rec.ErrorCode),
		rec.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns audit records newest first plus the total count.
func (r UploadAuditRepository) List(ctx context.Context, page domain.Pagination) ([]models.UploadAudit, int, error) {
	db := r.db()
	if db == nil {
		return nil, 0, intconfig.ErrNoDatabase
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dashboard_uploads`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, COALESCE(request_id,''), file_name, size_bytes, row_count, total_revenue, status, COALESCE(error_code,''), created_at
		FROM dashboard_uploads
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.UploadAudit{}
	for rows.Next() {
		var (
			rec     models.UploadAudit
			revenue string
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.RequestID,
			&rec.FileName,
			&rec.SizeBytes,
			&rec.RowCount,
			&revenue,
			&rec.Status,
			&rec.ErrorCode,
			&rec.CreatedAt,
		); err != nil {
			return out, 0, err
		}
		if rec.TotalRevenue, err = decimal.NewFromString(revenue); err != nil {
			return out, 0, fmt.Errorf("dashboard_uploads.total_revenue id=%d: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}

// GetByID returns a single audit record or NotFoundError.
func (r UploadAuditRepository) GetByID(ctx context.Context, id int64) (models.UploadAudit, error) {
	var (
		rec     models.UploadAudit
		revenue string
	)
	db := r.db()
	if db == nil {
		return rec, intconfig.ErrNoDatabase
	}
	err := db.QueryRowContext(ctx, `
		SELECT id, COALESCE(request_id,''), file_name, size_bytes, row_count, total_revenue, status, COALESCE(error_code,''), created_at
		FROM dashboard_uploads
		WHERE id = ?
	`, id).Scan(
		&rec.ID,
		&rec.RequestID,
		&rec.FileName,
		&rec.SizeBytes,
		&rec.RowCount,
		&revenue,
		&rec.Status,
		&rec.ErrorCode,
		&rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "upload", Err: err}
	}
	if err != nil {
		return rec, err
	}
	rec.TotalRevenue, err = decimal.NewFromString(revenue)
	return rec, err
}
