package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"cabreport/internal/domain"
	"cabreport/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

var auditColumns = []string{"id", "request_id", "file_name", "size_bytes", "row_count", "total_revenue", "status", "error_code", "created_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUploadAuditInsert(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO dashboard_uploads").
		WithArgs("req-1", "jan.xlsx", int64(2048), 3, "350.00", models.UploadStatusOK, nil, created).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := UploadAuditRepository{DB: db}.Insert(context.Background(), models.UploadAudit{
		RequestID:    "req-1",
		FileName:     "jan.xlsx",
		SizeBytes:    2048,
		RowCount:     3,
		TotalRevenue: decimal.NewFromInt(350),
		Status:       models.UploadStatusOK,
		CreatedAt:    created,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUploadAuditList(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM dashboard_uploads").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("SELECT id, .* FROM dashboard_uploads").
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(auditColumns).
			AddRow(int64(12), "req-2", "feb.xlsx", int64(100), 4, "410.50", models.UploadStatusOK, "", created).
			AddRow(int64(11), "", "bad.csv", int64(80), 0, "0.00", models.UploadStatusRejected, "parse_error", created))

	page := domain.Pagination{Page: 2, PageSize: 5}
	items, total, err := UploadAuditRepository{DB: db}.List(context.Background(), page)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 12 || len(items) != 2 {
		t.Fatalf("unexpected result total=%d items=%d", total, len(items))
	}
	if items[0].TotalRevenue.StringFixed(2) != "410.50" || items[1].ErrorCode != "parse_error" {
		t.Fatalf("unexpected items %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUploadAuditGetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM dashboard_uploads").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(auditColumns))

	_, err := UploadAuditRepository{DB: db}.GetByID(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUploadAuditEnsureSchema(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("information_schema\\.tables").WithArgs("dashboard_uploads").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS dashboard_uploads").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := (UploadAuditRepository{DB: db}).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUploadAuditEnsureSchema_Exists(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("information_schema\\.tables").WithArgs("dashboard_uploads").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("dashboard_uploads"))

	if err := (UploadAuditRepository{DB: db}).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
