package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cabreport/internal/config"
	"cabreport/internal/domain"
	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/shopspring/decimal"
)

// AuditRecorder stores upload metadata. UploadAuditRepository implements it.
type AuditRecorder interface {
	Insert(ctx context.Context, rec models.UploadAudit) (int64, error)
}

// UploadInput is one uploaded file as received by the HTTP layer.
type UploadInput struct {
	FileName  string
	SizeBytes int64
	Body      io.Reader
}

// DashboardService turns an upload into the full dashboard. Any error
// aborts the whole build; no partial dashboard is ever returned.
type DashboardService struct {
	Company        string
	CurrencySymbol string
	Uploads        UploadService
	Reports        ReportService
	Audit          AuditRecorder
	RequestID      string
	Now            func() time.Time
}

func (s DashboardService) Build(ctx context.Context, in UploadInput) (models.Dashboard, error) {
	var (
		table models.BookingTable
		dash  models.Dashboard
		err   error
	)

	if err = s.Uploads.CheckFileName(in.FileName); err == nil {
		table, err = s.Uploads.ParseUpload(in.Body)
	}
	if err == nil {
		dash, err = s.FromTable(table)
	}
	dash.FileName = in.FileName

	s.record(ctx, in, table, dash, err)
	if err != nil {
		utils.LogEvent(s.RequestID, "dashboard", "rejected", fmt.Sprintf("file=%q code=%s err=%v", in.FileName, domain.Code(err), err))
		return models.Dashboard{}, err
	}
	utils.LogEvent(s.RequestID, "dashboard", "built", fmt.Sprintf("file=%q rows=%d", in.FileName, table.Len()))
	return dash, nil
}

// FromTable derives every view of an already parsed table.
func (s DashboardService) FromTable(table models.BookingTable) (models.Dashboard, error) {
	kpis, err := s.Reports.ComputeKPIs(table)
	if err != nil {
		return models.Dashboard{}, err
	}
	cities, err := s.Reports.RevenueByCity(table)
	if err != nil {
		return models.Dashboard{}, err
	}
	cabs := s.Reports.CountByCabType(table)
	daily, err := s.Reports.DailyRevenue(table)
	if err != nil {
		return models.Dashboard{}, err
	}

	return models.Dashboard{
		Company:     s.Company,
		GeneratedAt: s.now(),
		Records:     table.Records,
		KPIs:        kpis,
		KPIDisplay: models.KPIDisplay{
			TotalBookings: strconv.Itoa(kpis.TotalBookings),
			TotalRevenue:  utils.FormatCurrency(s.CurrencySymbol, kpis.TotalRevenue),
			AverageFare:   utils.FormatCurrency(s.CurrencySymbol, kpis.AverageFare),
		},
		CityRevenue:  cities,
		CabTypeCount: cabs,
		DailyRevenue: daily,
		Charts: []models.ChartSpec{
			CityRevenueChart(cities),
			CabTypeChart(cabs),
			DailyRevenueChart(daily),
		},
	}, nil
}

func (s DashboardService) record(ctx context.Context, in UploadInput, table models.BookingTable, dash models.Dashboard, buildErr error) {
	if s.Audit == nil {
		return
	}
	rec := models.UploadAudit{
		RequestID:    s.RequestID,
		FileName:     in.FileName,
		SizeBytes:    in.SizeBytes,
		RowCount:     table.Len(),
		TotalRevenue: decimal.Zero,
		Status:       models.UploadStatusOK,
		CreatedAt:    s.now(),
	}
	if buildErr != nil {
		rec.Status = models.UploadStatusRejected
		rec.ErrorCode = domain.Code(buildErr)
	} else {
		rec.TotalRevenue = dash.KPIs.TotalRevenue
	}
	if _, err := s.Audit.Insert(ctx, rec); err != nil {
		config.LogError(config.GetLogger(), "dashboard", "record", "upload audit insert failed", map[string]any{"request_id": s.RequestID, "file": in.FileName}, err)
	}
}

func (s DashboardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}
