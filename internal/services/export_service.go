package services

import (
	"fmt"

	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Summary"
	sheetCities  = "Revenue_by_City"
	sheetCabs    = "Cab_Types"
	sheetDaily   = "Daily_Revenue"
)

// ExportService writes a dashboard to a workbook with native Excel charts.
type ExportService struct {
	CompanyCode string
	RequestID   string
}

func (s ExportService) Workbook(d models.Dashboard) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetSummary)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"0A3D62"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, "", err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, "", err
	}

	if err := s.writeSummary(f, d, header, money); err != nil {
		return nil, "", err
	}
	if err := s.writeCities(f, d.CityRevenue, header, money); err != nil {
		return nil, "", err
	}
	if err := s.writeCabs(f, d.CabTypeCount, header); err != nil {
		return nil, "", err
	}
	if err := s.writeDaily(f, d.DailyRevenue, header, money); err != nil {
		return nil, "", err
	}

	if _, err := f.NewSheet(TemplateSheet); err != nil {
		return nil, "", err
	}
	table := models.BookingTable{Columns: models.BookingColumns(), Records: d.Records}
	if err := writeBookingSheet(f, TemplateSheet, table); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "export", "workbook", fmt.Sprintf("bytes=%d rows=%d", buf.Len(), len(d.Records)))
	return buf.Bytes(), s.fileName(d, "xlsx"), nil
}

func (s ExportService) fileName(d models.Dashboard, ext string) string {
	return dashboardFileName(s.CompanyCode, d, ext)
}

func dashboardFileName(company string, d models.Dashboard, ext string) string {
	day := d.GeneratedAt
	if day.IsZero() {
		day = utils.NowUTC()
	}
	return fmt.Sprintf("%s_DASHBOARD_%s.%s", utils.CompanyFilePrefix(company), day.Format("20060102"), ext)
}

func (s ExportService) writeSummary(f *excelize.File, d models.Dashboard, header, money int) error {
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Bookings", d.KPIs.TotalBookings},
		{"Total Revenue", d.KPIs.TotalRevenue.InexactFloat64()},
		{"Average Fare", d.KPIs.AverageFare.Round(2).InexactFloat64()},
	}
	if err := setRows(f, sheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "B1", header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "B3", "B4", money); err != nil {
		return err
	}
	if d.Company != "" {
		if err := f.SetCellValue(sheetSummary, "D1", d.Company+" - Business Analytics Dashboard"); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetSummary, "A", "B", 20)
}

func (s ExportService) writeCities(f *excelize.File, cities []models.CityRevenue, header, money int) error {
	if _, err := f.NewSheet(sheetCities); err != nil {
		return err
	}
	rows := [][]any{{models.ColCity, models.ColFareAmount}}
	for _, c := range cities {
		rows = append(rows, []any{c.City, c.Revenue.InexactFloat64()})
	}
	if err := setRows(f, sheetCities, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetCities, "A1", "B1", header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetCities, "B2", fmt.Sprintf("B%d", len(rows)), money); err != nil {
		return err
	}
	return f.AddChart(sheetCities, "D2", donutChart("Revenue by City", sheetCities, len(cities)))
}

func (s ExportService) writeCabs(f *excelize.File, cabs []models.CabTypeCount, header int) error {
	if _, err := f.NewSheet(sheetCabs); err != nil {
		return err
	}
	rows := [][]any{{models.ColCabType, "Count"}}
	for _, c := range cabs {
		rows = append(rows, []any{c.CabType, c.Count})
	}
	if err := setRows(f, sheetCabs, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetCabs, "A1", "B1", header); err != nil {
		return err
	}
	return f.AddChart(sheetCabs, "D2", donutChart("Cab Type Usage", sheetCabs, len(cabs)))
}

func (s ExportService) writeDaily(f *excelize.File, daily []models.DailyRevenue, header, money int) error {
	if _, err := f.NewSheet(sheetDaily); err != nil {
		return err
	}
	rows := [][]any{{models.ColTripDate, models.ColFareAmount}}
	for _, d := range daily {
		rows = append(rows, []any{d.Day, d.Revenue.InexactFloat64()})
	}
	if err := setRows(f, sheetDaily, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetDaily, "A1", "B1", header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetDaily, "B2", fmt.Sprintf("B%d", len(rows)), money); err != nil {
		return err
	}
	last := len(daily) + 1
	return f.AddChart(sheetDaily, "D2", &excelize.Chart{
		Type:  excelize.Line,
		Title: []excelize.RichTextRun{{Text: "Daily Revenue Trend"}},
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheetDaily),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheetDaily, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheetDaily, last),
			Marker:     excelize.ChartMarker{Symbol: "circle", Size: 6},
		}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}

func donutChart(title, sheet string, n int) *excelize.Chart {
	last := n + 1
	return &excelize.Chart{
		Type:  excelize.Doughnut,
		Title: []excelize.RichTextRun{{Text: title}},
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, last),
		}},
		Legend:   excelize.ChartLegend{Position: "right"},
		PlotArea: excelize.ChartPlotArea{ShowPercent: true},
		HoleSize: int(donutHole * 100),
	}
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}
	return nil
}
