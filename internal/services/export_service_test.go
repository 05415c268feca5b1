package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	dash, err := dashboardSvc(nil).FromTable(puneMumbai())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	data, name, err := ExportService{CompanyCode: "SHREY_CAB"}.Workbook(dash)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	if name != "SHREY_CAB_DASHBOARD_20240309.xlsx" {
		t.Fatalf("unexpected file name %q", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	want := "Summary,Revenue_by_City,Cab_Types,Daily_Revenue,Cab_Data"
	if got := strings.Join(f.GetSheetList(), ","); got != want {
		t.Fatalf("expected sheets %s, got %s", want, got)
	}
	total, err := f.GetCellValue("Summary", "B2")
	if err != nil || total != "3" {
		t.Fatalf("expected 3 bookings in Summary!B2, got %q (%v)", total, err)
	}

	rows, err := f.GetRows(TemplateSheet)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(rows))
	}
}

func TestSummaryPDF(t *testing.T) {
	dash, err := dashboardSvc(nil).FromTable(puneMumbai())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	pdf, name, err := DocsService{CompanyCode: "SHREY_CAB", CurrencySymbol: "₹"}.SummaryPDF(dash)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if name != "SHREY_CAB_DASHBOARD_20240309.pdf" {
		t.Fatalf("unexpected file name %q", name)
	}
}

func TestPlotRender(t *testing.T) {
	dash, err := dashboardSvc(nil).FromTable(puneMumbai())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	pngMagic := []byte("\x89PNG\r\n\x1a\n")
	for _, name := range []string{ChartDailyRevenuePNG, ChartCityRevenuePNG, ChartCabTypesPNG} {
		img, err := PlotService{}.Render(name, dash)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.HasPrefix(img, pngMagic) {
			t.Fatalf("%s: output is not a PNG", name)
		}
	}

	if _, err := (PlotService{}).Render("pie.svg", dash); err == nil {
		t.Fatalf("expected error for unknown chart")
	}
}
