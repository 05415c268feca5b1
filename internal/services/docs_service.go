package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// DocsService renders the dashboard summary as a PDF.
type DocsService struct {
	CompanyCode    string
	CurrencySymbol string
	RequestID      string
}

func (s DocsService) SummaryPDF(d models.Dashboard) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "summary_pdf", fmt.Sprintf("rows=%d", len(d.Records)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Business Analytics Dashboard", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(10, 61, 98)
	pdf.CellFormat(0, 10, tr(safe(d.Company, "Cab Services")+" - Business Analytics Dashboard"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Source file : %s", safe(d.FileName, "-"))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Generated   : %s UTC", utils.FormatDateTime(d.GeneratedAt)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Key metrics")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Total Bookings : %d", d.KPIs.TotalBookings),
		fmt.Sprintf("Total Revenue  : %s", s.money(d.KPIs.TotalRevenue)),
		fmt.Sprintf("Average Fare   : %s", s.money(d.KPIs.AverageFare)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	cityRows := make([][2]string, 0, len(d.CityRevenue))
	for _, c := range d.CityRevenue {
		cityRows = append(cityRows, [2]string{c.City, s.money(c.Revenue)})
	}
	table(pdf, tr, "Revenue Distribution by City", [2]string{"City", "Revenue"}, cityRows)

	cabRows := make([][2]string, 0, len(d.CabTypeCount))
	for _, c := range d.CabTypeCount {
		cabRows = append(cabRows, [2]string{c.CabType, strconv.Itoa(c.Count)})
	}
	table(pdf, tr, "Cab Type Distribution", [2]string{"Cab Type", "Bookings"}, cabRows)

	dayRows := make([][2]string, 0, len(d.DailyRevenue))
	for _, r := range d.DailyRevenue {
		dayRows = append(dayRows, [2]string{r.Day, s.money(r.Revenue)})
	}
	table(pdf, tr, "Daily Revenue Trend", [2]string{"Trip Date", "Revenue"}, dayRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), dashboardFileName(s.CompanyCode, d, "pdf"), nil
}

// money formats amounts for the core PDF fonts, which have no rupee glyph.
func (s DocsService) money(v decimal.Decimal) string {
	symbol := strings.TrimSpace(s.CurrencySymbol)
	if symbol == "₹" {
		symbol = "Rs."
	}
	return utils.FormatCurrency(symbol, v)
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, title string, head [2]string, rows [][2]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(10, 61, 98)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 7, head[0], "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, head[1], "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(90, 6, tr(safe(r[0], "(blank)")), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, r[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
