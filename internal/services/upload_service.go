package services

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cabreport/internal/config"
	"cabreport/internal/domain"
	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// UploadService decodes filled-in templates.
type UploadService struct {
	RequestID string
}

// CheckFileName rejects anything that is not an .xlsx upload.
func (s UploadService) CheckFileName(name string) error {
	if !strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ".xlsx") {
		return domain.ParseError{Msg: fmt.Sprintf("unsupported file %q: upload the .xlsx template", name)}
	}
	return nil
}

// ParseUpload reads the first sheet of an xlsx stream into a BookingTable.
// The header row must contain every booking column; extra columns are
// ignored and fully blank rows are skipped. Cells are read raw, so dates
// arrive as Excel serial numbers and fares without display formatting.
func (s UploadService) ParseUpload(r io.Reader) (models.BookingTable, error) {
	table := models.NewBookingTable()

	f, err := excelize.OpenReader(r)
	if err != nil {
		return table, domain.ParseError{Msg: "file is not a readable .xlsx workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table, domain.ParseError{Msg: "workbook has no sheets"}
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return table, domain.ParseError{Msg: fmt.Sprintf("cannot read sheet %q", sheet), Err: err}
	}
	// The header is the first non-blank row; blank rows above it are skipped.
	header, h, ok := lo.FindIndexOf(rows, func(row []string) bool { return !utils.IsBlankRow(row) })
	if !ok {
		return table, domain.ParseError{Msg: fmt.Sprintf("sheet %q has no header row", sheet)}
	}

	index, err := s.headerIndex(header)
	if err != nil {
		return table, err
	}

	for i := h + 1; i < len(rows); i++ {
		row := rows[i]
		if utils.IsBlankRow(row) {
			continue
		}
		cell := func(col string) string {
			pos := index[col]
			if pos >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[pos])
		}
		table.Records = append(table.Records, models.BookingRecord{
			Row:          i + 1,
			BookingID:    cell(models.ColBookingID),
			CustomerName: cell(models.ColCustomerName),
			City:         cell(models.ColCity),
			CabType:      cell(models.ColCabType),
			TripDate:     cell(models.ColTripDate),
			FareAmount:   cell(models.ColFareAmount),
		})
	}

	utils.LogEvent(s.RequestID, "upload", "parse", fmt.Sprintf("sheet=%s rows=%d", sheet, table.Len()))
	return table, nil
}

// headerIndex maps each booking column to its position in the header row.
func (s UploadService) headerIndex(header []string) (map[string]int, error) {
	seen := make(map[string]int, len(header))
	var extra []string
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			return nil, domain.ParseError{Msg: fmt.Sprintf("header column %q appears more than once", name)}
		}
		seen[name] = i
	}

	index := make(map[string]int, 6)
	var missing []string
	for _, col := range models.BookingColumns() {
		pos, ok := seen[col]
		if !ok {
			missing = append(missing, col)
			continue
		}
		index[col] = pos
	}
	if len(missing) > 0 {
		return nil, domain.MissingColumnError{Columns: missing}
	}

	for name := range seen {
		if _, ok := index[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		config.GetLogger().WithFields(logrus.Fields{
			"module":     "upload",
			"request_id": s.RequestID,
			"columns":    extra,
		}).Warn("ignoring extra columns")
	}
	return index, nil
}
