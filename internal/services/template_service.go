package services

import (
	"fmt"

	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/xuri/excelize/v2"
)

// TemplateSheet is the sheet name used for booking data in generated workbooks.
const TemplateSheet = "Cab_Data"

// XLSXMimeType is the content type for every workbook this service emits.
const XLSXMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TemplateService builds the blank booking template.
type TemplateService struct {
	CompanyCode string
	RequestID   string
}

// BuildTemplate returns an empty table with the booking columns.
func (s TemplateService) BuildTemplate() models.BookingTable {
	return models.NewBookingTable()
}

// ConvertToExcel writes the table to a single-sheet workbook: a bold header
// row followed by one row per record.
func (s TemplateService) ConvertToExcel(table models.BookingTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(TemplateSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	if err := writeBookingSheet(f, TemplateSheet, table); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Template returns the template workbook and its download file name.
func (s TemplateService) Template() ([]byte, string, error) {
	data, err := s.ConvertToExcel(s.BuildTemplate())
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "template", "download", fmt.Sprintf("bytes=%d", len(data)))
	return data, s.TemplateFileName(), nil
}

// TemplateFileName follows the <COMPANY>_TEMPLATE.xlsx convention.
func (s TemplateService) TemplateFileName() string {
	return utils.CompanyFilePrefix(s.CompanyCode) + "_TEMPLATE.xlsx"
}

func writeBookingSheet(f *excelize.File, sheet string, table models.BookingTable) error {
	columns := table.Columns
	if len(columns) == 0 {
		columns = models.BookingColumns()
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	for i, rec := range table.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rec.Values()
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "F", 18)
}
