package services

import (
	"bytes"
	"testing"

	"cabreport/internal/domain/models"

	"github.com/xuri/excelize/v2"
)

func rec(row int, city, cab, date, fare string) models.BookingRecord {
	return models.BookingRecord{
		Row:          row,
		BookingID:    "B" + string(rune('0'+row)),
		CustomerName: "Customer",
		City:         city,
		CabType:      cab,
		TripDate:     date,
		FareAmount:   fare,
	}
}

func tableOf(records ...models.BookingRecord) models.BookingTable {
	t := models.NewBookingTable()
	t.Records = append(t.Records, records...)
	return t
}

// puneMumbai is three bookings: Pune 100, Pune 200, Mumbai 50.
func puneMumbai() models.BookingTable {
	return tableOf(
		rec(2, "Pune", "Sedan", "2024-01-01", "100"),
		rec(3, "Pune", "Sedan", "2024-01-01", "200"),
		rec(4, "Mumbai", "SUV", "2024-01-02", "50"),
	)
}

// workbook writes rows (header first) to the first sheet of a new xlsx.
func workbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func header() []any {
	cols := models.BookingColumns()
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
