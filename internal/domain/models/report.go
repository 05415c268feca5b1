package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// KPISummary holds the three headline numbers. AverageFare keeps full
// precision; use AverageFareDisplay for the 2-decimal rendering.
type KPISummary struct {
	TotalBookings int             `json:"total_bookings"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageFare   decimal.Decimal `json:"average_fare"`
}

func (k KPISummary) AverageFareDisplay() string {
	return k.AverageFare.StringFixed(2)
}

type CityRevenue struct {
	City    string          `json:"city"`
	Revenue decimal.Decimal `json:"revenue"`
}

type CabTypeCount struct {
	CabType string `json:"cab_type"`
	Count   int    `json:"count"`
}

type DailyRevenue struct {
	Date    time.Time       `json:"-"`
	Day     string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartLine ChartKind = "line"
)

// ChartSpec is what a front-end needs to draw one chart. Pie charts use
// Labels/Values, line charts use X/Y.
type ChartSpec struct {
	ID      string    `json:"id"`
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title"`
	Labels  []string  `json:"labels,omitempty"`
	Values  []float64 `json:"values,omitempty"`
	X       []string  `json:"x,omitempty"`
	Y       []float64 `json:"y,omitempty"`
	XField  string    `json:"x_field,omitempty"`
	YField  string    `json:"y_field,omitempty"`
	Hole    float64   `json:"hole,omitempty"`
	Markers bool      `json:"markers,omitempty"`
}

// Dashboard is the full derived view of one upload.
type Dashboard struct {
	Company      string          `json:"company"`
	FileName     string          `json:"file_name"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Records      []BookingRecord `json:"records"`
	KPIs         KPISummary      `json:"kpis"`
	KPIDisplay   KPIDisplay      `json:"kpi_display"`
	CityRevenue  []CityRevenue   `json:"city_revenue"`
	CabTypeCount []CabTypeCount  `json:"cab_type_count"`
	DailyRevenue []DailyRevenue  `json:"daily_revenue"`
	Charts       []ChartSpec     `json:"charts"`
}

// KPIDisplay is the labelled, formatted form of KPISummary.
type KPIDisplay struct {
	TotalBookings string `json:"total_bookings"`
	TotalRevenue  string `json:"total_revenue"`
	AverageFare   string `json:"average_fare"`
}
