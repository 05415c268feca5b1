package services

import (
	"cabreport/internal/domain/models"
)

const donutHole = 0.4

func CityRevenueChart(rows []models.CityRevenue) models.ChartSpec {
	spec := models.ChartSpec{
		ID:     "revenue-by-city",
		Kind:   models.ChartPie,
		Title:  "Revenue by City",
		XField: models.ColCity,
		YField: models.ColFareAmount,
		Hole:   donutHole,
		Labels: make([]string, 0, len(rows)),
		Values: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		spec.Labels = append(spec.Labels, r.City)
		spec.Values = append(spec.Values, r.Revenue.InexactFloat64())
	}
	return spec
}

func CabTypeChart(rows []models.CabTypeCount) models.ChartSpec {
	spec := models.ChartSpec{
		ID:     "cab-type-usage",
		Kind:   models.ChartPie,
		Title:  "Cab Type Usage",
		XField: models.ColCabType,
		YField: "Count",
		Hole:   donutHole,
		Labels: make([]string, 0, len(rows)),
		Values: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		spec.Labels = append(spec.Labels, r.CabType)
		spec.Values = append(spec.Values, float64(r.Count))
	}
	return spec
}

func DailyRevenueChart(rows []models.DailyRevenue) models.ChartSpec {
	spec := models.ChartSpec{
		ID:      "daily-revenue",
		Kind:    models.ChartLine,
		Title:   "Daily Revenue Trend",
		XField:  models.ColTripDate,
		YField:  models.ColFareAmount,
		Markers: true,
		X:       make([]string, 0, len(rows)),
		Y:       make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		spec.X = append(spec.X, r.Day)
		spec.Y = append(spec.Y, r.Revenue.InexactFloat64())
	}
	return spec
}
