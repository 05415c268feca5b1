package services

import (
	"sort"
	"time"

	"cabreport/internal/domain"
	"cabreport/internal/domain/models"
	"cabreport/internal/utils"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ReportService computes the dashboard aggregates. Every method is a pure
// function of the table it is given.
type ReportService struct {
	BlankFare domain.BlankFarePolicy
	DateOrder domain.DateOrder
}

// ComputeKPIs returns booking count, revenue and average fare. An empty
// table is an EmptyTableError rather than a NaN average.
func (s ReportService) ComputeKPIs(table models.BookingTable) (models.KPISummary, error) {
	var out models.KPISummary
	if table.Len() == 0 {
		return out, domain.EmptyTableError{Op: "compute kpis"}
	}

	fares, err := s.typedFares(table)
	if err != nil {
		return out, err
	}
	total := sumFares(fares)

	out.TotalBookings = table.Len()
	out.TotalRevenue = total
	out.AverageFare = total.Div(decimal.NewFromInt(int64(out.TotalBookings)))
	return out, nil
}

// RevenueByCity sums fares per City, ordered by city name. Cities compare
// exactly, so "Pune" and "pune" are different groups.
func (s ReportService) RevenueByCity(table models.BookingTable) ([]models.CityRevenue, error) {
	fares, err := s.typedFares(table)
	if err != nil {
		return nil, err
	}

	byCity := lo.GroupBy(fares, func(f typedFare) string { return f.rec.City })
	out := lo.MapToSlice(byCity, func(city string, group []typedFare) models.CityRevenue {
		return models.CityRevenue{City: city, Revenue: sumFares(group)}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out, nil
}

// CountByCabType counts bookings per Cab_Type, most used first.
func (s ReportService) CountByCabType(table models.BookingTable) []models.CabTypeCount {
	counts := lo.CountValuesBy(table.Records, func(rec models.BookingRecord) string { return rec.CabType })

	out := lo.MapToSlice(counts, func(cab string, n int) models.CabTypeCount {
		return models.CabTypeCount{CabType: cab, Count: n}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CabType < out[j].CabType
	})
	return out
}

// DailyRevenue sums fares per calendar day, oldest day first.
func (s ReportService) DailyRevenue(table models.BookingTable) ([]models.DailyRevenue, error) {
	fares := make([]typedFare, 0, table.Len())
	for _, rec := range table.Records {
		day, err := s.TripDate(rec)
		if err != nil {
			return nil, err
		}
		fare, err := s.Fare(rec)
		if err != nil {
			return nil, err
		}
		fares = append(fares, typedFare{rec: rec, fare: fare, day: day})
	}

	byDay := lo.GroupBy(fares, func(f typedFare) time.Time { return f.day })
	out := lo.MapToSlice(byDay, func(day time.Time, group []typedFare) models.DailyRevenue {
		return models.DailyRevenue{Date: day, Day: utils.FormatDate(day), Revenue: sumFares(group)}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// typedFare is a record with its fare (and, for daily revenue, its day)
// already validated.
type typedFare struct {
	rec  models.BookingRecord
	fare decimal.Decimal
	day  time.Time
}

// typedFares validates every fare, stopping at the first bad row.
func (s ReportService) typedFares(table models.BookingTable) ([]typedFare, error) {
	out := make([]typedFare, 0, table.Len())
	for _, rec := range table.Records {
		fare, err := s.Fare(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, typedFare{rec: rec, fare: fare})
	}
	return out, nil
}

func sumFares(group []typedFare) decimal.Decimal {
	return lo.Reduce(group, func(sum decimal.Decimal, f typedFare, _ int) decimal.Decimal {
		return sum.Add(f.fare)
	}, decimal.Zero)
}

// Fare types the Fare_Amount cell of rec. Fares must be non-negative numbers;
// blanks follow the BlankFare policy.
func (s ReportService) Fare(rec models.BookingRecord) (decimal.Decimal, error) {
	if rec.FareAmount == "" {
		if s.BlankFare == domain.BlankFareZero {
			return decimal.Zero, nil
		}
		return decimal.Zero, domain.DataValidationError{
			Row: rec.Row, Column: models.ColFareAmount, Value: rec.FareAmount, Msg: "fare is blank",
		}
	}

	fare, err := utils.ParseAmount(rec.FareAmount)
	if err != nil {
		return decimal.Zero, domain.DataValidationError{
			Row: rec.Row, Column: models.ColFareAmount, Value: rec.FareAmount, Msg: "fare is not a number", Err: err,
		}
	}
	if fare.IsNegative() {
		return decimal.Zero, domain.DataValidationError{
			Row: rec.Row, Column: models.ColFareAmount, Value: rec.FareAmount, Msg: "fare is negative",
		}
	}
	return fare, nil
}

// TripDate types the Trip_Date cell of rec.
func (s ReportService) TripDate(rec models.BookingRecord) (time.Time, error) {
	day, err := utils.ParseTripDate(rec.TripDate, s.DateOrder)
	if err != nil {
		return time.Time{}, domain.DateParseError{Row: rec.Row, Value: rec.TripDate, Err: err}
	}
	return day, nil
}
