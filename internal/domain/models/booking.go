package models

// Column names of the booking sheet, in template order.
const (
	ColBookingID    = "Booking_ID"
	ColCustomerName = "Customer_Name"
	ColCity         = "City"
	ColCabType      = "Cab_Type"
	ColTripDate     = "Trip_Date"
	ColFareAmount   = "Fare_Amount"
)

// BookingColumns returns a fresh copy of the required header row.
func BookingColumns() []string {
	return []string{ColBookingID, ColCustomerName, ColCity, ColCabType, ColTripDate, ColFareAmount}
}

// BookingRecord is one uploaded row. TripDate and FareAmount keep the raw cell
// text; they are typed when a report needs them.
type BookingRecord struct {
	Row          int    `json:"row"`
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	City         string `json:"city"`
	CabType      string `json:"cab_type"`
	TripDate     string `json:"trip_date"`
	FareAmount   string `json:"fare_amount"`
}

// Values returns the cells in BookingColumns order.
func (r BookingRecord) Values() []string {
	return []string{r.BookingID, r.CustomerName, r.City, r.CabType, r.TripDate, r.FareAmount}
}

// BookingTable is an ordered set of records sharing the booking columns.
type BookingTable struct {
	Columns []string        `json:"columns"`
	Records []BookingRecord `json:"records"`
}

func NewBookingTable() BookingTable {
	return BookingTable{Columns: BookingColumns(), Records: []BookingRecord{}}
}

func (t BookingTable) Len() int { return len(t.Records) }
