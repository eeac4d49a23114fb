package domain

import "time"

// Flight is a logged flight between two airports. UserID is the owner; it is
// set from the session identity at creation and scopes every read and
// mutation except the dashboard-wide ListAll.
type Flight struct {
	ID           int64     `json:"id" db:"id"`
	DepartureID  int64     `json:"departure_id" db:"departure_id"`
	ArrivalID    int64     `json:"arrival_id" db:"arrival_id"`
	Duration     float64   `json:"duration" db:"duration"`
	StartDate    time.Time `json:"start_date" db:"start_date"`
	EndDate      time.Time `json:"end_date" db:"end_date"`
	Appreciation *string   `json:"appreciation,omitempty" db:"appreciation"`
	UserID       int64     `json:"user_id" db:"user_id"`
}

// AirportRef is the subset of airport attributes joined onto flight reads.
type AirportRef struct {
	Name      string `json:"name" db:"name"`
	ShortForm string `json:"short_form" db:"short_form"`
}

// FlightWithAirports is a flight enriched with the display attributes of its
// departure and arrival airports. JSON field names match the web client.
type FlightWithAirports struct {
	Flight
	DepartureAirport AirportRef `json:"departureAirport" db:"departure_airport"`
	ArrivalAirport   AirportRef `json:"arrivalAirport" db:"arrival_airport"`
}
