package domain

// DestinationCount is an arrival airport with the number of flights landing
// there.
type DestinationCount struct {
	Name      string `json:"name" db:"name"`
	ShortForm string `json:"short_form" db:"short_form"`
	Count     int    `json:"count" db:"count"`
}

// FlightStats are the dashboard aggregates. They are computed over the
// unscoped flight set, matching the visibility of the all-flights listing.
type FlightStats struct {
	TotalFlights    int                `json:"total_flights"`
	TotalHours      float64            `json:"total_hours"`
	UpcomingFlights int                `json:"upcoming_flights"`
	Year            int                `json:"year"`
	Monthly         [12]int            `json:"monthly"`
	TopDestinations []DestinationCount `json:"top_destinations"`
}
