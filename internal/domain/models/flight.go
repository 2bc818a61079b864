package models

// DefaultTotalSeats applies when a flight is created without total_seats.
const DefaultTotalSeats = 180

// FlightRoute is an edge of the route graph. BookedSeats <= TotalSeats is only
// checked when a passenger books.
type FlightRoute struct {
	ID              string `json:"id" db:"id"`
	FlightID        string `json:"flight_id" db:"flight_id" binding:"required"`
	SourceCode      string `json:"source_code" db:"source_code" binding:"required"`
	DestinationCode string `json:"destination_code" db:"destination_code" binding:"required"`
	DepartureTime   string `json:"departure_time" db:"departure_time" binding:"required,hhmm"`
	TotalSeats      int    `json:"total_seats" db:"total_seats" binding:"min=0"`
	BookedSeats     int    `json:"booked_seats" db:"booked_seats" binding:"min=0"`
}

// FlightRouteCreate is the accepted body of POST /api/flights.
type FlightRouteCreate struct {
	FlightID        string `json:"flight_id" binding:"required"`
	SourceCode      string `json:"source_code" binding:"required"`
	DestinationCode string `json:"destination_code" binding:"required"`
	DepartureTime   string `json:"departure_time" binding:"required,hhmm"`
	TotalSeats      *int   `json:"total_seats,omitempty" binding:"omitempty,min=0"`
}

// Seats returns the requested capacity or DefaultTotalSeats.
func (f FlightRouteCreate) Seats() int {
	if f.TotalSeats == nil {
		return DefaultTotalSeats
	}
	return *f.TotalSeats
}

// Neighbor is one entry of an airport's adjacency list.
type Neighbor struct {
	Destination   string `json:"destination"`
	FlightID      string `json:"flight_id"`
	DepartureTime string `json:"departure_time"`
}
