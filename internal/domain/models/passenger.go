package models

type PassengerStatus string

const (
	StatusPending   PassengerStatus = "pending"
	StatusBoarded   PassengerStatus = "boarded"
	StatusCancelled PassengerStatus = "cancelled"
)

// Passenger is a booked ticket on one flight.
type Passenger struct {
	TicketID   string          `json:"ticket_id" db:"ticket_id" binding:"required"`
	Name       string          `json:"name" db:"name" binding:"required"`
	Passport   string          `json:"passport" db:"passport" binding:"required"`
	FlightID   string          `json:"flight_id" db:"flight_id" binding:"required"`
	SeatNumber string          `json:"seat_number" db:"seat_number" binding:"required"`
	Status     PassengerStatus `json:"status" db:"status" binding:"required,oneof=pending boarded cancelled"`
}

// PassengerCreate is the accepted body of POST /api/passengers and each
// element of POST /api/passengers/bulk.
type PassengerCreate struct {
	Name       string `json:"name" binding:"required"`
	Passport   string `json:"passport" binding:"required"`
	FlightID   string `json:"flight_id" binding:"required"`
	SeatNumber string `json:"seat_number" binding:"required"`
}

// BulkResult reports a bulk booking. Added+Failed equals the input length.
type BulkResult struct {
	Added      int         `json:"added"`
	Failed     int         `json:"failed"`
	Passengers []Passenger `json:"passengers"`
	Errors     []string    `json:"errors"`
}
