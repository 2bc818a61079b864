package models

// BoardingQueueItem is a ticket waiting to board. Position is zero-based and
// dense per flight.
type BoardingQueueItem struct {
	Seq           int64  `json:"-" db:"seq"`
	TicketID      string `json:"ticket_id" db:"ticket_id" binding:"required"`
	PassengerName string `json:"passenger_name" db:"passenger_name"`
	FlightID      string `json:"flight_id" db:"flight_id" binding:"required"`
	Position      int    `json:"position" db:"position" binding:"min=0"`
}
