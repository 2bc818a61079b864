package models

// CancellationItem is one entry of the append-only cancellation log.
type CancellationItem struct {
	Seq           int64  `json:"-" db:"seq"`
	TicketID      string `json:"ticket_id" db:"ticket_id" binding:"required"`
	PassengerName string `json:"passenger_name" db:"passenger_name"`
	FlightID      string `json:"flight_id" db:"flight_id"`
	Timestamp     string `json:"timestamp" db:"ts" binding:"required"`
}
