package models

// Analytics is the dashboard summary. Boarded+Cancelled+Pending == TotalTickets.
type Analytics struct {
	TotalAirports  int          `json:"total_airports"`
	TotalFlights   int          `json:"total_flights"`
	TotalTickets   int          `json:"total_tickets"`
	Boarded        int          `json:"boarded"`
	Cancelled      int          `json:"cancelled"`
	Pending        int          `json:"pending"`
	UpcomingFlight *FlightRoute `json:"upcoming_flight"`
}

// PathResult is the outcome of a BFS or DFS route search.
type PathResult struct {
	Algorithm   string   `json:"algorithm"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Path        []string `json:"path"`
	Hops        int      `json:"hops"`
}

// Snapshot is the export/import document covering all five collections.
type Snapshot struct {
	Airports      []Airport           `json:"airports" binding:"dive"`
	Flights       []FlightRoute       `json:"flights" binding:"dive"`
	Passengers    []Passenger         `json:"passengers" binding:"dive"`
	BoardingQueue []BoardingQueueItem `json:"boarding_queue" binding:"dive"`
	Cancellations []CancellationItem  `json:"cancellations" binding:"dive"`
}
