package services

import (
	"airline/internal/domain/models"

	"github.com/google/uuid"
)

// SampleData returns the fixed demo network: six Indian airports, eight
// routes and twelve pending passengers on the first six routes. Airport and
// flight ids are fresh on every call.
func SampleData() models.Snapshot {
	airports := []models.Airport{
		{Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi"},
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", City: "Mumbai"},
		{Code: "BLR", Name: "Kempegowda International", City: "Bangalore"},
		{Code: "MAA", Name: "Chennai International", City: "Chennai"},
		{Code: "CCU", Name: "Netaji Subhas Chandra Bose International", City: "Kolkata"},
		{Code: "HYD", Name: "Rajiv Gandhi International", City: "Hyderabad"},
	}
	for i := range airports {
		airports[i].ID = uuid.NewString()
	}

	flights := []models.FlightRoute{
		{FlightID: "AI101", SourceCode: "DEL", DestinationCode: "BOM", DepartureTime: "08:00"},
		{FlightID: "AI102", SourceCode: "BOM", DestinationCode: "BLR", DepartureTime: "10:30"},
		{FlightID: "AI103", SourceCode: "BLR", DestinationCode: "MAA", DepartureTime: "12:00"},
		{FlightID: "AI104", SourceCode: "MAA", DestinationCode: "CCU", DepartureTime: "14:30"},
		{FlightID: "AI105", SourceCode: "CCU", DestinationCode: "HYD", DepartureTime: "16:00"},
		{FlightID: "AI106", SourceCode: "HYD", DestinationCode: "DEL", DepartureTime: "18:30"},
		{FlightID: "AI107", SourceCode: "DEL", DestinationCode: "BLR", DepartureTime: "09:00"},
		{FlightID: "AI108", SourceCode: "BOM", DestinationCode: "HYD", DepartureTime: "11:00"},
	}
	for i := range flights {
		flights[i].ID = uuid.NewString()
		flights[i].TotalSeats = models.DefaultTotalSeats
	}

	passengers := []models.Passenger{
		{TicketID: "TKTABC12345", Name: "Rajesh Kumar", Passport: "P12345678", FlightID: "AI101", SeatNumber: "12A"},
		{TicketID: "TKTDEF67890", Name: "Priya Sharma", Passport: "P23456789", FlightID: "AI101", SeatNumber: "13B"},
		{TicketID: "TKTGHI11223", Name: "Amit Patel", Passport: "P34567890", FlightID: "AI102", SeatNumber: "14C"},
		{TicketID: "TKTJKL44556", Name: "Sneha Reddy", Passport: "P45678901", FlightID: "AI102", SeatNumber: "15D"},
		{TicketID: "TKTMNO77889", Name: "Vikram Singh", Passport: "P56789012", FlightID: "AI103", SeatNumber: "16E"},
		{TicketID: "TKTPQR99001", Name: "Ananya Iyer", Passport: "P67890123", FlightID: "AI103", SeatNumber: "17F"},
		{TicketID: "TKTSTU22334", Name: "Karan Mehta", Passport: "P78901234", FlightID: "AI104", SeatNumber: "18A"},
		{TicketID: "TKTVWX55667", Name: "Deepika Nair", Passport: "P89012345", FlightID: "AI104", SeatNumber: "19B"},
		{TicketID: "TKTYZA88990", Name: "Rohan Gupta", Passport: "P90123456", FlightID: "AI105", SeatNumber: "20C"},
		{TicketID: "TKTBCD11122", Name: "Kavya Desai", Passport: "P01234567", FlightID: "AI105", SeatNumber: "21D"},
		{TicketID: "TKTEFG33445", Name: "Arjun Rao", Passport: "P12340987", FlightID: "AI106", SeatNumber: "22E"},
		{TicketID: "TKTHIJ66778", Name: "Neha Bansal", Passport: "P23451098", FlightID: "AI106", SeatNumber: "23F"},
	}
	for i := range passengers {
		passengers[i].Status = models.StatusPending
	}

	return models.Snapshot{
		Airports:      airports,
		Flights:       flights,
		Passengers:    passengers,
		BoardingQueue: []models.BoardingQueueItem{},
		Cancellations: []models.CancellationItem{},
	}
}
