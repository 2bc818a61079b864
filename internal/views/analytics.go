package views

import "airline/internal/domain/models"

// Summarize counts passengers per status in one pass and picks the upcoming
// flight. The airport and flight totals come from separate store counts.
func Summarize(airportCount, flightCount int, passengers []models.Passenger, flights []models.FlightRoute) models.Analytics {
	out := models.Analytics{
		TotalAirports:  airportCount,
		TotalFlights:   flightCount,
		TotalTickets:   len(passengers),
		UpcomingFlight: NextDeparture(flights),
	}
	for _, p := range passengers {
		switch p.Status {
		case models.StatusBoarded:
			out.Boarded++
		case models.StatusCancelled:
			out.Cancelled++
		default:
			out.Pending++
		}
	}
	return out
}
