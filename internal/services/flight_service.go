package services

import (
	"context"
	"errors"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
	"airline/internal/validation"

	"github.com/google/uuid"
)

// FlightService manages graph edges.
type FlightService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

// Create stores a new route between two known airports with booked_seats 0.
func (s FlightService) Create(ctx context.Context, in models.FlightRouteCreate) (models.FlightRoute, error) {
	in.FlightID = utils.TrimOrEmpty(in.FlightID)
	in.SourceCode = utils.TrimOrEmpty(in.SourceCode)
	in.DestinationCode = utils.TrimOrEmpty(in.DestinationCode)
	in.DepartureTime = utils.TrimOrEmpty(in.DepartureTime)
	if err := validation.Struct(in); err != nil {
		return models.FlightRoute{}, err
	}

	for _, code := range []string{in.SourceCode, in.DestinationCode} {
		if _, err := s.Store.Airports.FindByCode(ctx, code); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return models.FlightRoute{}, domain.ConflictError{Resource: "flight", Msg: "Source or destination airport not found", Err: err}
			}
			return models.FlightRoute{}, storeErr(err)
		}
	}

	flight := models.FlightRoute{
		ID:              uuid.NewString(),
		FlightID:        in.FlightID,
		SourceCode:      in.SourceCode,
		DestinationCode: in.DestinationCode,
		DepartureTime:   in.DepartureTime,
		TotalSeats:      in.Seats(),
		BookedSeats:     0,
	}
	if err := s.Store.Flights.Insert(ctx, flight); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.FlightRoute{}, domain.ConflictError{Resource: "flight", Msg: "Flight ID already exists", Err: err}
		}
		return models.FlightRoute{}, storeErr(err)
	}

	utils.LogEvent(s.RequestID, "flight", "create", "flight_id="+flight.FlightID+" route="+flight.SourceCode+"-"+flight.DestinationCode)
	return flight, nil
}

func (s FlightService) List(ctx context.Context) ([]models.FlightRoute, error) {
	flights, err := s.Store.Flights.List(ctx, fetchLimit(s.FetchLimit))
	return flights, storeErr(err)
}

// Delete removes the route only; passengers and queue items are untouched.
func (s FlightService) Delete(ctx context.Context, flightID string) error {
	n, err := s.Store.Flights.DeleteByID(ctx, flightID)
	if err != nil {
		return storeErr(err)
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "flight", Msg: "Flight not found"}
	}
	utils.LogEvent(s.RequestID, "flight", "delete", "flight_id="+flightID)
	return nil
}
