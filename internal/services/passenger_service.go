package services

import (
	"context"
	"errors"
	"fmt"

	"airline/internal/domain"
	"airline/internal/domain/models"
	"airline/internal/repositories"
	"airline/internal/utils"
	"airline/internal/validation"
	"airline/internal/views"
)

// PassengerService books tickets and serves the hash table view.
type PassengerService struct {
	Store      repositories.Store
	FetchLimit int
	RequestID  string
}

// Create books one ticket. The capacity read and the booked_seats increment
// are separate store calls, so concurrent bookings may overbook a flight.
func (s PassengerService) Create(ctx context.Context, in models.PassengerCreate) (models.Passenger, error) {
	in.Name = utils.TrimOrEmpty(in.Name)
	in.Passport = utils.TrimOrEmpty(in.Passport)
	in.FlightID = utils.TrimOrEmpty(in.FlightID)
	in.SeatNumber = utils.TrimOrEmpty(in.SeatNumber)
	if err := validation.Struct(in); err != nil {
		return models.Passenger{}, err
	}

	flight, err := s.Store.Flights.FindByID(ctx, in.FlightID)
	if err != nil {
		// an unknown flight is a bad booking request, not a missing resource
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Passenger{}, domain.ConflictError{Resource: "flight", Msg: "Flight not found", Err: err}
		}
		return models.Passenger{}, storeErr(err)
	}
	if flight.BookedSeats >= flight.TotalSeats {
		return models.Passenger{}, domain.ConflictError{Resource: "flight", Msg: "Flight is full"}
	}

	passenger := models.Passenger{
		TicketID:   utils.NewTicketID(),
		Name:       in.Name,
		Passport:   in.Passport,
		FlightID:   in.FlightID,
		SeatNumber: in.SeatNumber,
		Status:     models.StatusPending,
	}
	if err := s.Store.Passengers.Insert(ctx, passenger); err != nil {
		return models.Passenger{}, storeErr(err)
	}
	if err := s.Store.Flights.IncrementBooked(ctx, flight.FlightID, 1); err != nil {
		return models.Passenger{}, storeErr(err)
	}

	utils.LogEvent(s.RequestID, "passenger", "create", "ticket_id="+passenger.TicketID+" flight_id="+passenger.FlightID)
	return passenger, nil
}

// BulkCreate books each entry independently. A failed entry is reported in
// Errors by its index and does not stop the rest.
func (s PassengerService) BulkCreate(ctx context.Context, in []models.PassengerCreate) models.BulkResult {
	res := models.BulkResult{
		Passengers: []models.Passenger{},
		Errors:     []string{},
	}
	for i, entry := range in {
		p, err := s.Create(ctx, entry)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("[%d] %s", i, err.Error()))
			continue
		}
		res.Added++
		res.Passengers = append(res.Passengers, p)
	}
	utils.LogEvent(s.RequestID, "passenger", "bulk_create", fmt.Sprintf("added=%d failed=%d", res.Added, res.Failed))
	return res
}

func (s PassengerService) List(ctx context.Context) ([]models.Passenger, error) {
	passengers, err := s.Store.Passengers.List(ctx, fetchLimit(s.FetchLimit))
	return passengers, storeErr(err)
}

func (s PassengerService) Search(ctx context.Context, ticketID string) (models.Passenger, error) {
	p, err := s.Store.Passengers.FindByTicket(ctx, ticketID)
	if err != nil {
		return models.Passenger{}, lookupErr(err, "passenger", "Passenger not found")
	}
	return p, nil
}

// HashTable buckets every passenger by ticket id. All buckets are present.
func (s PassengerService) HashTable(ctx context.Context) (map[int][]models.Passenger, error) {
	passengers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.BuildHashTable(passengers, views.HashTableSize), nil
}
